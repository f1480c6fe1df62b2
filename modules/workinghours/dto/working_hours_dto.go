package dto

import "go-calendar-api/modules/workinghours/entity"

// CreateWorkingHoursRequest enumerates every mutable field explicitly; there
// is no dynamically-typed payload anywhere in this module.
type CreateWorkingHoursRequest struct {
	MondayStart    *int `json:"monday_start,omitempty"`
	MondayEnd      *int `json:"monday_end,omitempty"`
	TuesdayStart   *int `json:"tuesday_start,omitempty"`
	TuesdayEnd     *int `json:"tuesday_end,omitempty"`
	WednesdayStart *int `json:"wednesday_start,omitempty"`
	WednesdayEnd   *int `json:"wednesday_end,omitempty"`
	ThursdayStart  *int `json:"thursday_start,omitempty"`
	ThursdayEnd    *int `json:"thursday_end,omitempty"`
	FridayStart    *int `json:"friday_start,omitempty"`
	FridayEnd      *int `json:"friday_end,omitempty"`
	SaturdayStart  *int `json:"saturday_start,omitempty"`
	SaturdayEnd    *int `json:"saturday_end,omitempty"`
	SundayStart    *int `json:"sunday_start,omitempty"`
	SundayEnd      *int `json:"sunday_end,omitempty"`
}

// UpdateWorkingHoursRequest has the same shape as create: absent fields are
// left unchanged.
type UpdateWorkingHoursRequest = CreateWorkingHoursRequest

type WorkingHoursResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	MondayStart    *int `json:"monday_start,omitempty"`
	MondayEnd      *int `json:"monday_end,omitempty"`
	TuesdayStart   *int `json:"tuesday_start,omitempty"`
	TuesdayEnd     *int `json:"tuesday_end,omitempty"`
	WednesdayStart *int `json:"wednesday_start,omitempty"`
	WednesdayEnd   *int `json:"wednesday_end,omitempty"`
	ThursdayStart  *int `json:"thursday_start,omitempty"`
	ThursdayEnd    *int `json:"thursday_end,omitempty"`
	FridayStart    *int `json:"friday_start,omitempty"`
	FridayEnd      *int `json:"friday_end,omitempty"`
	SaturdayStart  *int `json:"saturday_start,omitempty"`
	SaturdayEnd    *int `json:"saturday_end,omitempty"`
	SundayStart    *int `json:"sunday_start,omitempty"`
	SundayEnd      *int `json:"sunday_end,omitempty"`
}

func ToWorkingHoursResponse(w *entity.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:             w.ID.String(),
		UserID:         w.UserID.String(),
		MondayStart:    w.MondayStart,
		MondayEnd:      w.MondayEnd,
		TuesdayStart:   w.TuesdayStart,
		TuesdayEnd:     w.TuesdayEnd,
		WednesdayStart: w.WednesdayStart,
		WednesdayEnd:   w.WednesdayEnd,
		ThursdayStart:  w.ThursdayStart,
		ThursdayEnd:    w.ThursdayEnd,
		FridayStart:    w.FridayStart,
		FridayEnd:      w.FridayEnd,
		SaturdayStart:  w.SaturdayStart,
		SaturdayEnd:    w.SaturdayEnd,
		SundayStart:    w.SundayStart,
		SundayEnd:      w.SundayEnd,
	}
}
