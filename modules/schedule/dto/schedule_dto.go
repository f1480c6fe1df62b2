package dto

import (
	"go-calendar-api/modules/schedule/entity"
)

type CreateScheduleRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

type UpdateScheduleRequest struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Color *string `json:"color,omitempty"`
}

type ScheduleResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Color  *string `json:"color,omitempty"`
	UserID string  `json:"user_id"`
}

func ToScheduleResponse(schedule *entity.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:     schedule.ID.String(),
		Name:   schedule.Name,
		Type:   string(schedule.Type),
		Color:  schedule.Color,
		UserID: schedule.UserID.String(),
	}
}
