package dto

import "go-calendar-api/modules/calendar/entity"

type CreateCalendarRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsDefault   bool   `json:"is_default"`
	IsVisible   *bool  `json:"is_visible,omitempty"`
}

type UpdateCalendarRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
	IsVisible   *bool   `json:"is_visible,omitempty"`
}

type CalendarResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
	IsDefault   bool    `json:"is_default"`
	IsVisible   bool    `json:"is_visible"`
	UserID      string  `json:"user_id"`
}

func ToCalendarResponse(c *entity.Calendar) *CalendarResponse {
	return &CalendarResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		IsDefault:   c.IsDefault,
		IsVisible:   c.IsVisible,
		UserID:      c.UserID.String(),
	}
}
