package controller

import (
	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/core/errors"
	"go-calendar-api/core/utils"
	"go-calendar-api/modules/attendee/dto"
	"go-calendar-api/modules/attendee/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AttendeeController handles attendee HTTP requests
type AttendeeController struct {
	controller.BaseController
	AttendeeService service.AttendeeServiceInterface
}

func NewAttendeeController(svc service.AttendeeServiceInterface) *AttendeeController {
	return &AttendeeController{
		BaseController:  controller.NewBaseController(),
		AttendeeService: svc,
	}
}

func (c *AttendeeController) requireAuth(ctx echo.Context) error {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	if _, ok := tokenData.(*utils.TokenClaims); !ok {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return nil
}

// AddAttendee handles POST /events/:id/attendees
// @Summary Invite an attendee to an event
// @Tags Attendee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.AddAttendeeRequest true "Attendee data"
// @Success 201 {object} dto.AttendeeResponse
// @Router /private/events/{id}/attendees [post]
func (c *AttendeeController) AddAttendee(ctx echo.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.AddAttendeeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AttendeeService.AddAttendee(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Attendee added successfully")
}

// GetAttendees handles GET /events/:id/attendees
func (c *AttendeeController) GetAttendees(ctx echo.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.AttendeeService.GetAttendeesByEventID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateAttendee handles PUT /attendees/:id
func (c *AttendeeController) UpdateAttendee(ctx echo.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	attendeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid attendee ID")
	}

	var req dto.UpdateAttendeeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AttendeeService.UpdateAttendee(ctx.Request().Context(), attendeeID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Attendee updated successfully")
}

// DeleteAttendee handles DELETE /attendees/:id
func (c *AttendeeController) DeleteAttendee(ctx echo.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	attendeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid attendee ID")
	}

	if appErr := c.AttendeeService.DeleteAttendee(ctx.Request().Context(), attendeeID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Attendee removed successfully")
}
