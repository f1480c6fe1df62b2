package controller

import (
	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/core/errors"
	"go-calendar-api/core/utils"
	"go-calendar-api/modules/recurrence/dto"
	"go-calendar-api/modules/recurrence/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecurrenceController handles recurrence HTTP requests
type RecurrenceController struct {
	controller.BaseController
	RecurrenceService service.RecurrenceServiceInterface
}

func NewRecurrenceController(svc service.RecurrenceServiceInterface) *RecurrenceController {
	return &RecurrenceController{
		BaseController:    controller.NewBaseController(),
		RecurrenceService: svc,
	}
}

func (c *RecurrenceController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// CreateRecurrence handles POST /events/:id/recurrences
// @Summary Attach a recurrence rule to an event
// @Tags Recurrence
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CreateRecurrenceRequest true "Recurrence rule"
// @Success 201 {object} dto.RecurrenceResponse
// @Router /private/events/{id}/recurrences [post]
func (c *RecurrenceController) CreateRecurrence(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.CreateRecurrenceRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.RecurrenceService.CreateRecurrence(ctx.Request().Context(), eventID, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Recurrence created successfully")
}

// GetRecurrence handles GET /events/:id/recurrences
func (c *RecurrenceController) GetRecurrence(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.RecurrenceService.GetRecurrenceByEventID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetOccurrences handles GET /events/:id/occurrences with an optional
// ?until= horizon.
func (c *RecurrenceController) GetOccurrences(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.RecurrenceService.GetOccurrences(ctx.Request().Context(), eventID, ctx.QueryParam("until"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateRecurrence handles PUT /recurrences/:id
func (c *RecurrenceController) UpdateRecurrence(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	recurrenceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid recurrence ID")
	}

	var req dto.UpdateRecurrenceRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.RecurrenceService.UpdateRecurrence(ctx.Request().Context(), recurrenceID, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Recurrence updated successfully")
}

// DeleteRecurrence handles DELETE /recurrences/:id
func (c *RecurrenceController) DeleteRecurrence(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	recurrenceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid recurrence ID")
	}

	if appErr := c.RecurrenceService.DeleteRecurrence(ctx.Request().Context(), recurrenceID, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Recurrence deleted successfully")
}
