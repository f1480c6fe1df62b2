package controller

import (
	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/core/errors"
	"go-calendar-api/core/utils"
	"go-calendar-api/modules/workinghours/dto"
	"go-calendar-api/modules/workinghours/service"
	"go-calendar-api/modules/workinghours/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WorkingHoursController handles working-hours HTTP requests
type WorkingHoursController struct {
	controller.BaseController
	WorkingHoursService service.WorkingHoursServiceInterface
}

func NewWorkingHoursController(svc service.WorkingHoursServiceInterface) *WorkingHoursController {
	return &WorkingHoursController{
		BaseController:      controller.NewBaseController(),
		WorkingHoursService: svc,
	}
}

func (c *WorkingHoursController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// CreateWorkingHours handles POST /working-hours
// @Summary Set the caller's working hours
// @Tags WorkingHours
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkingHoursRequest true "Per-day windows, minutes from midnight"
// @Success 201 {object} dto.WorkingHoursResponse
// @Failure 409 {object} errors.AppError
// @Router /private/working-hours [post]
func (c *WorkingHoursController) CreateWorkingHours(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateWorkingHoursRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateWorkingHoursRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid working hours", validationResult)
	}

	result, appErr := c.WorkingHoursService.CreateWorkingHours(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Working hours created successfully")
}

// GetWorkingHours handles GET /working-hours
func (c *WorkingHoursController) GetWorkingHours(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.WorkingHoursService.GetWorkingHours(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateWorkingHours handles PUT /working-hours
func (c *WorkingHoursController) UpdateWorkingHours(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateWorkingHoursRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateWorkingHoursRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid working hours", validationResult)
	}

	result, appErr := c.WorkingHoursService.UpdateWorkingHours(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Working hours updated successfully")
}

// DeleteWorkingHours handles DELETE /working-hours
func (c *WorkingHoursController) DeleteWorkingHours(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.WorkingHoursService.DeleteWorkingHours(ctx.Request().Context(), userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Working hours deleted successfully")
}
