package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/workinghours/controller"

	"github.com/labstack/echo/v4"
)

type WorkingHoursRouter struct {
	controller *controller.WorkingHoursController
}

func NewWorkingHoursRouter(controller *controller.WorkingHoursController) *WorkingHoursRouter {
	return &WorkingHoursRouter{controller: controller}
}

func (r *WorkingHoursRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	whRoutes := v1.Group("/private/working-hours", mw.AuthMiddleware())
	whRoutes.POST("", r.controller.CreateWorkingHours)
	whRoutes.GET("", r.controller.GetWorkingHours)
	whRoutes.PUT("", r.controller.UpdateWorkingHours)
	whRoutes.DELETE("", r.controller.DeleteWorkingHours)
}
