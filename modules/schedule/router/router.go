package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	controller *controller.ScheduleController
}

func NewScheduleRouter(controller *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{controller: controller}
}

func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	scheduleRoutes := v1.Group("/private/schedules", mw.AuthMiddleware())
	scheduleRoutes.POST("", r.controller.CreateSchedule)
	scheduleRoutes.GET("", r.controller.GetMySchedules)
	scheduleRoutes.GET("/:id", r.controller.GetSchedule)
	scheduleRoutes.PUT("/:id", r.controller.UpdateSchedule)
	scheduleRoutes.DELETE("/:id", r.controller.DeleteSchedule)
}
