package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	calendarRoutes := v1.Group("/private/calendars", mw.AuthMiddleware())
	calendarRoutes.POST("", r.controller.CreateCalendar)
	calendarRoutes.GET("", r.controller.GetMyCalendars)
	calendarRoutes.GET("/:id", r.controller.GetCalendar)
	calendarRoutes.PUT("/:id", r.controller.UpdateCalendar)
	calendarRoutes.DELETE("/:id", r.controller.DeleteCalendar)
}
