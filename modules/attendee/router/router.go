package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/attendee/controller"

	"github.com/labstack/echo/v4"
)

type AttendeeRouter struct {
	controller *controller.AttendeeController
}

func NewAttendeeRouter(controller *controller.AttendeeController) *AttendeeRouter {
	return &AttendeeRouter{controller: controller}
}

func (r *AttendeeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	eventRoutes := v1.Group("/private/events", mw.AuthMiddleware())
	eventRoutes.POST("/:id/attendees", r.controller.AddAttendee)
	eventRoutes.GET("/:id/attendees", r.controller.GetAttendees)

	attendeeRoutes := v1.Group("/private/attendees", mw.AuthMiddleware())
	attendeeRoutes.PUT("/:id", r.controller.UpdateAttendee)
	attendeeRoutes.DELETE("/:id", r.controller.DeleteAttendee)
}
