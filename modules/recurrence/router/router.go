package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/recurrence/controller"

	"github.com/labstack/echo/v4"
)

type RecurrenceRouter struct {
	controller *controller.RecurrenceController
}

func NewRecurrenceRouter(controller *controller.RecurrenceController) *RecurrenceRouter {
	return &RecurrenceRouter{controller: controller}
}

func (r *RecurrenceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	eventRoutes := v1.Group("/private/events", mw.AuthMiddleware())
	eventRoutes.POST("/:id/recurrences", r.controller.CreateRecurrence)
	eventRoutes.GET("/:id/recurrences", r.controller.GetRecurrence)
	eventRoutes.GET("/:id/occurrences", r.controller.GetOccurrences)

	recurrenceRoutes := v1.Group("/private/recurrences", mw.AuthMiddleware())
	recurrenceRoutes.PUT("/:id", r.controller.UpdateRecurrence)
	recurrenceRoutes.DELETE("/:id", r.controller.DeleteRecurrence)
}
