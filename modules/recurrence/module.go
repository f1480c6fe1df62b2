package recurrence

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	eventRepository "go-calendar-api/modules/event/repository"
	"go-calendar-api/modules/recurrence/controller"
	"go-calendar-api/modules/recurrence/repository"
	"go-calendar-api/modules/recurrence/router"
	"go-calendar-api/modules/recurrence/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the recurrence module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewRecurrenceRepository(db)
	svc := service.NewRecurrenceService(repo, eventRepository.NewEventRepository(db))
	ctrl := controller.NewRecurrenceController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewRecurrenceRouter(ctrl).Setup(e, mw)
}
