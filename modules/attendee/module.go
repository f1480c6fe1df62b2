package attendee

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/attendee/controller"
	"go-calendar-api/modules/attendee/repository"
	"go-calendar-api/modules/attendee/router"
	"go-calendar-api/modules/attendee/service"
	eventRepository "go-calendar-api/modules/event/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the attendee module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewAttendeeRepository(db)
	svc := service.NewAttendeeService(repo, eventRepository.NewEventRepository(db))
	ctrl := controller.NewAttendeeController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewAttendeeRouter(ctrl).Setup(e, mw)
}
