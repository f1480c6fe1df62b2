package calendar

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/calendar/controller"
	"go-calendar-api/modules/calendar/repository"
	"go-calendar-api/modules/calendar/router"
	"go-calendar-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewCalendarRepository(db)
	svc := service.NewCalendarService(repo)
	ctrl := controller.NewCalendarController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewCalendarRouter(ctrl).Setup(e, mw)
}
