package schedule

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/schedule/controller"
	"go-calendar-api/modules/schedule/repository"
	"go-calendar-api/modules/schedule/router"
	"go-calendar-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewScheduleRepository(db)
	svc := service.NewScheduleService(repo)
	ctrl := controller.NewScheduleController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewScheduleRouter(ctrl).Setup(e, mw)
}
