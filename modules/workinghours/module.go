package workinghours

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/workinghours/controller"
	"go-calendar-api/modules/workinghours/repository"
	"go-calendar-api/modules/workinghours/router"
	"go-calendar-api/modules/workinghours/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the working-hours module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewWorkingHoursRepository(db)
	svc := service.NewWorkingHoursService(repo)
	ctrl := controller.NewWorkingHoursController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewWorkingHoursRouter(ctrl).Setup(e, mw)
}
