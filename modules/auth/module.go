package auth

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/auth/controller"
	"go-calendar-api/modules/auth/repository"
	"go-calendar-api/modules/auth/router"
	"go-calendar-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}
