package router

import (
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", r.controller.Register)
	authRoutes.POST("/login", r.controller.Login)

	// Private routes
	privateAuth := v1.Group("/private/auth", mw.AuthMiddleware())
	privateAuth.POST("/logout", r.controller.Logout)

	userRoutes := v1.Group("/private/users", mw.AuthMiddleware())
	userRoutes.GET("/me", r.controller.GetMe)
	userRoutes.PUT("/me", r.controller.UpdateMe)
	userRoutes.DELETE("/me", r.controller.DeleteMe)
}
