package main

import (
	"go-calendar-api/core/logger"
	"go-calendar-api/core/server"
)

// @title Calendar API
// @version 1.0
// @description Backend API for calendar and event scheduling

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
