package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/config"
	"go-calendar-api/core/constants"
	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/core/mailer"
	"go-calendar-api/core/utils"
	"go-calendar-api/modules/attendee"
	attendeeRepository "go-calendar-api/modules/attendee/repository"
	"go-calendar-api/modules/auth"
	authRepository "go-calendar-api/modules/auth/repository"
	"go-calendar-api/modules/calendar"
	"go-calendar-api/modules/event"
	eventRepository "go-calendar-api/modules/event/repository"
	"go-calendar-api/modules/recurrence"
	reminderService "go-calendar-api/modules/reminder/service"
	reminderWorker "go-calendar-api/modules/reminder/worker"
	"go-calendar-api/modules/schedule"
	"go-calendar-api/modules/workinghours"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole process: config, database, migrations, Redis, the
// reminder queue worker and the HTTP server. It blocks until a shutdown
// signal arrives.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.Log.Level)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	if err := database.RunMigrations(db, cfg.Database); err != nil {
		return err
	}

	cacheClient, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer cacheClient.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()

	eventRepo := eventRepository.NewEventRepository(db)
	reminders := reminderService.NewReminderService(asynqClient, inspector, eventRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: utils.GenerateID,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth.Init(e, db, cacheClient)
	calendar.Init(e, db, cacheClient)
	event.Init(e, db, cacheClient, reminders)
	recurrence.Init(e, db, cacheClient)
	attendee.Init(e, db, cacheClient)
	workinghours.Init(e, db, cacheClient)
	schedule.Init(e, db, cacheClient)

	worker := reminderWorker.NewWorker(
		eventRepo,
		attendeeRepository.NewAttendeeRepository(db),
		authRepository.NewUserRepository(db),
		mailer.NewMailer(cfg.SMTP),
	)
	mux := asynq.NewServeMux()
	worker.Register(mux, constants.TaskTypeEventRemind)

	queueServer := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{constants.ReminderQueue: 1},
	})
	go func() {
		if err := queueServer.Run(mux); err != nil {
			logger.Error("Server:Run", "component", "asynq", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			logger.Info("Server:Run", "reason", "http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Run", "reason", "shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Run", "component", "echo", "error", err)
	}
	queueServer.Shutdown()

	return nil
}
