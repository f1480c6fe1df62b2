package event

import (
	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	attendeeRepository "go-calendar-api/modules/attendee/repository"
	calendarRepository "go-calendar-api/modules/calendar/repository"
	"go-calendar-api/modules/event/controller"
	"go-calendar-api/modules/event/repository"
	"go-calendar-api/modules/event/router"
	"go-calendar-api/modules/event/service"
	recurrenceRepository "go-calendar-api/modules/recurrence/repository"
	whRepository "go-calendar-api/modules/workinghours/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The reminder
// scheduler is injected by the server so the asynq client is shared.
func Init(e *echo.Echo, db database.Database, cache cache.Cache, reminders service.ReminderScheduler) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(
		repo,
		calendarRepository.NewCalendarRepository(db),
		whRepository.NewWorkingHoursRepository(db),
		recurrenceRepository.NewRecurrenceRepository(db),
		attendeeRepository.NewAttendeeRepository(db),
		reminders,
	)
	ctrl := controller.NewEventController(svc)
	mw := middleware.NewMiddleware(cache)

	router.NewEventRouter(ctrl).Setup(e, mw)
}
