package constants

import "time"

// Context keys
const (
	ContextTokenData = "tokenData"
	ContextRawToken  = "rawToken"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
)

// Token defaults
const (
	TokenDefaultTTL = 24 * time.Hour
)

// Reminder scheduling
const (
	// ReminderLead is how long before an event's start its reminder fires.
	ReminderLead = 15 * time.Minute

	ReminderQueue       = "reminders"
	TaskTypeEventRemind = "event:remind"
)

// WorkingHours bounds, minutes from midnight.
const (
	MinutesPerDay = 1440
)
