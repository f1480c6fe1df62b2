package entity

import (
	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

// Calendar groups a user's events. Every event belongs to exactly one
// calendar owned by the same user.
type Calendar struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Color       string    `db:"color" json:"color"`
	IsDefault   bool      `db:"is_default" json:"is_default"`
	IsVisible   bool      `db:"is_visible" json:"is_visible"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	coreEntity.BaseEntity
}
