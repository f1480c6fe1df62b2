package entity

import (
	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account. Email is immutable after creation.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Email    string    `db:"email" json:"email"`
	Name     string    `db:"name" json:"name"`
	Password string    `db:"password" json:"-"`
	Timezone string    `db:"timezone" json:"timezone"`
	Role     string    `db:"role" json:"role"`
	coreEntity.BaseEntity
}
