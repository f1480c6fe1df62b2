package validator

import (
	"net/mail"
	"time"

	"go-calendar-api/core/controller"
	"go-calendar-api/modules/auth/dto"
)

type ValidationResult struct {
	Errors []controller.ValidationError `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

func ValidateRegisterRequest(req *dto.RegisterRequest) *ValidationResult {
	result := &ValidationResult{}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		result.add("email", "must be a valid email address")
	}
	if len(req.Name) < 2 || len(req.Name) > 100 {
		result.add("name", "must be between 2 and 100 characters")
	}
	if len(req.Password) < 8 {
		result.add("password", "must be at least 8 characters")
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			result.add("timezone", "must be a valid IANA timezone")
		}
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *ValidationResult {
	result := &ValidationResult{}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		result.add("email", "must be a valid email address")
	}
	if len(req.Password) < 8 {
		result.add("password", "must be at least 8 characters")
	}

	return result
}
