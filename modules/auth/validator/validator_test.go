package validator

import (
	"testing"

	"go-calendar-api/modules/auth/dto"
)

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr bool
	}{
		{
			"valid",
			dto.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "secret123"},
			false,
		},
		{
			"valid with timezone",
			dto.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "secret123", Timezone: "Europe/Berlin"},
			false,
		},
		{
			"bad email",
			dto.RegisterRequest{Email: "nope", Name: "Alice", Password: "secret123"},
			true,
		},
		{
			"short password",
			dto.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "short"},
			true,
		},
		{
			"name too short",
			dto.RegisterRequest{Email: "a@x.com", Name: "A", Password: "secret123"},
			true,
		},
		{
			"bogus timezone",
			dto.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "secret123", Timezone: "Nowhere/Here"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRegisterRequest(&tt.req)
			if result.HasError() != tt.wantErr {
				t.Errorf("HasError() = %v, want %v (errors: %v)", result.HasError(), tt.wantErr, result.Errors)
			}
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	ok := ValidateLoginRequest(&dto.LoginRequest{Email: "a@x.com", Password: "secret123"})
	if ok.HasError() {
		t.Errorf("valid login flagged: %v", ok.Errors)
	}

	bad := ValidateLoginRequest(&dto.LoginRequest{Email: "nope", Password: "x"})
	if len(bad.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", bad.Errors)
	}
}
