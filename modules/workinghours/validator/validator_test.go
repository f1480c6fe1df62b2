package validator

import (
	"testing"

	"go-calendar-api/modules/workinghours/dto"
)

func intPtr(v int) *int { return &v }

func TestValidateWorkingHoursRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateWorkingHoursRequest
		wantErr bool
	}{
		{
			"valid single day",
			dto.CreateWorkingHoursRequest{MondayStart: intPtr(540), MondayEnd: intPtr(1020)},
			false,
		},
		{
			"empty request",
			dto.CreateWorkingHoursRequest{},
			false,
		},
		{
			"full day bounds",
			dto.CreateWorkingHoursRequest{SundayStart: intPtr(0), SundayEnd: intPtr(1440)},
			false,
		},
		{
			"negative start",
			dto.CreateWorkingHoursRequest{MondayStart: intPtr(-1), MondayEnd: intPtr(600)},
			true,
		},
		{
			"end past midnight",
			dto.CreateWorkingHoursRequest{MondayStart: intPtr(540), MondayEnd: intPtr(1441)},
			true,
		},
		{
			"overnight window rejected",
			dto.CreateWorkingHoursRequest{FridayStart: intPtr(1200), FridayEnd: intPtr(300)},
			true,
		},
		{
			"start without end",
			dto.CreateWorkingHoursRequest{TuesdayStart: intPtr(540)},
			true,
		},
		{
			"end without start",
			dto.CreateWorkingHoursRequest{TuesdayEnd: intPtr(1020)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateWorkingHoursRequest(&tt.req)
			if result.HasError() != tt.wantErr {
				t.Errorf("HasError() = %v, want %v (errors: %v)", result.HasError(), tt.wantErr, result.Errors)
			}
		})
	}
}
