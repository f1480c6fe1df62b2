package validator

import (
	"fmt"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/modules/workinghours/dto"
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

// ValidateWorkingHoursRequest checks every supplied day pair: bounds within
// 0-1440 and start <= end. Overnight windows (start > end) are rejected.
func ValidateWorkingHoursRequest(req *dto.CreateWorkingHoursRequest) *ValidationResult {
	result := &ValidationResult{}

	days := []struct {
		name  string
		start *int
		end   *int
	}{
		{"monday", req.MondayStart, req.MondayEnd},
		{"tuesday", req.TuesdayStart, req.TuesdayEnd},
		{"wednesday", req.WednesdayStart, req.WednesdayEnd},
		{"thursday", req.ThursdayStart, req.ThursdayEnd},
		{"friday", req.FridayStart, req.FridayEnd},
		{"saturday", req.SaturdayStart, req.SaturdayEnd},
		{"sunday", req.SundayStart, req.SundayEnd},
	}

	for _, d := range days {
		for suffix, v := range map[string]*int{"_start": d.start, "_end": d.end} {
			if v != nil && (*v < 0 || *v > constants.MinutesPerDay) {
				result.add(d.name+suffix, fmt.Sprintf("must be between 0 and %d", constants.MinutesPerDay))
			}
		}
		if d.start != nil && d.end != nil && *d.start > *d.end {
			result.add(d.name+"_start", "must not be after "+d.name+"_end")
		}
		if (d.start == nil) != (d.end == nil) {
			result.add(d.name+"_start", "start and end must be set together")
		}
	}

	return result
}
