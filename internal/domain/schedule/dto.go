package schedule

import (
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type DailyScheduleInput struct {
	DayOfWeek int    `json:"day_of_week"` // 1=Monday, ..., 7=Sunday
	TimeIn    string `json:"time_in"`
	TimeOut   string `json:"time_out"`
	IsOff     bool   `json:"is_off"`
}

type UpsertEmploymentTypeRequest struct {
	Name                 string               `json:"name"`
	HoursOfWork          *int                 `json:"hours_of_work,omitempty"`
	RequiresTimeTracking *bool                `json:"requires_time_tracking,omitempty"`
	WeekPattern          []DailyScheduleInput `json:"week_pattern"`
}

func (r *UpsertEmploymentTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.HoursOfWork != nil && (*r.HoursOfWork < 1 || *r.HoursOfWork > 24) {
		errs = append(errs, validator.ValidationError{Field: "hours_of_work", Message: "must be between 1 and 24"})
	}

	seen := make(map[int]bool)
	for _, d := range r.WeekPattern {
		if d.DayOfWeek < 1 || d.DayOfWeek > 7 {
			errs = append(errs, validator.ValidationError{Field: "week_pattern", Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)"})
			continue
		}
		if seen[d.DayOfWeek] {
			errs = append(errs, validator.ValidationError{Field: "week_pattern", Message: "duplicate day_of_week entry"})
		}
		seen[d.DayOfWeek] = true

		if !d.IsOff {
			if !validator.IsValidClockTime(d.TimeIn) {
				errs = append(errs, validator.ValidationError{Field: "week_pattern", Message: "time_in must be a valid HH:MM clock time"})
			}
			if !validator.IsValidClockTime(d.TimeOut) {
				errs = append(errs, validator.ValidationError{Field: "week_pattern", Message: "time_out must be a valid HH:MM clock time"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyScheduleResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	TimeIn    string `json:"time_in,omitempty"`
	TimeOut   string `json:"time_out,omitempty"`
	IsOff     bool   `json:"is_off"`
}

type EmploymentTypeResponse struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	HoursOfWork          int                     `json:"hours_of_work"`
	RequiresTimeTracking bool                    `json:"requires_time_tracking"`
	WeekPattern          []DailyScheduleResponse `json:"week_pattern"`
}
