package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // "2006-01-02"
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.TimeIn != "" && !validator.IsValidClockTime(r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be a valid HH:MM clock time"})
	}
	if r.TimeOut != "" && !validator.IsValidClockTime(r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be a valid HH:MM clock time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in,omitempty"`
	TimeOut    string `json:"time_out,omitempty"`
}

type UpdateSettingsRequest struct {
	LateGracePeriodMinutes      *int             `json:"late_grace_period_minutes,omitempty"`
	LateDeductionPerMinute      *decimal.Decimal `json:"late_deduction_per_minute,omitempty"`
	UndertimeGracePeriodMinutes *int             `json:"undertime_grace_period_minutes,omitempty"`
	UndertimeDeductionPerMinute *decimal.Decimal `json:"undertime_deduction_per_minute,omitempty"`
	OvertimeHourlyMultiplier    *decimal.Decimal `json:"overtime_hourly_multiplier,omitempty"`
	NightDifferentialMultiplier *decimal.Decimal `json:"night_differential_multiplier,omitempty"`
	NightWindowStart            *string          `json:"night_window_start,omitempty"`
	NightWindowEnd              *string          `json:"night_window_end,omitempty"`
	RegularHolidayMultiplier    *decimal.Decimal `json:"regular_holiday_multiplier,omitempty"`
	SpecialHolidayMultiplier    *decimal.Decimal `json:"special_holiday_multiplier,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LateGracePeriodMinutes != nil && *r.LateGracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_grace_period_minutes", Message: "must be non-negative"})
	}
	if r.UndertimeGracePeriodMinutes != nil && *r.UndertimeGracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "undertime_grace_period_minutes", Message: "must be non-negative"})
	}
	if r.LateDeductionPerMinute != nil && r.LateDeductionPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_deduction_per_minute", Message: "must be non-negative"})
	}
	if r.UndertimeDeductionPerMinute != nil && r.UndertimeDeductionPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "undertime_deduction_per_minute", Message: "must be non-negative"})
	}
	if r.OvertimeHourlyMultiplier != nil && r.OvertimeHourlyMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_multiplier", Message: "must be non-negative"})
	}
	if r.NightDifferentialMultiplier != nil && r.NightDifferentialMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "night_differential_multiplier", Message: "must be non-negative"})
	}
	if r.NightWindowStart != nil && !validator.IsValidClockTime(*r.NightWindowStart) {
		errs = append(errs, validator.ValidationError{Field: "night_window_start", Message: "must be a valid HH:MM clock time"})
	}
	if r.NightWindowEnd != nil && !validator.IsValidClockTime(*r.NightWindowEnd) {
		errs = append(errs, validator.ValidationError{Field: "night_window_end", Message: "must be a valid HH:MM clock time"})
	}
	if r.RegularHolidayMultiplier != nil && r.RegularHolidayMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_holiday_multiplier", Message: "must be non-negative"})
	}
	if r.SpecialHolidayMultiplier != nil && r.SpecialHolidayMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "special_holiday_multiplier", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	ID                          string          `json:"id"`
	LateGracePeriodMinutes      int             `json:"late_grace_period_minutes"`
	LateDeductionPerMinute      decimal.Decimal `json:"late_deduction_per_minute"`
	UndertimeGracePeriodMinutes int             `json:"undertime_grace_period_minutes"`
	UndertimeDeductionPerMinute decimal.Decimal `json:"undertime_deduction_per_minute"`
	OvertimeHourlyMultiplier    decimal.Decimal `json:"overtime_hourly_multiplier"`
	NightDifferentialMultiplier decimal.Decimal `json:"night_differential_multiplier"`
	NightWindowStart            string          `json:"night_window_start"`
	NightWindowEnd              string          `json:"night_window_end"`
	RegularHolidayMultiplier    decimal.Decimal `json:"regular_holiday_multiplier"`
	SpecialHolidayMultiplier    decimal.Decimal `json:"special_holiday_multiplier"`
}
