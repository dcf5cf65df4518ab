package compensation

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type RecomputeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *RecomputeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEditRequest edits specific fields of a day's record while it is in
// manual override mode. Only the fields that are set are applied; each edit
// re-derives its direct downstream totals and nothing else.
type ManualEditRequest struct {
	EmployeeID             string           `json:"employee_id"`
	Date                   string           `json:"date"` // "2006-01-02"
	DayType                *string          `json:"day_type,omitempty"`
	HoursWorked            *decimal.Decimal `json:"hours_worked,omitempty"`
	LateMinutes            *int             `json:"late_minutes,omitempty"`
	UndertimeMinutes       *int             `json:"undertime_minutes,omitempty"`
	OvertimeMinutes        *int             `json:"overtime_minutes,omitempty"`
	NightDifferentialHours *decimal.Decimal `json:"night_differential_hours,omitempty"`
	GrossPay               *decimal.Decimal `json:"gross_pay,omitempty"`
	NetPay                 *decimal.Decimal `json:"net_pay,omitempty"`
	LeaveType              *string          `json:"leave_type,omitempty"`
	LeavePay               *decimal.Decimal `json:"leave_pay,omitempty"`
	Absence                *bool            `json:"absence,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
}

func (r *ManualEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.DayType != nil && !validator.IsInSlice(*r.DayType, DayTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "must be 'Regular', 'Holiday' or 'Rest Day'"})
	}
	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "must be non-negative"})
	}
	if r.UndertimeMinutes != nil && *r.UndertimeMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "undertime_minutes", Message: "must be non-negative"})
	}
	if r.OvertimeMinutes != nil && *r.OvertimeMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_minutes", Message: "must be non-negative"})
	}
	if r.HoursWorked != nil && r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.NightDifferentialHours != nil && r.NightDifferentialHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "night_differential_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetManualOverrideRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Enabled    bool   `json:"enabled"`
}

func (r *SetManualOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Monetary fields are rounded to two decimals in responses only; stored
// values keep full precision.
type CompensationResponse struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	Date                   string          `json:"date"`
	DayType                string          `json:"day_type"`
	HoursWorked            decimal.Decimal `json:"hours_worked"`
	LateMinutes            int             `json:"late_minutes"`
	UndertimeMinutes       int             `json:"undertime_minutes"`
	OvertimeMinutes        int             `json:"overtime_minutes"`
	NightDifferentialHours decimal.Decimal `json:"night_differential_hours"`
	GrossPay               decimal.Decimal `json:"gross_pay"`
	Deductions             decimal.Decimal `json:"deductions"`
	NetPay                 decimal.Decimal `json:"net_pay"`
	LateDeduction          decimal.Decimal `json:"late_deduction"`
	UndertimeDeduction     decimal.Decimal `json:"undertime_deduction"`
	OvertimePay            decimal.Decimal `json:"overtime_pay"`
	NightDifferentialPay   decimal.Decimal `json:"night_differential_pay"`
	HolidayBonus           decimal.Decimal `json:"holiday_bonus"`
	LeaveType              string          `json:"leave_type,omitempty"`
	LeavePay               decimal.Decimal `json:"leave_pay"`
	Absence                bool            `json:"absence"`
	ManualOverride         bool            `json:"manual_override"`
	Notes                  string          `json:"notes,omitempty"`
}
