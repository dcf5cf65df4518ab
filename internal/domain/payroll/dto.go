package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // "2006-01-02"
	EndDate    string `json:"end_date"`

	// Statutory contributions for the period, entered on the payroll form.
	SSS        *decimal.Decimal `json:"sss,omitempty"`
	PhilHealth *decimal.Decimal `json:"philhealth,omitempty"`
	PagIbig    *decimal.Decimal `json:"pagibig,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.SSS != nil && r.SSS.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "sss", Message: "must be non-negative"})
	}
	if r.PhilHealth != nil && r.PhilHealth.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "philhealth", Message: "must be non-negative"})
	}
	if r.PagIbig != nil && r.PagIbig.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pagibig", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	DaysWorked       int             `json:"days_worked"`
	Absences         int             `json:"absences"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`

	GrossPay             decimal.Decimal `json:"gross_pay"`
	LateDeduction        decimal.Decimal `json:"late_deduction"`
	UndertimeDeduction   decimal.Decimal `json:"undertime_deduction"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	NightDifferentialPay decimal.Decimal `json:"night_differential_pay"`
	HolidayBonus         decimal.Decimal `json:"holiday_bonus"`
	LeavePay             decimal.Decimal `json:"leave_pay"`

	SSS        decimal.Decimal `json:"sss"`
	PhilHealth decimal.Decimal `json:"philhealth"`
	PagIbig    decimal.Decimal `json:"pagibig"`

	CashAdvanceDeductions decimal.Decimal `json:"cash_advance_deductions"`
	ShortDeductions       decimal.Decimal `json:"short_deductions"`
	LoanDeductions        decimal.Decimal `json:"loan_deductions"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`

	ShortRefs         []InstrumentRef    `json:"short_refs"`
	CashAdvanceRefs   []InstrumentRef    `json:"cash_advance_refs"`
	LoanDeductionRefs []LoanDeductionRef `json:"loan_deduction_refs"`
}

type DeletePayrollResponse struct {
	// Warnings lists instruments the reversal could not locate; the deletion
	// still completes for everything else.
	Warnings []string `json:"warnings,omitempty"`
}

type PeriodOptionResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}
