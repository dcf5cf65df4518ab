package payroll

import "context"

// PayrollService defines period aggregation and its inverse.
type PayrollService interface {
	// GeneratePayroll aggregates the period's compensation records, consumes
	// outstanding deduction instruments, and persists the summary together
	// with the updated balances.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (SummaryResponse, error)

	GetPayroll(ctx context.Context, id string) (SummaryResponse, error)
	ListPayrolls(ctx context.Context, employeeID string, year int) ([]SummaryResponse, error)

	// DeletePayroll reverses every deduction the summary recorded, then
	// removes the summary. Instruments that cannot be located are reported
	// as warnings, not errors.
	DeletePayroll(ctx context.Context, id string) (DeletePayrollResponse, error)

	GetAvailablePeriods(ctx context.Context, employeeID string, year int) ([]PeriodOptionResponse, error)
}
