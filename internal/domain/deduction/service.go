package deduction

import "context"

// DeductionService manages deduction instruments on behalf of the forms UI.
// Balance mutation during payroll runs is owned by the payroll service, not
// here.
type DeductionService interface {
	CreateCashAdvance(ctx context.Context, req CreateCashAdvanceRequest) (CashAdvanceResponse, error)
	ListCashAdvances(ctx context.Context, employeeID string, year, month int) ([]CashAdvanceResponse, error)
	DeleteCashAdvance(ctx context.Context, id string) error

	CreateShort(ctx context.Context, req CreateShortRequest) (ShortResponse, error)
	ListShorts(ctx context.Context, employeeID string, year, month int) ([]ShortResponse, error)
	DeleteShort(ctx context.Context, id string) error

	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	ListLoans(ctx context.Context, employeeID string, year, month int) ([]LoanResponse, error)
	DeleteLoan(ctx context.Context, id string) error
}
