package deduction

import "context"

// CashAdvanceRepository defines data access for cash advances. Month-window
// lookups take the already-expanded window (see ExpandWindow) so the search
// policy stays in one place.
type CashAdvanceRepository interface {
	Create(ctx context.Context, ca CashAdvance) (CashAdvance, error)
	GetByID(ctx context.Context, id string) (CashAdvance, error)
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]CashAdvance, error)

	// ListOutstandingInMonths retrieves unpaid advances with a positive
	// balance dated in any of the given months.
	ListOutstandingInMonths(ctx context.Context, employeeID string, months []MonthRef) ([]CashAdvance, error)

	// GetByIDInMonths locates an advance by ID restricted to the months
	// window; used by reversal.
	GetByIDInMonths(ctx context.Context, id string, months []MonthRef) (CashAdvance, error)

	Update(ctx context.Context, ca CashAdvance) error
	Delete(ctx context.Context, id string) error
}

// ShortRepository defines data access for shorts.
type ShortRepository interface {
	Create(ctx context.Context, s Short) (Short, error)
	GetByID(ctx context.Context, id string) (Short, error)
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]Short, error)
	ListOutstandingInMonths(ctx context.Context, employeeID string, months []MonthRef) ([]Short, error)
	GetByIDInMonths(ctx context.Context, id string, months []MonthRef) (Short, error)
	Update(ctx context.Context, s Short) error
	Delete(ctx context.Context, id string) error
}

// LoanRepository defines data access for loans and their deduction records.
type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]Loan, error)
	ListOutstandingInMonths(ctx context.Context, employeeID string, months []MonthRef) ([]Loan, error)
	GetByIDInMonths(ctx context.Context, id string, months []MonthRef) (Loan, error)
	Update(ctx context.Context, l Loan) error
	Delete(ctx context.Context, id string) error

	CreateDeduction(ctx context.Context, d LoanDeduction) (LoanDeduction, error)
	GetDeductionByID(ctx context.Context, id string) (LoanDeduction, error)
	DeleteDeduction(ctx context.Context, id string) error
}
