package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll summaries.
type PayrollRepository interface {
	CreateSummary(ctx context.Context, s Summary) (Summary, error)
	GetSummaryByID(ctx context.Context, id string) (Summary, error)

	// GetSummaryByPeriod retrieves the summary for an exact employee+period
	// key, used to refuse duplicate generation.
	GetSummaryByPeriod(ctx context.Context, employeeID string, start, end time.Time) (Summary, error)

	ListSummaries(ctx context.Context, employeeID string, year int) ([]Summary, error)
	DeleteSummary(ctx context.Context, id string) error

	// GetAvailablePeriods lists the distinct periods with stored summaries
	// for UI selection.
	GetAvailablePeriods(ctx context.Context, employeeID string, year int) ([]PeriodOption, error)
}
