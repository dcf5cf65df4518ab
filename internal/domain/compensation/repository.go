package compensation

import "context"

// CompensationRepository defines data access methods for per-day
// compensation records.
type CompensationRepository interface {
	// ListByMonth retrieves all records for an employee in a month.
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]Compensation, error)

	// GetByDay retrieves the record for one calendar day, nil when absent.
	GetByDay(ctx context.Context, employeeID string, year, month, day int) (*Compensation, error)

	// Upsert creates or updates a single record, keyed by employee and date.
	Upsert(ctx context.Context, c Compensation) (Compensation, error)

	// SaveMonth upserts a full month of records for an employee.
	SaveMonth(ctx context.Context, employeeID string, year, month int, records []Compensation) error
}
