package holiday

import "context"

// HolidayRepository defines data access methods for holiday records.
type HolidayRepository interface {
	// ListByMonth retrieves holidays whose range touches the given month.
	ListByMonth(ctx context.Context, year, month int) ([]Holiday, error)

	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
