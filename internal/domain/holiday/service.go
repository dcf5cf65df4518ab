package holiday

import "context"

// HolidayService manages the holiday calendar.
type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
