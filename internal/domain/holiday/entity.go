package holiday

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeRegular Type = "Regular"
	TypeSpecial Type = "Special"
)

var TypeValues = []string{string(TypeRegular), string(TypeSpecial)}

// Holiday is a named date range with a pay multiplier. A date matches when
// it falls within [StartDate, EndDate] inclusive.
type Holiday struct {
	ID         string
	Name       string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Multiplier decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether date falls within the holiday's inclusive range.
// Only the calendar date is compared.
func (h Holiday) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(h.StartDate)) && !d.After(truncateToDay(h.EndDate))
}

// FindForDate returns the first holiday covering date, or nil. At most one
// holiday applies per date even when ranges overlap.
func FindForDate(holidays []Holiday, date time.Time) *Holiday {
	for i := range holidays {
		if holidays[i].Covers(date) {
			return &holidays[i]
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
