package schedule

import (
	"time"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
)

// ISOWeekday returns the weekday of t as 1=Monday, ..., 7=Sunday, the
// convention the weekly patterns are keyed by.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ResolveDailySchedule maps a date to the employment type's expected working
// window. It returns nil for a day off: either the pattern marks the weekday
// off or carries no entry for it. Pure; a missing entry is not a fault.
func ResolveDailySchedule(et schedule.EmploymentType, date time.Time) *schedule.DailySchedule {
	entry, ok := et.WeekPattern[ISOWeekday(date)]
	if !ok || entry.IsOff {
		return nil
	}
	return &entry
}
