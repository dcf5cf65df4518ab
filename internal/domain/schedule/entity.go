package schedule

import "time"

// DailySchedule is the expected working window for a single weekday.
// Clock values are 24-hour "HH:MM" strings, the same representation the
// attendance punches use.
type DailySchedule struct {
	TimeIn  string
	TimeOut string
	IsOff   bool
}

// EmploymentType is a named employee category owning a fixed weekly schedule
// pattern. WeekPattern is keyed by ISO weekday: 1=Monday, ..., 7=Sunday.
type EmploymentType struct {
	ID                   string
	Name                 string
	HoursOfWork          int // standard shift length, defaults to 8
	RequiresTimeTracking bool
	WeekPattern          map[int]DailySchedule
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// StandardHours returns the shift length used as the hourly-rate divisor.
func (et EmploymentType) StandardHours() int {
	if et.HoursOfWork <= 0 {
		return 8
	}
	return et.HoursOfWork
}
