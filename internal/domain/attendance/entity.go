package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one raw clock record per employee per calendar day.
// TimeIn/TimeOut are 24-hour "HH:MM" strings; an empty string means the
// employee did not punch.
type Attendance struct {
	ID         string
	EmployeeID string
	Day        int
	Month      int
	Year       int
	TimeIn     string
	TimeOut    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Date returns the calendar date of the record at local midnight.
func (a Attendance) Date() time.Time {
	return time.Date(a.Year, time.Month(a.Month), a.Day, 0, 0, 0, 0, time.Local)
}

// HasPunch reports whether either punch is present.
func (a Attendance) HasPunch() bool {
	return a.TimeIn != "" || a.TimeOut != ""
}

// Settings is the company-wide attendance policy. Singleton per deployment;
// loaded once per computation pass.
type Settings struct {
	ID                          string
	LateGracePeriodMinutes      int
	LateDeductionPerMinute      decimal.Decimal
	UndertimeGracePeriodMinutes int
	UndertimeDeductionPerMinute decimal.Decimal
	OvertimeHourlyMultiplier    decimal.Decimal
	NightDifferentialMultiplier decimal.Decimal
	NightWindowStart            string // "HH:MM", e.g. "22:00"
	NightWindowEnd              string // "HH:MM", e.g. "06:00"
	RegularHolidayMultiplier    decimal.Decimal
	SpecialHolidayMultiplier    decimal.Decimal
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// DefaultSettings is the policy used when none has been saved yet. Missing
// policy data degrades to these values instead of failing the computation.
func DefaultSettings() Settings {
	return Settings{
		LateGracePeriodMinutes:      5,
		LateDeductionPerMinute:      decimal.Zero,
		UndertimeGracePeriodMinutes: 5,
		UndertimeDeductionPerMinute: decimal.Zero,
		OvertimeHourlyMultiplier:    decimal.NewFromFloat(1.25),
		NightDifferentialMultiplier: decimal.NewFromFloat(0.1),
		NightWindowStart:            "22:00",
		NightWindowEnd:              "06:00",
		RegularHolidayMultiplier:    decimal.NewFromInt(2),
		SpecialHolidayMultiplier:    decimal.NewFromFloat(1.3),
	}
}
