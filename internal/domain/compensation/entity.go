package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

type DayType string

const (
	DayTypeRegular DayType = "Regular"
	DayTypeHoliday DayType = "Holiday"
	DayTypeRestDay DayType = "Rest Day"
)

var DayTypeValues = []string{
	string(DayTypeRegular),
	string(DayTypeHoliday),
	string(DayTypeRestDay),
}

// Compensation is the computed-and-persisted per-day pay record.
//
// When ManualOverride is false every derived field must equal what the pay
// pipeline would produce from the current attendance + schedule + settings +
// holiday inputs; the record is always re-derivable. When ManualOverride is
// true the derived fields are user-authoritative and recomputation must not
// touch them.
type Compensation struct {
	ID                     string
	EmployeeID             string
	Day                    int
	Month                  int
	Year                   int
	DayType                DayType
	HoursWorked            decimal.Decimal
	LateMinutes            int
	UndertimeMinutes       int
	OvertimeMinutes        int
	NightDifferentialHours decimal.Decimal
	GrossPay               decimal.Decimal
	Deductions             decimal.Decimal
	NetPay                 decimal.Decimal
	LateDeduction          decimal.Decimal
	UndertimeDeduction     decimal.Decimal
	OvertimePay            decimal.Decimal
	NightDifferentialPay   decimal.Decimal
	HolidayBonus           decimal.Decimal
	LeaveType              string
	LeavePay               decimal.Decimal
	Absence                bool
	ManualOverride         bool
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Date returns the calendar date of the record at local midnight.
func (c Compensation) Date() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, time.Local)
}

// NewDefault returns the zero-value record created the first time an
// employee is due for a day.
func NewDefault(employeeID string, year, month, day int) Compensation {
	return Compensation{
		EmployeeID:             employeeID,
		Day:                    day,
		Month:                  month,
		Year:                   year,
		DayType:                DayTypeRegular,
		HoursWorked:            decimal.Zero,
		NightDifferentialHours: decimal.Zero,
		GrossPay:               decimal.Zero,
		Deductions:             decimal.Zero,
		NetPay:                 decimal.Zero,
		LateDeduction:          decimal.Zero,
		UndertimeDeduction:     decimal.Zero,
		OvertimePay:            decimal.Zero,
		NightDifferentialPay:   decimal.Zero,
		HolidayBonus:           decimal.Zero,
		LeavePay:               decimal.Zero,
	}
}
