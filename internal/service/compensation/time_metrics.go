package compensation

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

// ActualTime are the raw punches for a day; empty strings mean not punched.
type ActualTime struct {
	TimeIn  string
	TimeOut string
}

type TimeMetrics struct {
	LateMinutes            int
	UndertimeMinutes       int
	OvertimeMinutes        int
	HoursWorked            decimal.Decimal
	NightDifferentialHours decimal.Decimal
}

func zeroTimeMetrics() TimeMetrics {
	return TimeMetrics{
		HoursWorked:            decimal.Zero,
		NightDifferentialHours: decimal.Zero,
	}
}

// maxWorkedHours guards against bad punches producing multi-day durations.
const maxWorkedHours = 24

// ComputeTimeMetrics derives late, undertime, overtime, worked hours and
// night-differential hours from a day's punches and its scheduled window.
// Clock strings are anchored to the work date; when the scheduled (or
// actual) out is numerically earlier than the in, the out rolls over to the
// next calendar day. Late minutes are reported raw; the grace period only
// affects the deduction, in the pay calculator.
//
// Missing punches yield zero metrics; the caller decides whether that is an
// absence. Unparseable values also yield zeros and are logged, never
// propagated as errors.
func ComputeTimeMetrics(date time.Time, actual ActualTime, sched schedule.DailySchedule, settings attendance.Settings, et schedule.EmploymentType) TimeMetrics {
	if !et.RequiresTimeTracking {
		return zeroTimeMetrics()
	}
	if actual.TimeIn == "" || actual.TimeOut == "" {
		return zeroTimeMetrics()
	}

	actualIn, inOK := anchorClock(date, actual.TimeIn)
	actualOut, outOK := anchorClock(date, actual.TimeOut)
	if !inOK || !outOK {
		slog.Warn("unparseable attendance punch, metrics zeroed",
			"date", date.Format("2006-01-02"),
			"time_in", actual.TimeIn,
			"time_out", actual.TimeOut,
		)
		return zeroTimeMetrics()
	}
	if actualOut.Before(actualIn) {
		actualOut = actualOut.Add(24 * time.Hour)
	}

	m := zeroTimeMetrics()

	workedMinutes := int(actualOut.Sub(actualIn).Minutes())
	if workedMinutes < 0 {
		workedMinutes = 0
	}
	if workedMinutes > maxWorkedHours*60 {
		workedMinutes = maxWorkedHours * 60
	}
	m.HoursWorked = minutesToHours(workedMinutes)
	m.NightDifferentialHours = nightOverlapHours(date, actualIn, actualOut, settings)

	schedIn, inOK := anchorClock(date, sched.TimeIn)
	schedOut, outOK := anchorClock(date, sched.TimeOut)
	if !inOK || !outOK {
		slog.Warn("unparseable schedule window, schedule-relative metrics zeroed",
			"date", date.Format("2006-01-02"),
			"time_in", sched.TimeIn,
			"time_out", sched.TimeOut,
		)
		return m
	}
	// Overnight shift: the scheduled out falls on the next calendar day.
	if !schedOut.After(schedIn) {
		schedOut = schedOut.Add(24 * time.Hour)
	}

	if diff := int(actualIn.Sub(schedIn).Minutes()); diff > 0 {
		m.LateMinutes = diff
	}
	if diff := int(schedOut.Sub(actualOut).Minutes()); diff > 0 {
		m.UndertimeMinutes = diff
	} else if diff := int(actualOut.Sub(schedOut).Minutes()); diff > 0 {
		m.OvertimeMinutes = diff
	}

	return m
}

// anchorClock places an "HH:MM" wall-clock value on the given calendar date.
func anchorClock(date time.Time, clock string) (time.Time, bool) {
	hour, minute, ok := validator.ParseClockTime(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), true
}

// nightOverlapHours intersects the worked interval with the configured night
// window. The window is checked anchored to the previous, current and next
// day so shifts crossing midnight in either direction are covered.
func nightOverlapHours(date time.Time, workStart, workEnd time.Time, settings attendance.Settings) decimal.Decimal {
	if settings.NightWindowStart == "" || settings.NightWindowEnd == "" {
		return decimal.Zero
	}

	totalMinutes := 0
	for offset := -1; offset <= 1; offset++ {
		day := date.AddDate(0, 0, offset)
		winStart, startOK := anchorClock(day, settings.NightWindowStart)
		winEnd, endOK := anchorClock(day, settings.NightWindowEnd)
		if !startOK || !endOK {
			slog.Warn("unparseable night window, night differential zeroed",
				"window_start", settings.NightWindowStart,
				"window_end", settings.NightWindowEnd,
			)
			return decimal.Zero
		}
		if !winEnd.After(winStart) {
			winEnd = winEnd.Add(24 * time.Hour)
		}

		start := maxTime(workStart, winStart)
		end := minTime(workEnd, winEnd)
		if end.After(start) {
			totalMinutes += int(end.Sub(start).Minutes())
		}
	}

	return minutesToHours(totalMinutes)
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
