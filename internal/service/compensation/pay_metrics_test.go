package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
)

func payTestSettings() attendance.Settings {
	s := attendance.DefaultSettings()
	s.LateDeductionPerMinute = decimal.NewFromInt(2)
	s.UndertimeDeductionPerMinute = decimal.NewFromInt(2)
	return s
}

func TestComputePayMetrics_PlainWorkedDay(t *testing.T) {
	pm := ComputePayMetrics(zeroTimeMetrics(), payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), true)

	decEq(t, "1000", pm.GrossPay)
	decEq(t, "0", pm.Deductions)
	decEq(t, "1000", pm.NetPay)
}

func TestComputePayMetrics_AbsentDayPaysNothing(t *testing.T) {
	pm := ComputePayMetrics(zeroTimeMetrics(), payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), false)

	decEq(t, "0", pm.GrossPay)
	decEq(t, "0", pm.NetPay)
}

func TestComputePayMetrics_GraceBoundary(t *testing.T) {
	settings := payTestSettings() // grace period is 5 minutes

	tm := zeroTimeMetrics()
	tm.LateMinutes = 5
	atGrace := ComputePayMetrics(tm, settings, decimal.NewFromInt(1000), nil, trackingType(), true)
	decEq(t, "0", atGrace.LateDeduction)

	tm.LateMinutes = 6
	pastGrace := ComputePayMetrics(tm, settings, decimal.NewFromInt(1000), nil, trackingType(), true)
	// Only the minute past the threshold is billable.
	decEq(t, "2", pastGrace.LateDeduction)
	decEq(t, "998", pastGrace.NetPay)
}

func TestComputePayMetrics_UndertimeDeduction(t *testing.T) {
	tm := zeroTimeMetrics()
	tm.UndertimeMinutes = 35
	pm := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), true)

	decEq(t, "60", pm.UndertimeDeduction)
	decEq(t, "60", pm.Deductions)
	decEq(t, "940", pm.NetPay)
}

func TestComputePayMetrics_OvertimeWholeHoursOnly(t *testing.T) {
	// 89 overtime minutes pay one hour; the 29 leftover minutes are unpaid.
	// Hourly rate 125, multiplier 1.25.
	tm := zeroTimeMetrics()
	tm.OvertimeMinutes = 89
	pm := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), true)

	decEq(t, "156.25", pm.OvertimePay)
	decEq(t, "1156.25", pm.GrossPay)

	tm.OvertimeMinutes = 59
	none := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), true)
	decEq(t, "0", none.OvertimePay)
}

func TestComputePayMetrics_NightDifferential(t *testing.T) {
	tm := zeroTimeMetrics()
	tm.NightDifferentialHours = decimal.NewFromInt(8)
	pm := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(1000), nil, trackingType(), true)

	// 8 hours at hourly 125 and 10% premium.
	decEq(t, "100", pm.NightDifferentialPay)
	decEq(t, "1100", pm.GrossPay)
}

func TestComputePayMetrics_HolidayPaysWithoutPresence(t *testing.T) {
	hol := &holiday.Holiday{Type: holiday.TypeRegular, Multiplier: decimal.NewFromInt(2)}
	pm := ComputePayMetrics(zeroTimeMetrics(), payTestSettings(), decimal.NewFromInt(1000), hol, trackingType(), false)

	decEq(t, "2000", pm.HolidayBonus)
	// Base rate applies because the date is a paid holiday.
	decEq(t, "3000", pm.GrossPay)
}

func TestComputePayMetrics_HolidayMultiplierFallsBackToPolicy(t *testing.T) {
	settings := payTestSettings()

	special := &holiday.Holiday{Type: holiday.TypeSpecial}
	pm := ComputePayMetrics(zeroTimeMetrics(), settings, decimal.NewFromInt(1000), special, trackingType(), true)
	decEq(t, "1300", pm.HolidayBonus)

	regular := &holiday.Holiday{Type: holiday.TypeRegular}
	pm = ComputePayMetrics(zeroTimeMetrics(), settings, decimal.NewFromInt(1000), regular, trackingType(), true)
	decEq(t, "2000", pm.HolidayBonus)
}

func TestComputePayMetrics_NonTrackingPresenceIsBinary(t *testing.T) {
	et := trackingType()
	et.RequiresTimeTracking = false

	// Time metrics are ignored entirely for non-tracking types.
	tm := zeroTimeMetrics()
	tm.LateMinutes = 120
	tm.OvertimeMinutes = 180

	present := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(800), nil, et, true)
	decEq(t, "800", present.GrossPay)
	decEq(t, "0", present.Deductions)
	decEq(t, "0", present.OvertimePay)

	absent := ComputePayMetrics(tm, payTestSettings(), decimal.NewFromInt(800), nil, et, false)
	decEq(t, "0", absent.GrossPay)
}

func TestComputePayMetrics_NonTrackingHolidayWithoutPresence(t *testing.T) {
	et := trackingType()
	et.RequiresTimeTracking = false
	hol := &holiday.Holiday{Type: holiday.TypeSpecial, Multiplier: decimal.NewFromFloat(1.3)}

	pm := ComputePayMetrics(zeroTimeMetrics(), payTestSettings(), decimal.NewFromInt(800), hol, et, false)
	decEq(t, "1040", pm.HolidayBonus)
	decEq(t, "1040", pm.GrossPay)
}
