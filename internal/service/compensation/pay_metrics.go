package compensation

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
)

type PayMetrics struct {
	GrossPay             decimal.Decimal
	Deductions           decimal.Decimal
	NetPay               decimal.Decimal
	LateDeduction        decimal.Decimal
	UndertimeDeduction   decimal.Decimal
	OvertimePay          decimal.Decimal
	NightDifferentialPay decimal.Decimal
	HolidayBonus         decimal.Decimal
}

// ComputePayMetrics converts a day's time metrics into pay amounts.
//
// Grace periods apply here, not in the time metrics: minutes at or below the
// grace threshold deduct nothing. Overtime pays whole completed hours only;
// fractional overtime minutes under 60 are unpaid. Holiday pay does not
// require presence. For employment types without time tracking presence is
// binary and the whole record is user-authoritative afterwards.
func ComputePayMetrics(tm TimeMetrics, settings attendance.Settings, dailyRate decimal.Decimal, hol *holiday.Holiday, et schedule.EmploymentType, present bool) PayMetrics {
	holidayBonus := decimal.Zero
	if hol != nil {
		holidayBonus = dailyRate.Mul(holidayMultiplier(hol, settings))
	}

	if !et.RequiresTimeTracking {
		gross := holidayBonus
		if present {
			gross = gross.Add(dailyRate)
		}
		return PayMetrics{
			GrossPay:             gross,
			Deductions:           decimal.Zero,
			NetPay:               gross,
			LateDeduction:        decimal.Zero,
			UndertimeDeduction:   decimal.Zero,
			OvertimePay:          decimal.Zero,
			NightDifferentialPay: decimal.Zero,
			HolidayBonus:         holidayBonus,
		}
	}

	hourlyRate := dailyRate.Div(decimal.NewFromInt(int64(et.StandardHours())))

	lateDeduction := decimal.Zero
	if billable := tm.LateMinutes - settings.LateGracePeriodMinutes; billable > 0 {
		lateDeduction = decimal.NewFromInt(int64(billable)).Mul(settings.LateDeductionPerMinute)
	}

	undertimeDeduction := decimal.Zero
	if billable := tm.UndertimeMinutes - settings.UndertimeGracePeriodMinutes; billable > 0 {
		undertimeDeduction = decimal.NewFromInt(int64(billable)).Mul(settings.UndertimeDeductionPerMinute)
	}

	// Whole completed overtime hours only.
	overtimePay := decimal.NewFromInt(int64(tm.OvertimeMinutes / 60)).
		Mul(hourlyRate).
		Mul(settings.OvertimeHourlyMultiplier)

	nightDifferentialPay := tm.NightDifferentialHours.
		Mul(hourlyRate).
		Mul(settings.NightDifferentialMultiplier)

	// The base day's pay applies when the employee worked or the date is a
	// paid holiday.
	base := decimal.Zero
	if present || hol != nil {
		base = dailyRate
	}

	gross := base.Add(overtimePay).Add(nightDifferentialPay).Add(holidayBonus)
	deductions := lateDeduction.Add(undertimeDeduction)
	net := gross.Sub(deductions)

	return PayMetrics{
		GrossPay:             gross,
		Deductions:           deductions,
		NetPay:               net,
		LateDeduction:        lateDeduction,
		UndertimeDeduction:   undertimeDeduction,
		OvertimePay:          overtimePay,
		NightDifferentialPay: nightDifferentialPay,
		HolidayBonus:         holidayBonus,
	}
}

// holidayMultiplier prefers the holiday record's own multiplier, falling
// back to the policy default for its type.
func holidayMultiplier(hol *holiday.Holiday, settings attendance.Settings) decimal.Decimal {
	if hol.Multiplier.IsPositive() {
		return hol.Multiplier
	}
	if hol.Type == holiday.TypeSpecial {
		return settings.SpecialHolidayMultiplier
	}
	return settings.RegularHolidayMultiplier
}
