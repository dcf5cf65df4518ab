package deduction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthsInRange(t *testing.T) {
	start := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []MonthRef{{2025, 3}}, MonthsInRange(start, end))

	// A period straddling a month boundary touches both months.
	end = time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []MonthRef{{2025, 3}, {2025, 4}}, MonthsInRange(start, end))
}

func TestMonthRefAddCrossesYears(t *testing.T) {
	assert.Equal(t, MonthRef{2026, 1}, MonthRef{2025, 12}.Add(1))
	assert.Equal(t, MonthRef{2024, 12}, MonthRef{2025, 1}.Add(-1))
}

func TestExpandWindow(t *testing.T) {
	period := []MonthRef{{2025, 3}}

	// Cash advances and shorts look at the period month and the next one.
	assert.Equal(t, []MonthRef{{2025, 3}, {2025, 4}}, ExpandWindow(KindCashAdvance, period))
	assert.Equal(t, []MonthRef{{2025, 3}, {2025, 4}}, ExpandWindow(KindShort, period))

	// Loans look back instead.
	assert.Equal(t, []MonthRef{{2025, 2}, {2025, 3}}, ExpandWindow(KindLoan, period))
}

func TestExpandWindow_AdjacentMonthsDeduplicate(t *testing.T) {
	period := []MonthRef{{2025, 3}, {2025, 4}}
	assert.Equal(t, []MonthRef{{2025, 3}, {2025, 4}, {2025, 5}}, ExpandWindow(KindCashAdvance, period))
	assert.Equal(t, []MonthRef{{2025, 2}, {2025, 3}, {2025, 4}}, ExpandWindow(KindLoan, period))
}

func TestCashAdvanceDeductibleAmount(t *testing.T) {
	oneTime := CashAdvance{
		Amount:          decimal.NewFromInt(500),
		RemainingUnpaid: decimal.NewFromInt(500),
	}
	assert.True(t, oneTime.DeductibleAmount().Equal(decimal.NewFromInt(500)))

	installment := CashAdvance{
		Amount:           decimal.NewFromInt(900),
		RemainingUnpaid:  decimal.NewFromInt(900),
		Installments:     3,
		AmountPerPayment: decimal.NewFromInt(300),
	}
	assert.True(t, installment.DeductibleAmount().Equal(decimal.NewFromInt(300)))

	// The last installment clamps to what is left.
	installment.RemainingUnpaid = decimal.NewFromInt(100)
	assert.True(t, installment.DeductibleAmount().Equal(decimal.NewFromInt(100)))
}

func TestLoanDeductibleAmount(t *testing.T) {
	loan := Loan{
		AmountPerPayment: decimal.NewFromInt(250),
		RemainingBalance: decimal.NewFromInt(1000),
	}
	assert.True(t, loan.DeductibleAmount().Equal(decimal.NewFromInt(250)))

	loan.RemainingBalance = decimal.NewFromInt(120)
	assert.True(t, loan.DeductibleAmount().Equal(decimal.NewFromInt(120)))
}
