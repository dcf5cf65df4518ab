package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPaid   Status = "Paid"
	StatusUnpaid Status = "Unpaid"
)

// Kind identifies a deduction instrument family.
type Kind string

const (
	KindCashAdvance Kind = "cash_advance"
	KindShort       Kind = "short"
	KindLoan        Kind = "loan"
)

// SearchWindow returns the month offsets, relative to a pay period's months,
// in which instruments of this kind are looked up. Cash advances and shorts
// may be scheduled into the month after the period; loan installments may
// come from the month before it. Aggregation and reversal share this policy
// so they can never disagree about where an instrument lives.
func (k Kind) SearchWindow() []int {
	if k == KindLoan {
		return []int{-1, 0}
	}
	return []int{0, 1}
}

// MonthRef identifies a calendar month.
type MonthRef struct {
	Year  int
	Month int
}

// Add returns the month offset months after (or before, when negative) m.
func (m MonthRef) Add(offset int) MonthRef {
	t := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return MonthRef{Year: t.Year(), Month: int(t.Month())}
}

// MonthsInRange lists every month touched by [start, end].
func MonthsInRange(start, end time.Time) []MonthRef {
	var months []MonthRef
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		months = append(months, MonthRef{Year: cur.Year(), Month: int(cur.Month())})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// ExpandWindow applies a kind's search window to the period months,
// deduplicated and in order.
func ExpandWindow(kind Kind, periodMonths []MonthRef) []MonthRef {
	seen := make(map[MonthRef]bool)
	var out []MonthRef
	for _, m := range periodMonths {
		for _, offset := range kind.SearchWindow() {
			ref := m.Add(offset)
			if !seen[ref] {
				seen[ref] = true
				out = append(out, ref)
			}
		}
	}
	return out
}

// CashAdvance is money advanced to an employee, repaid either in one
// deduction or in fixed installments. RemainingUnpaid never goes negative;
// StatusPaid requires a zero balance.
type CashAdvance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Amount           decimal.Decimal
	RemainingUnpaid  decimal.Decimal
	Installments     int             // 0 or 1 means one-time repayment
	AmountPerPayment decimal.Decimal // per-period amount for installment plans
	Status           Status
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DeductibleAmount is what one payroll period takes from the advance.
func (c CashAdvance) DeductibleAmount() decimal.Decimal {
	if c.Installments > 1 && c.AmountPerPayment.IsPositive() {
		return decimal.Min(c.AmountPerPayment, c.RemainingUnpaid)
	}
	return c.RemainingUnpaid
}

// Short is a one-time shortage charged against an employee.
type Short struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	Amount          decimal.Decimal
	RemainingUnpaid decimal.Decimal
	Status          Status
	Reason          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Loan is an installment loan with per-period payments.
type Loan struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	Amount            decimal.Decimal
	AmountPerPayment  decimal.Decimal
	RemainingBalance  decimal.Decimal
	RemainingPayments int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DeductibleAmount is one installment, clamped to the remaining balance.
func (l Loan) DeductibleAmount() decimal.Decimal {
	return decimal.Min(l.AmountPerPayment, l.RemainingBalance)
}

// LoanDeduction is one recorded installment taken from a loan by a payroll
// period; reversal locates the loan through it.
type LoanDeduction struct {
	ID         string
	LoanID     string
	Amount     decimal.Decimal
	DeductedAt time.Time
}
