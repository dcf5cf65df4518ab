package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentRef links a consumed cash advance or short to the summary that
// deducted it, with the amount taken, so deletion can restore the balance.
type InstrumentRef struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// LoanDeductionRef links a loan installment taken by this summary.
type LoanDeductionRef struct {
	LoanID      string          `json:"loan_id"`
	DeductionID string          `json:"deduction_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// Summary is one employee's aggregated payroll for a pay period.
type Summary struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	DaysWorked       int
	Absences         int
	TotalHoursWorked decimal.Decimal

	GrossPay             decimal.Decimal
	LateDeduction        decimal.Decimal
	UndertimeDeduction   decimal.Decimal
	OvertimePay          decimal.Decimal
	NightDifferentialPay decimal.Decimal
	HolidayBonus         decimal.Decimal
	LeavePay             decimal.Decimal

	SSS        decimal.Decimal
	PhilHealth decimal.Decimal
	PagIbig    decimal.Decimal

	CashAdvanceDeductions decimal.Decimal
	ShortDeductions       decimal.Decimal
	LoanDeductions        decimal.Decimal

	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	ShortRefs         []InstrumentRef
	CashAdvanceRefs   []InstrumentRef
	LoanDeductionRefs []LoanDeductionRef

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// PeriodOption is a selectable pay period for the UI.
type PeriodOption struct {
	Start time.Time
	End   time.Time
	Label string
}
