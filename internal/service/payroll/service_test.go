package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/payroll"
)

func decEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func dateOf(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func inMonths(date time.Time, months []deduction.MonthRef) bool {
	for _, m := range months {
		if date.Year() == m.Year && int(date.Month()) == m.Month {
			return true
		}
	}
	return false
}

type fakePayrollRepo struct {
	summaries map[string]payroll.Summary
	nextID    int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{summaries: make(map[string]payroll.Summary)}
}

func (r *fakePayrollRepo) CreateSummary(_ context.Context, s payroll.Summary) (payroll.Summary, error) {
	r.nextID++
	s.ID = fmt.Sprintf("sum-%d", r.nextID)
	r.summaries[s.ID] = s
	return s, nil
}

func (r *fakePayrollRepo) GetSummaryByID(_ context.Context, id string) (payroll.Summary, error) {
	s, ok := r.summaries[id]
	if !ok {
		return payroll.Summary{}, payroll.ErrSummaryNotFound
	}
	return s, nil
}

func (r *fakePayrollRepo) GetSummaryByPeriod(_ context.Context, employeeID string, start, end time.Time) (payroll.Summary, error) {
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID && s.PeriodStart.Equal(start) && s.PeriodEnd.Equal(end) {
			return s, nil
		}
	}
	return payroll.Summary{}, payroll.ErrSummaryNotFound
}

func (r *fakePayrollRepo) ListSummaries(_ context.Context, employeeID string, year int) ([]payroll.Summary, error) {
	var out []payroll.Summary
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID && s.PeriodStart.Year() == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) DeleteSummary(_ context.Context, id string) error {
	if _, ok := r.summaries[id]; !ok {
		return payroll.ErrSummaryNotFound
	}
	delete(r.summaries, id)
	return nil
}

func (r *fakePayrollRepo) GetAvailablePeriods(_ context.Context, employeeID string, year int) ([]payroll.PeriodOption, error) {
	var out []payroll.PeriodOption
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID && s.PeriodStart.Year() == year {
			out = append(out, payroll.PeriodOption{Start: s.PeriodStart, End: s.PeriodEnd, Label: "period"})
		}
	}
	return out, nil
}

type fakeCompensationRepo struct {
	records []compensation.Compensation
}

func (r *fakeCompensationRepo) ListByMonth(_ context.Context, employeeID string, year, month int) ([]compensation.Compensation, error) {
	var out []compensation.Compensation
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Year == year && rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeCompensationRepo) GetByDay(_ context.Context, _ string, _, _, _ int) (*compensation.Compensation, error) {
	return nil, nil
}

func (r *fakeCompensationRepo) Upsert(_ context.Context, c compensation.Compensation) (compensation.Compensation, error) {
	r.records = append(r.records, c)
	return c, nil
}

func (r *fakeCompensationRepo) SaveMonth(_ context.Context, _ string, _, _ int, _ []compensation.Compensation) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

type fakeCashAdvanceRepo struct {
	advances map[string]deduction.CashAdvance
}

func (r *fakeCashAdvanceRepo) Create(_ context.Context, ca deduction.CashAdvance) (deduction.CashAdvance, error) {
	r.advances[ca.ID] = ca
	return ca, nil
}

func (r *fakeCashAdvanceRepo) GetByID(_ context.Context, id string) (deduction.CashAdvance, error) {
	ca, ok := r.advances[id]
	if !ok {
		return deduction.CashAdvance{}, deduction.ErrInstrumentNotFound
	}
	return ca, nil
}

func (r *fakeCashAdvanceRepo) ListByMonth(_ context.Context, _ string, _, _ int) ([]deduction.CashAdvance, error) {
	return nil, nil
}

func (r *fakeCashAdvanceRepo) ListOutstandingInMonths(_ context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.CashAdvance, error) {
	var out []deduction.CashAdvance
	for _, ca := range r.advances {
		if ca.EmployeeID == employeeID && ca.Status == deduction.StatusUnpaid &&
			ca.RemainingUnpaid.IsPositive() && inMonths(ca.Date, months) {
			out = append(out, ca)
		}
	}
	return out, nil
}

func (r *fakeCashAdvanceRepo) GetByIDInMonths(_ context.Context, id string, months []deduction.MonthRef) (deduction.CashAdvance, error) {
	ca, ok := r.advances[id]
	if !ok || !inMonths(ca.Date, months) {
		return deduction.CashAdvance{}, deduction.ErrInstrumentNotFound
	}
	return ca, nil
}

func (r *fakeCashAdvanceRepo) Update(_ context.Context, ca deduction.CashAdvance) error {
	if _, ok := r.advances[ca.ID]; !ok {
		return deduction.ErrInstrumentNotFound
	}
	r.advances[ca.ID] = ca
	return nil
}

func (r *fakeCashAdvanceRepo) Delete(_ context.Context, id string) error {
	delete(r.advances, id)
	return nil
}

type fakeShortRepo struct {
	shorts map[string]deduction.Short
}

func (r *fakeShortRepo) Create(_ context.Context, s deduction.Short) (deduction.Short, error) {
	r.shorts[s.ID] = s
	return s, nil
}

func (r *fakeShortRepo) GetByID(_ context.Context, id string) (deduction.Short, error) {
	s, ok := r.shorts[id]
	if !ok {
		return deduction.Short{}, deduction.ErrInstrumentNotFound
	}
	return s, nil
}

func (r *fakeShortRepo) ListByMonth(_ context.Context, _ string, _, _ int) ([]deduction.Short, error) {
	return nil, nil
}

func (r *fakeShortRepo) ListOutstandingInMonths(_ context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.Short, error) {
	var out []deduction.Short
	for _, s := range r.shorts {
		if s.EmployeeID == employeeID && s.Status == deduction.StatusUnpaid &&
			s.RemainingUnpaid.IsPositive() && inMonths(s.Date, months) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShortRepo) GetByIDInMonths(_ context.Context, id string, months []deduction.MonthRef) (deduction.Short, error) {
	s, ok := r.shorts[id]
	if !ok || !inMonths(s.Date, months) {
		return deduction.Short{}, deduction.ErrInstrumentNotFound
	}
	return s, nil
}

func (r *fakeShortRepo) Update(_ context.Context, s deduction.Short) error {
	if _, ok := r.shorts[s.ID]; !ok {
		return deduction.ErrInstrumentNotFound
	}
	r.shorts[s.ID] = s
	return nil
}

func (r *fakeShortRepo) Delete(_ context.Context, id string) error {
	delete(r.shorts, id)
	return nil
}

type fakeLoanRepo struct {
	loans      map[string]deduction.Loan
	deductions map[string]deduction.LoanDeduction
	nextDedID  int
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{
		loans:      make(map[string]deduction.Loan),
		deductions: make(map[string]deduction.LoanDeduction),
	}
}

func (r *fakeLoanRepo) Create(_ context.Context, l deduction.Loan) (deduction.Loan, error) {
	r.loans[l.ID] = l
	return l, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id string) (deduction.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return deduction.Loan{}, deduction.ErrInstrumentNotFound
	}
	return l, nil
}

func (r *fakeLoanRepo) ListByMonth(_ context.Context, _ string, _, _ int) ([]deduction.Loan, error) {
	return nil, nil
}

func (r *fakeLoanRepo) ListOutstandingInMonths(_ context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.Loan, error) {
	var out []deduction.Loan
	for _, l := range r.loans {
		if l.EmployeeID == employeeID && l.Status == deduction.StatusUnpaid &&
			l.RemainingBalance.IsPositive() && inMonths(l.Date, months) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) GetByIDInMonths(_ context.Context, id string, months []deduction.MonthRef) (deduction.Loan, error) {
	l, ok := r.loans[id]
	if !ok || !inMonths(l.Date, months) {
		return deduction.Loan{}, deduction.ErrInstrumentNotFound
	}
	return l, nil
}

func (r *fakeLoanRepo) Update(_ context.Context, l deduction.Loan) error {
	if _, ok := r.loans[l.ID]; !ok {
		return deduction.ErrInstrumentNotFound
	}
	r.loans[l.ID] = l
	return nil
}

func (r *fakeLoanRepo) Delete(_ context.Context, id string) error {
	delete(r.loans, id)
	return nil
}

func (r *fakeLoanRepo) CreateDeduction(_ context.Context, d deduction.LoanDeduction) (deduction.LoanDeduction, error) {
	r.nextDedID++
	d.ID = fmt.Sprintf("ded-%d", r.nextDedID)
	r.deductions[d.ID] = d
	return d, nil
}

func (r *fakeLoanRepo) GetDeductionByID(_ context.Context, id string) (deduction.LoanDeduction, error) {
	d, ok := r.deductions[id]
	if !ok {
		return deduction.LoanDeduction{}, deduction.ErrLoanDeductionNotFound
	}
	return d, nil
}

func (r *fakeLoanRepo) DeleteDeduction(_ context.Context, id string) error {
	if _, ok := r.deductions[id]; !ok {
		return deduction.ErrLoanDeductionNotFound
	}
	delete(r.deductions, id)
	return nil
}

type payrollFixture struct {
	payrolls *fakePayrollRepo
	comps    *fakeCompensationRepo
	advances *fakeCashAdvanceRepo
	shorts   *fakeShortRepo
	loans    *fakeLoanRepo
	svc      *PayrollServiceImpl
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	f := &payrollFixture{
		payrolls: newFakePayrollRepo(),
		comps:    &fakeCompensationRepo{},
		advances: &fakeCashAdvanceRepo{advances: make(map[string]deduction.CashAdvance)},
		shorts:   &fakeShortRepo{shorts: make(map[string]deduction.Short)},
		loans:    newFakeLoanRepo(),
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Juan dela Cruz", Active: true},
	}}
	f.svc = &PayrollServiceImpl{
		PayrollRepository: f.payrolls,
		compensationRepo:  f.comps,
		employeeRepo:      employees,
		cashAdvanceRepo:   f.advances,
		shortRepo:         f.shorts,
		loanRepo:          f.loans,
	}
	return f
}

func compRecord(day int, gross, hours string) compensation.Compensation {
	rec := compensation.NewDefault("emp-1", 2025, 3, day)
	rec.GrossPay = decimal.RequireFromString(gross)
	rec.NetPay = rec.GrossPay
	rec.HoursWorked = decimal.RequireFromString(hours)
	return rec
}

func TestAggregateCompensations(t *testing.T) {
	f := newPayrollFixture(t)
	f.comps.records = append(f.comps.records,
		compRecord(17, "1000", "8"),
		compRecord(18, "1156.25", "10"),
	)

	late := compRecord(19, "990", "8")
	late.LateDeduction = decimal.NewFromInt(10)
	f.comps.records = append(f.comps.records, late)

	absent := compRecord(20, "0", "0")
	absent.Absence = true
	f.comps.records = append(f.comps.records, absent)

	// Dated inside the month but before the period start; must be skipped.
	f.comps.records = append(f.comps.records, compRecord(10, "1000", "8"))

	start, end := dateOf(2025, 3, 16), dateOf(2025, 3, 31)
	summary := payroll.Summary{EmployeeID: "emp-1", PeriodStart: start, PeriodEnd: end}
	err := f.svc.aggregateCompensations(context.Background(), &summary, start, end, deduction.MonthsInRange(start, end))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DaysWorked)
	assert.Equal(t, 1, summary.Absences)
	decEq(t, "26", summary.TotalHoursWorked)
	decEq(t, "3146.25", summary.GrossPay)
	decEq(t, "10", summary.LateDeduction)
}

func TestConsumeInstruments(t *testing.T) {
	f := newPayrollFixture(t)
	f.advances.advances["ca-1"] = deduction.CashAdvance{
		ID: "ca-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 5),
		Amount: decimal.NewFromInt(500), RemainingUnpaid: decimal.NewFromInt(500),
		Status: deduction.StatusUnpaid,
	}
	f.advances.advances["ca-2"] = deduction.CashAdvance{
		ID: "ca-2", EmployeeID: "emp-1", Date: dateOf(2025, 3, 6),
		Amount: decimal.NewFromInt(900), RemainingUnpaid: decimal.NewFromInt(900),
		Installments: 3, AmountPerPayment: decimal.NewFromInt(300),
		Status: deduction.StatusUnpaid,
	}
	f.shorts.shorts["sh-1"] = deduction.Short{
		ID: "sh-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 10),
		Amount: decimal.NewFromInt(200), RemainingUnpaid: decimal.NewFromInt(200),
		Status: deduction.StatusUnpaid,
	}
	f.loans.loans["loan-1"] = deduction.Loan{
		ID: "loan-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 1),
		Amount: decimal.NewFromInt(1000), AmountPerPayment: decimal.NewFromInt(250),
		RemainingBalance: decimal.NewFromInt(1000), RemainingPayments: 4,
		Status: deduction.StatusUnpaid,
	}

	start, end := dateOf(2025, 3, 16), dateOf(2025, 3, 31)
	summary := payroll.Summary{EmployeeID: "emp-1", PeriodStart: start, PeriodEnd: end}
	err := f.svc.consumeInstruments(context.Background(), &summary, "emp-1", deduction.MonthsInRange(start, end))
	require.NoError(t, err)

	// One-time advance taken in full and marked paid.
	ca1 := f.advances.advances["ca-1"]
	decEq(t, "0", ca1.RemainingUnpaid)
	assert.Equal(t, deduction.StatusPaid, ca1.Status)

	// Installment advance takes one payment.
	ca2 := f.advances.advances["ca-2"]
	decEq(t, "600", ca2.RemainingUnpaid)
	assert.Equal(t, deduction.StatusUnpaid, ca2.Status)

	sh := f.shorts.shorts["sh-1"]
	decEq(t, "0", sh.RemainingUnpaid)
	assert.Equal(t, deduction.StatusPaid, sh.Status)

	loan := f.loans.loans["loan-1"]
	decEq(t, "750", loan.RemainingBalance)
	assert.Equal(t, 3, loan.RemainingPayments)
	require.Len(t, f.loans.deductions, 1)

	decEq(t, "800", summary.CashAdvanceDeductions)
	decEq(t, "200", summary.ShortDeductions)
	decEq(t, "250", summary.LoanDeductions)
	assert.Len(t, summary.CashAdvanceRefs, 2)
	assert.Len(t, summary.ShortRefs, 1)
	require.Len(t, summary.LoanDeductionRefs, 1)
	assert.Equal(t, "loan-1", summary.LoanDeductionRefs[0].LoanID)
}

func TestConsumeInstruments_MonthWindows(t *testing.T) {
	f := newPayrollFixture(t)
	// Advance scheduled into the month after the period is picked up;
	// one from the month before is not.
	f.advances.advances["ca-next"] = deduction.CashAdvance{
		ID: "ca-next", EmployeeID: "emp-1", Date: dateOf(2025, 4, 2),
		Amount: decimal.NewFromInt(100), RemainingUnpaid: decimal.NewFromInt(100),
		Status: deduction.StatusUnpaid,
	}
	f.advances.advances["ca-prev"] = deduction.CashAdvance{
		ID: "ca-prev", EmployeeID: "emp-1", Date: dateOf(2025, 2, 20),
		Amount: decimal.NewFromInt(100), RemainingUnpaid: decimal.NewFromInt(100),
		Status: deduction.StatusUnpaid,
	}
	// Loans window is the opposite: previous month in, next month out.
	f.loans.loans["loan-prev"] = deduction.Loan{
		ID: "loan-prev", EmployeeID: "emp-1", Date: dateOf(2025, 2, 20),
		Amount: decimal.NewFromInt(600), AmountPerPayment: decimal.NewFromInt(200),
		RemainingBalance: decimal.NewFromInt(600), RemainingPayments: 3,
		Status: deduction.StatusUnpaid,
	}
	f.loans.loans["loan-next"] = deduction.Loan{
		ID: "loan-next", EmployeeID: "emp-1", Date: dateOf(2025, 4, 2),
		Amount: decimal.NewFromInt(600), AmountPerPayment: decimal.NewFromInt(200),
		RemainingBalance: decimal.NewFromInt(600), RemainingPayments: 3,
		Status: deduction.StatusUnpaid,
	}

	start, end := dateOf(2025, 3, 16), dateOf(2025, 3, 31)
	summary := payroll.Summary{EmployeeID: "emp-1", PeriodStart: start, PeriodEnd: end}
	err := f.svc.consumeInstruments(context.Background(), &summary, "emp-1", deduction.MonthsInRange(start, end))
	require.NoError(t, err)

	decEq(t, "100", summary.CashAdvanceDeductions)
	require.Len(t, summary.CashAdvanceRefs, 1)
	assert.Equal(t, "ca-next", summary.CashAdvanceRefs[0].ID)

	decEq(t, "200", summary.LoanDeductions)
	require.Len(t, summary.LoanDeductionRefs, 1)
	assert.Equal(t, "loan-prev", summary.LoanDeductionRefs[0].LoanID)
}

func TestDeletePayroll_RestoresInstruments(t *testing.T) {
	f := newPayrollFixture(t)
	f.advances.advances["ca-1"] = deduction.CashAdvance{
		ID: "ca-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 5),
		Amount: decimal.NewFromInt(500), RemainingUnpaid: decimal.NewFromInt(500),
		Status: deduction.StatusUnpaid,
	}
	f.shorts.shorts["sh-1"] = deduction.Short{
		ID: "sh-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 10),
		Amount: decimal.NewFromInt(200), RemainingUnpaid: decimal.NewFromInt(200),
		Status: deduction.StatusUnpaid,
	}
	f.loans.loans["loan-1"] = deduction.Loan{
		ID: "loan-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 1),
		Amount: decimal.NewFromInt(1000), AmountPerPayment: decimal.NewFromInt(250),
		RemainingBalance: decimal.NewFromInt(1000), RemainingPayments: 4,
		Status: deduction.StatusUnpaid,
	}

	start, end := dateOf(2025, 3, 16), dateOf(2025, 3, 31)
	summary := payroll.Summary{EmployeeID: "emp-1", PeriodStart: start, PeriodEnd: end}
	require.NoError(t, f.svc.consumeInstruments(context.Background(), &summary, "emp-1", deduction.MonthsInRange(start, end)))
	created, err := f.payrolls.CreateSummary(context.Background(), summary)
	require.NoError(t, err)

	resp, err := f.svc.DeletePayroll(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)

	// Every balance is back where it started.
	ca := f.advances.advances["ca-1"]
	decEq(t, "500", ca.RemainingUnpaid)
	assert.Equal(t, deduction.StatusUnpaid, ca.Status)

	sh := f.shorts.shorts["sh-1"]
	decEq(t, "200", sh.RemainingUnpaid)
	assert.Equal(t, deduction.StatusUnpaid, sh.Status)

	loan := f.loans.loans["loan-1"]
	decEq(t, "1000", loan.RemainingBalance)
	assert.Equal(t, 4, loan.RemainingPayments)
	assert.Empty(t, f.loans.deductions)

	_, err = f.payrolls.GetSummaryByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrSummaryNotFound)
}

func TestDeletePayroll_MissingInstrumentWarnsAndContinues(t *testing.T) {
	f := newPayrollFixture(t)
	f.shorts.shorts["sh-1"] = deduction.Short{
		ID: "sh-1", EmployeeID: "emp-1", Date: dateOf(2025, 3, 10),
		Amount: decimal.NewFromInt(200), RemainingUnpaid: decimal.Zero,
		Status: deduction.StatusPaid,
	}

	summary := payroll.Summary{
		EmployeeID:  "emp-1",
		PeriodStart: dateOf(2025, 3, 16),
		PeriodEnd:   dateOf(2025, 3, 31),
		CashAdvanceRefs: []payroll.InstrumentRef{
			{ID: "ca-gone", Amount: decimal.NewFromInt(500)},
		},
		ShortRefs: []payroll.InstrumentRef{
			{ID: "sh-1", Amount: decimal.NewFromInt(200)},
		},
	}
	created, err := f.payrolls.CreateSummary(context.Background(), summary)
	require.NoError(t, err)

	resp, err := f.svc.DeletePayroll(context.Background(), created.ID)
	require.NoError(t, err)

	// The vanished advance is reported; the surviving short is restored and
	// the summary still goes away.
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "ca-gone")

	sh := f.shorts.shorts["sh-1"]
	decEq(t, "200", sh.RemainingUnpaid)
	assert.Equal(t, deduction.StatusUnpaid, sh.Status)

	_, err = f.payrolls.GetSummaryByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrSummaryNotFound)
}

func TestDeletePayroll_UnknownSummary(t *testing.T) {
	f := newPayrollFixture(t)
	_, err := f.svc.DeletePayroll(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrSummaryNotFound)
}

func TestGetPayrollAndPeriods(t *testing.T) {
	f := newPayrollFixture(t)
	summary := payroll.Summary{
		EmployeeID:  "emp-1",
		PeriodStart: dateOf(2025, 3, 16),
		PeriodEnd:   dateOf(2025, 3, 31),
		GrossPay:    decimal.NewFromInt(16000),
		NetPay:      decimal.NewFromInt(15000),
	}
	created, err := f.payrolls.CreateSummary(context.Background(), summary)
	require.NoError(t, err)

	got, err := f.svc.GetPayroll(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-16", got.PeriodStart)
	assert.Equal(t, "2025-03-31", got.PeriodEnd)
	decEq(t, "16000", got.GrossPay)

	periods, err := f.svc.GetAvailablePeriods(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "2025-03-16", periods[0].StartDate)
	assert.Equal(t, "2025-03-31", periods[0].EndDate)
}
