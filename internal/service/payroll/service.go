package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
	"github.com/sweldo-hq/sweldo-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	compensationRepo compensation.CompensationRepository
	employeeRepo     employee.EmployeeRepository
	cashAdvanceRepo  deduction.CashAdvanceRepository
	shortRepo        deduction.ShortRepository
	loanRepo         deduction.LoanRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	compensationRepo compensation.CompensationRepository,
	employeeRepo employee.EmployeeRepository,
	cashAdvanceRepo deduction.CashAdvanceRepository,
	shortRepo deduction.ShortRepository,
	loanRepo deduction.LoanRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		PayrollRepository: payrollRepo,
		compensationRepo:  compensationRepo,
		employeeRepo:      employeeRepo,
		cashAdvanceRepo:   cashAdvanceRepo,
		shortRepo:         shortRepo,
		loanRepo:          loanRepo,
	}
}

// GeneratePayroll implements payroll.PayrollService.
//
// The summary, the consumed instrument balances, and the loan deduction
// records are written in one transaction so a failed run leaves nothing
// half-deducted.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.SummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if _, err := s.PayrollRepository.GetSummaryByPeriod(ctx, req.EmployeeID, start, end); err == nil {
		return payroll.SummaryResponse{}, payroll.ErrSummaryAlreadyExists
	} else if !errors.Is(err, payroll.ErrSummaryNotFound) {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to check existing summary: %w", err)
	}

	periodMonths := deduction.MonthsInRange(start, end)

	summary := payroll.Summary{
		EmployeeID:  req.EmployeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	}
	if err := s.aggregateCompensations(ctx, &summary, start, end, periodMonths); err != nil {
		return payroll.SummaryResponse{}, err
	}

	if req.SSS != nil {
		summary.SSS = *req.SSS
	}
	if req.PhilHealth != nil {
		summary.PhilHealth = *req.PhilHealth
	}
	if req.PagIbig != nil {
		summary.PagIbig = *req.PagIbig
	}

	var created payroll.Summary
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.consumeInstruments(txCtx, &summary, req.EmployeeID, periodMonths); err != nil {
			return err
		}

		summary.TotalDeductions = summary.LateDeduction.
			Add(summary.UndertimeDeduction).
			Add(summary.SSS).
			Add(summary.PhilHealth).
			Add(summary.PagIbig).
			Add(summary.CashAdvanceDeductions).
			Add(summary.ShortDeductions).
			Add(summary.LoanDeductions)
		summary.NetPay = summary.GrossPay.Sub(summary.TotalDeductions)

		var err error
		created, err = s.PayrollRepository.CreateSummary(txCtx, summary)
		if err != nil {
			return fmt.Errorf("failed to create payroll summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	created.EmployeeName = &emp.Name
	return mapSummaryToResponse(created), nil
}

// aggregateCompensations folds the period's per-day records into the summary
// totals. Records outside [start, end] in the boundary months are skipped.
func (s *PayrollServiceImpl) aggregateCompensations(ctx context.Context, summary *payroll.Summary, start, end time.Time, periodMonths []deduction.MonthRef) error {
	summary.GrossPay = decimal.Zero
	summary.LateDeduction = decimal.Zero
	summary.UndertimeDeduction = decimal.Zero
	summary.OvertimePay = decimal.Zero
	summary.NightDifferentialPay = decimal.Zero
	summary.HolidayBonus = decimal.Zero
	summary.LeavePay = decimal.Zero
	summary.TotalHoursWorked = decimal.Zero
	summary.SSS = decimal.Zero
	summary.PhilHealth = decimal.Zero
	summary.PagIbig = decimal.Zero
	summary.CashAdvanceDeductions = decimal.Zero
	summary.ShortDeductions = decimal.Zero
	summary.LoanDeductions = decimal.Zero

	startKey := dateKey(start.Year(), int(start.Month()), start.Day())
	endKey := dateKey(end.Year(), int(end.Month()), end.Day())

	for _, m := range periodMonths {
		records, err := s.compensationRepo.ListByMonth(ctx, summary.EmployeeID, m.Year, m.Month)
		if err != nil {
			return fmt.Errorf("failed to list compensations: %w", err)
		}
		for _, rec := range records {
			// Calendar-date comparison; the stored day and the period bounds
			// may carry different locations.
			key := dateKey(rec.Year, rec.Month, rec.Day)
			if key < startKey || key > endKey {
				continue
			}

			if rec.Absence {
				summary.Absences++
			} else if rec.HoursWorked.IsPositive() || rec.GrossPay.IsPositive() {
				summary.DaysWorked++
			}

			summary.TotalHoursWorked = summary.TotalHoursWorked.Add(rec.HoursWorked)
			summary.GrossPay = summary.GrossPay.Add(rec.GrossPay)
			summary.LateDeduction = summary.LateDeduction.Add(rec.LateDeduction)
			summary.UndertimeDeduction = summary.UndertimeDeduction.Add(rec.UndertimeDeduction)
			summary.OvertimePay = summary.OvertimePay.Add(rec.OvertimePay)
			summary.NightDifferentialPay = summary.NightDifferentialPay.Add(rec.NightDifferentialPay)
			summary.HolidayBonus = summary.HolidayBonus.Add(rec.HolidayBonus)
			summary.LeavePay = summary.LeavePay.Add(rec.LeavePay)
		}
	}
	return nil
}

func dateKey(year, month, day int) int {
	return year*10000 + month*100 + day
}

// consumeInstruments takes what each outstanding instrument owes this period,
// updates balances, and records refs so deletion can reverse every take.
func (s *PayrollServiceImpl) consumeInstruments(ctx context.Context, summary *payroll.Summary, employeeID string, periodMonths []deduction.MonthRef) error {
	advances, err := s.cashAdvanceRepo.ListOutstandingInMonths(ctx, employeeID,
		deduction.ExpandWindow(deduction.KindCashAdvance, periodMonths))
	if err != nil {
		return fmt.Errorf("failed to list cash advances: %w", err)
	}
	for _, ca := range advances {
		amount := ca.DeductibleAmount()
		if !amount.IsPositive() {
			continue
		}
		ca.RemainingUnpaid = ca.RemainingUnpaid.Sub(amount)
		if ca.RemainingUnpaid.IsZero() {
			ca.Status = deduction.StatusPaid
		}
		if err := s.cashAdvanceRepo.Update(ctx, ca); err != nil {
			return fmt.Errorf("failed to update cash advance: %w", err)
		}
		summary.CashAdvanceDeductions = summary.CashAdvanceDeductions.Add(amount)
		summary.CashAdvanceRefs = append(summary.CashAdvanceRefs, payroll.InstrumentRef{ID: ca.ID, Amount: amount})
	}

	shorts, err := s.shortRepo.ListOutstandingInMonths(ctx, employeeID,
		deduction.ExpandWindow(deduction.KindShort, periodMonths))
	if err != nil {
		return fmt.Errorf("failed to list shorts: %w", err)
	}
	for _, sh := range shorts {
		amount := sh.RemainingUnpaid
		if !amount.IsPositive() {
			continue
		}
		sh.RemainingUnpaid = decimal.Zero
		sh.Status = deduction.StatusPaid
		if err := s.shortRepo.Update(ctx, sh); err != nil {
			return fmt.Errorf("failed to update short: %w", err)
		}
		summary.ShortDeductions = summary.ShortDeductions.Add(amount)
		summary.ShortRefs = append(summary.ShortRefs, payroll.InstrumentRef{ID: sh.ID, Amount: amount})
	}

	loans, err := s.loanRepo.ListOutstandingInMonths(ctx, employeeID,
		deduction.ExpandWindow(deduction.KindLoan, periodMonths))
	if err != nil {
		return fmt.Errorf("failed to list loans: %w", err)
	}
	for _, l := range loans {
		amount := l.DeductibleAmount()
		if !amount.IsPositive() {
			continue
		}
		l.RemainingBalance = l.RemainingBalance.Sub(amount)
		if l.RemainingPayments > 0 {
			l.RemainingPayments--
		}
		if l.RemainingBalance.IsZero() {
			l.Status = deduction.StatusPaid
		}
		if err := s.loanRepo.Update(ctx, l); err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}
		ded, err := s.loanRepo.CreateDeduction(ctx, deduction.LoanDeduction{
			LoanID:     l.ID,
			Amount:     amount,
			DeductedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record loan deduction: %w", err)
		}
		summary.LoanDeductions = summary.LoanDeductions.Add(amount)
		summary.LoanDeductionRefs = append(summary.LoanDeductionRefs, payroll.LoanDeductionRef{
			LoanID:      l.ID,
			DeductionID: ded.ID,
			Amount:      amount,
		})
	}

	return nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.SummaryResponse, error) {
	summary, err := s.PayrollRepository.GetSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrSummaryNotFound) {
			return payroll.SummaryResponse{}, payroll.ErrSummaryNotFound
		}
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}
	return mapSummaryToResponse(summary), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, employeeID string, year int) ([]payroll.SummaryResponse, error) {
	summaries, err := s.PayrollRepository.ListSummaries(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll summaries: %w", err)
	}
	responses := make([]payroll.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, mapSummaryToResponse(sum))
	}
	return responses, nil
}

// DeletePayroll implements payroll.PayrollService.
//
// Reversal restores every instrument the summary recorded before the summary
// row is removed. An instrument that has since been deleted produces a
// warning and the reversal moves on; a payroll deletion never strands the
// remaining balances behind one missing row.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) (payroll.DeletePayrollResponse, error) {
	summary, err := s.PayrollRepository.GetSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrSummaryNotFound) {
			return payroll.DeletePayrollResponse{}, payroll.ErrSummaryNotFound
		}
		return payroll.DeletePayrollResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	periodMonths := deduction.MonthsInRange(summary.PeriodStart, summary.PeriodEnd)
	var warnings []string

	for _, ref := range summary.CashAdvanceRefs {
		ca, err := s.cashAdvanceRepo.GetByIDInMonths(ctx,
			ref.ID, deduction.ExpandWindow(deduction.KindCashAdvance, periodMonths))
		if err != nil {
			slog.Warn("cash advance missing during payroll reversal", "cash_advance_id", ref.ID, "summary_id", id, "error", err)
			warnings = append(warnings, fmt.Sprintf("cash advance %s could not be restored", ref.ID))
			continue
		}
		ca.RemainingUnpaid = ca.RemainingUnpaid.Add(ref.Amount)
		ca.Status = deduction.StatusUnpaid
		if err := s.cashAdvanceRepo.Update(ctx, ca); err != nil {
			return payroll.DeletePayrollResponse{}, fmt.Errorf("failed to restore cash advance: %w", err)
		}
	}

	for _, ref := range summary.ShortRefs {
		sh, err := s.shortRepo.GetByIDInMonths(ctx,
			ref.ID, deduction.ExpandWindow(deduction.KindShort, periodMonths))
		if err != nil {
			slog.Warn("short missing during payroll reversal", "short_id", ref.ID, "summary_id", id, "error", err)
			warnings = append(warnings, fmt.Sprintf("short %s could not be restored", ref.ID))
			continue
		}
		sh.RemainingUnpaid = sh.RemainingUnpaid.Add(ref.Amount)
		sh.Status = deduction.StatusUnpaid
		if err := s.shortRepo.Update(ctx, sh); err != nil {
			return payroll.DeletePayrollResponse{}, fmt.Errorf("failed to restore short: %w", err)
		}
	}

	for _, ref := range summary.LoanDeductionRefs {
		l, err := s.loanRepo.GetByIDInMonths(ctx,
			ref.LoanID, deduction.ExpandWindow(deduction.KindLoan, periodMonths))
		if err != nil {
			slog.Warn("loan missing during payroll reversal", "loan_id", ref.LoanID, "summary_id", id, "error", err)
			warnings = append(warnings, fmt.Sprintf("loan %s could not be restored", ref.LoanID))
			continue
		}
		l.RemainingBalance = l.RemainingBalance.Add(ref.Amount)
		l.RemainingPayments++
		l.Status = deduction.StatusUnpaid
		if err := s.loanRepo.Update(ctx, l); err != nil {
			return payroll.DeletePayrollResponse{}, fmt.Errorf("failed to restore loan: %w", err)
		}
		if err := s.loanRepo.DeleteDeduction(ctx, ref.DeductionID); err != nil {
			slog.Warn("loan deduction record missing during payroll reversal", "deduction_id", ref.DeductionID, "summary_id", id, "error", err)
			warnings = append(warnings, fmt.Sprintf("loan deduction %s could not be removed", ref.DeductionID))
		}
	}

	if err := s.PayrollRepository.DeleteSummary(ctx, id); err != nil {
		return payroll.DeletePayrollResponse{}, fmt.Errorf("failed to delete payroll summary: %w", err)
	}

	return payroll.DeletePayrollResponse{Warnings: warnings}, nil
}

// GetAvailablePeriods implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetAvailablePeriods(ctx context.Context, employeeID string, year int) ([]payroll.PeriodOptionResponse, error) {
	periods, err := s.PayrollRepository.GetAvailablePeriods(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get available periods: %w", err)
	}
	responses := make([]payroll.PeriodOptionResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.PeriodOptionResponse{
			StartDate: p.Start.Format("2006-01-02"),
			EndDate:   p.End.Format("2006-01-02"),
			Label:     p.Label,
		})
	}
	return responses, nil
}

func mapSummaryToResponse(s payroll.Summary) payroll.SummaryResponse {
	resp := payroll.SummaryResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		PeriodStart: s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   s.PeriodEnd.Format("2006-01-02"),

		DaysWorked:       s.DaysWorked,
		Absences:         s.Absences,
		TotalHoursWorked: s.TotalHoursWorked.Round(2),

		GrossPay:             s.GrossPay.Round(2),
		LateDeduction:        s.LateDeduction.Round(2),
		UndertimeDeduction:   s.UndertimeDeduction.Round(2),
		OvertimePay:          s.OvertimePay.Round(2),
		NightDifferentialPay: s.NightDifferentialPay.Round(2),
		HolidayBonus:         s.HolidayBonus.Round(2),
		LeavePay:             s.LeavePay.Round(2),

		SSS:        s.SSS.Round(2),
		PhilHealth: s.PhilHealth.Round(2),
		PagIbig:    s.PagIbig.Round(2),

		CashAdvanceDeductions: s.CashAdvanceDeductions.Round(2),
		ShortDeductions:       s.ShortDeductions.Round(2),
		LoanDeductions:        s.LoanDeductions.Round(2),

		TotalDeductions: s.TotalDeductions.Round(2),
		NetPay:          s.NetPay.Round(2),

		ShortRefs:         s.ShortRefs,
		CashAdvanceRefs:   s.CashAdvanceRefs,
		LoanDeductionRefs: s.LoanDeductionRefs,
	}
	if s.EmployeeName != nil {
		resp.EmployeeName = *s.EmployeeName
	}
	return resp
}
