package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const summaryColumns = `
	s.id, s.employee_id, s.period_start, s.period_end,
	s.days_worked, s.absences, s.total_hours_worked,
	s.gross_pay, s.late_deduction, s.undertime_deduction,
	s.overtime_pay, s.night_differential_pay, s.holiday_bonus, s.leave_pay,
	s.sss, s.philhealth, s.pagibig,
	s.cash_advance_deductions, s.short_deductions, s.loan_deductions,
	s.total_deductions, s.net_pay,
	s.short_refs, s.cash_advance_refs, s.loan_deduction_refs,
	s.created_at, s.updated_at,
	e.name
`

func scanSummary(row pgx.Row) (payroll.Summary, error) {
	var sum payroll.Summary
	var shortRefs, cashAdvanceRefs, loanDeductionRefs []byte

	err := row.Scan(
		&sum.ID, &sum.EmployeeID, &sum.PeriodStart, &sum.PeriodEnd,
		&sum.DaysWorked, &sum.Absences, &sum.TotalHoursWorked,
		&sum.GrossPay, &sum.LateDeduction, &sum.UndertimeDeduction,
		&sum.OvertimePay, &sum.NightDifferentialPay, &sum.HolidayBonus, &sum.LeavePay,
		&sum.SSS, &sum.PhilHealth, &sum.PagIbig,
		&sum.CashAdvanceDeductions, &sum.ShortDeductions, &sum.LoanDeductions,
		&sum.TotalDeductions, &sum.NetPay,
		&shortRefs, &cashAdvanceRefs, &loanDeductionRefs,
		&sum.CreatedAt, &sum.UpdatedAt,
		&sum.EmployeeName,
	)
	if err != nil {
		return payroll.Summary{}, err
	}

	if err := json.Unmarshal(shortRefs, &sum.ShortRefs); err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to decode short refs: %w", err)
	}
	if err := json.Unmarshal(cashAdvanceRefs, &sum.CashAdvanceRefs); err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to decode cash advance refs: %w", err)
	}
	if err := json.Unmarshal(loanDeductionRefs, &sum.LoanDeductionRefs); err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to decode loan deduction refs: %w", err)
	}

	return sum, nil
}

// CreateSummary implements payroll.PayrollRepository. The instrument refs are
// stored as JSONB alongside the totals; they are only ever read back whole.
func (r *payrollRepository) CreateSummary(ctx context.Context, sum payroll.Summary) (payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	shortRefs, err := json.Marshal(refsOrEmpty(sum.ShortRefs))
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to encode short refs: %w", err)
	}
	cashAdvanceRefs, err := json.Marshal(refsOrEmpty(sum.CashAdvanceRefs))
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to encode cash advance refs: %w", err)
	}
	loanDeductionRefs, err := json.Marshal(loanRefsOrEmpty(sum.LoanDeductionRefs))
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to encode loan deduction refs: %w", err)
	}

	query := `
		INSERT INTO payroll_summaries (
			employee_id, period_start, period_end,
			days_worked, absences, total_hours_worked,
			gross_pay, late_deduction, undertime_deduction,
			overtime_pay, night_differential_pay, holiday_bonus, leave_pay,
			sss, philhealth, pagibig,
			cash_advance_deductions, short_deductions, loan_deductions,
			total_deductions, net_pay,
			short_refs, cash_advance_refs, loan_deduction_refs
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		) RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		sum.EmployeeID, sum.PeriodStart, sum.PeriodEnd,
		sum.DaysWorked, sum.Absences, sum.TotalHoursWorked,
		sum.GrossPay, sum.LateDeduction, sum.UndertimeDeduction,
		sum.OvertimePay, sum.NightDifferentialPay, sum.HolidayBonus, sum.LeavePay,
		sum.SSS, sum.PhilHealth, sum.PagIbig,
		sum.CashAdvanceDeductions, sum.ShortDeductions, sum.LoanDeductions,
		sum.TotalDeductions, sum.NetPay,
		shortRefs, cashAdvanceRefs, loanDeductionRefs,
	).Scan(&sum.ID, &sum.CreatedAt, &sum.UpdatedAt)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to create payroll summary: %w", err)
	}

	return sum, nil
}

// GetSummaryByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummaryByID(ctx context.Context, id string) (payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM payroll_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	sum, err := scanSummary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Summary{}, payroll.ErrSummaryNotFound
		}
		return payroll.Summary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return sum, nil
}

// GetSummaryByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummaryByPeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM payroll_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.period_start = $2
		  AND s.period_end = $3
	`

	sum, err := scanSummary(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Summary{}, payroll.ErrSummaryNotFound
		}
		return payroll.Summary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return sum, nil
}

// ListSummaries implements payroll.PayrollRepository.
func (r *payrollRepository) ListSummaries(ctx context.Context, employeeID string, year int) ([]payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM payroll_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND EXTRACT(YEAR FROM s.period_start) = $2
		ORDER BY s.period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll summaries: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll summaries: %w", err)
	}

	return summaries, nil
}

// DeleteSummary implements payroll.PayrollRepository.
func (r *payrollRepository) DeleteSummary(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_summaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSummaryNotFound
	}

	return nil
}

// GetAvailablePeriods implements payroll.PayrollRepository.
func (r *payrollRepository) GetAvailablePeriods(ctx context.Context, employeeID string, year int) ([]payroll.PeriodOption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT period_start, period_end
		FROM payroll_summaries
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM period_start) = $2
		ORDER BY period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get available periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PeriodOption
	for rows.Next() {
		var p payroll.PeriodOption
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		p.Label = fmt.Sprintf("%s - %s", p.Start.Format("Jan 2"), p.End.Format("Jan 2, 2006"))
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate periods: %w", err)
	}

	return periods, nil
}

func refsOrEmpty(refs []payroll.InstrumentRef) []payroll.InstrumentRef {
	if refs == nil {
		return []payroll.InstrumentRef{}
	}
	return refs
}

func loanRefsOrEmpty(refs []payroll.LoanDeductionRef) []payroll.LoanDeductionRef {
	if refs == nil {
		return []payroll.LoanDeductionRef{}
	}
	return refs
}
