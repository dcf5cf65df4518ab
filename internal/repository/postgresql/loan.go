package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) deduction.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `
	id, employee_id, date, amount, amount_per_payment,
	remaining_balance, remaining_payments, status, created_at, updated_at
`

func scanLoan(row pgx.Row) (deduction.Loan, error) {
	var l deduction.Loan
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Date, &l.Amount, &l.AmountPerPayment,
		&l.RemainingBalance, &l.RemainingPayments, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements deduction.LoanRepository.
func (r *loanRepository) Create(ctx context.Context, l deduction.Loan) (deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (
			employee_id, date, amount, amount_per_payment,
			remaining_balance, remaining_payments, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.Date, l.Amount, l.AmountPerPayment,
		l.RemainingBalance, l.RemainingPayments, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return deduction.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return l, nil
}

// GetByID implements deduction.LoanRepository.
func (r *loanRepository) GetByID(ctx context.Context, id string) (deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Loan{}, deduction.ErrInstrumentNotFound
		}
		return deduction.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

// ListByMonth implements deduction.LoanRepository.
func (r *loanRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, employeeID, year, month)
}

// ListOutstandingInMonths implements deduction.LoanRepository.
func (r *loanRepository) ListOutstandingInMonths(ctx context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE employee_id = $1
		  AND status = 'Unpaid'
		  AND remaining_balance > 0
		  AND ` + clause + `
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, append([]interface{}{employeeID}, args...)...)
}

// GetByIDInMonths implements deduction.LoanRepository.
func (r *loanRepository) GetByIDInMonths(ctx context.Context, id string, months []deduction.MonthRef) (deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE id = $1
		  AND ` + clause + `
	`

	l, err := scanLoan(q.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Loan{}, deduction.ErrInstrumentNotFound
		}
		return deduction.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

// Update implements deduction.LoanRepository.
func (r *loanRepository) Update(ctx context.Context, l deduction.Loan) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans SET
			amount_per_payment = $2,
			remaining_balance = $3,
			remaining_payments = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, l.ID, l.AmountPerPayment, l.RemainingBalance, l.RemainingPayments, l.Status)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

// Delete implements deduction.LoanRepository. Deduction records go with the
// loan.
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM loan_deductions WHERE loan_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete loan deductions: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

// CreateDeduction implements deduction.LoanRepository.
func (r *loanRepository) CreateDeduction(ctx context.Context, d deduction.LoanDeduction) (deduction.LoanDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loan_deductions (loan_id, amount, deducted_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, d.LoanID, d.Amount, d.DeductedAt).Scan(&d.ID)
	if err != nil {
		return deduction.LoanDeduction{}, fmt.Errorf("failed to create loan deduction: %w", err)
	}

	return d, nil
}

// GetDeductionByID implements deduction.LoanRepository.
func (r *loanRepository) GetDeductionByID(ctx context.Context, id string) (deduction.LoanDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, loan_id, amount, deducted_at FROM loan_deductions WHERE id = $1`

	var d deduction.LoanDeduction
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.LoanID, &d.Amount, &d.DeductedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.LoanDeduction{}, deduction.ErrLoanDeductionNotFound
		}
		return deduction.LoanDeduction{}, fmt.Errorf("failed to get loan deduction: %w", err)
	}

	return d, nil
}

// DeleteDeduction implements deduction.LoanRepository.
func (r *loanRepository) DeleteDeduction(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM loan_deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrLoanDeductionNotFound
	}

	return nil
}

func (r *loanRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]deduction.Loan, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []deduction.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}

	return loans, nil
}
