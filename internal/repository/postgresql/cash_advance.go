package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

// monthWindowClause builds a predicate matching rows whose date falls in any
// of the given months, with placeholders starting at startIdx. Callers append
// the returned args after their own.
func monthWindowClause(column string, months []deduction.MonthRef, startIdx int) (string, []interface{}) {
	if len(months) == 0 {
		return "FALSE", nil
	}
	var conds []string
	var args []interface{}
	idx := startIdx
	for _, m := range months {
		conds = append(conds, fmt.Sprintf(
			"(EXTRACT(YEAR FROM %s) = $%d AND EXTRACT(MONTH FROM %s) = $%d)",
			column, idx, column, idx+1,
		))
		args = append(args, m.Year, m.Month)
		idx += 2
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

type cashAdvanceRepository struct {
	db *database.DB
}

func NewCashAdvanceRepository(db *database.DB) deduction.CashAdvanceRepository {
	return &cashAdvanceRepository{db: db}
}

const cashAdvanceColumns = `
	id, employee_id, date, amount, remaining_unpaid,
	installments, amount_per_payment, status, reason, created_at, updated_at
`

func scanCashAdvance(row pgx.Row) (deduction.CashAdvance, error) {
	var ca deduction.CashAdvance
	err := row.Scan(
		&ca.ID, &ca.EmployeeID, &ca.Date, &ca.Amount, &ca.RemainingUnpaid,
		&ca.Installments, &ca.AmountPerPayment, &ca.Status, &ca.Reason,
		&ca.CreatedAt, &ca.UpdatedAt,
	)
	return ca, err
}

// Create implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) Create(ctx context.Context, ca deduction.CashAdvance) (deduction.CashAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cash_advances (
			employee_id, date, amount, remaining_unpaid,
			installments, amount_per_payment, status, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ca.EmployeeID, ca.Date, ca.Amount, ca.RemainingUnpaid,
		ca.Installments, ca.AmountPerPayment, ca.Status, ca.Reason,
	).Scan(&ca.ID, &ca.CreatedAt, &ca.UpdatedAt)
	if err != nil {
		return deduction.CashAdvance{}, fmt.Errorf("failed to create cash advance: %w", err)
	}

	return ca, nil
}

// GetByID implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) GetByID(ctx context.Context, id string) (deduction.CashAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cashAdvanceColumns + ` FROM cash_advances WHERE id = $1`

	ca, err := scanCashAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.CashAdvance{}, deduction.ErrInstrumentNotFound
		}
		return deduction.CashAdvance{}, fmt.Errorf("failed to get cash advance: %w", err)
	}

	return ca, nil
}

// ListByMonth implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]deduction.CashAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cashAdvanceColumns + `
		FROM cash_advances
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, employeeID, year, month)
}

// ListOutstandingInMonths implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) ListOutstandingInMonths(ctx context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.CashAdvance, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + cashAdvanceColumns + `
		FROM cash_advances
		WHERE employee_id = $1
		  AND status = 'Unpaid'
		  AND remaining_unpaid > 0
		  AND ` + clause + `
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, append([]interface{}{employeeID}, args...)...)
}

// GetByIDInMonths implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) GetByIDInMonths(ctx context.Context, id string, months []deduction.MonthRef) (deduction.CashAdvance, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + cashAdvanceColumns + `
		FROM cash_advances
		WHERE id = $1
		  AND ` + clause + `
	`

	ca, err := scanCashAdvance(q.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.CashAdvance{}, deduction.ErrInstrumentNotFound
		}
		return deduction.CashAdvance{}, fmt.Errorf("failed to get cash advance: %w", err)
	}

	return ca, nil
}

// Update implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) Update(ctx context.Context, ca deduction.CashAdvance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cash_advances SET
			remaining_unpaid = $2,
			installments = $3,
			amount_per_payment = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, ca.ID, ca.RemainingUnpaid, ca.Installments, ca.AmountPerPayment, ca.Status)
	if err != nil {
		return fmt.Errorf("failed to update cash advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

// Delete implements deduction.CashAdvanceRepository.
func (r *cashAdvanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cash_advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cash advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

func (r *cashAdvanceRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]deduction.CashAdvance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advances: %w", err)
	}
	defer rows.Close()

	var advances []deduction.CashAdvance
	for rows.Next() {
		ca, err := scanCashAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash advance: %w", err)
		}
		advances = append(advances, ca)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cash advances: %w", err)
	}

	return advances, nil
}
