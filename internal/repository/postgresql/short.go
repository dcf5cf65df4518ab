package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type shortRepository struct {
	db *database.DB
}

func NewShortRepository(db *database.DB) deduction.ShortRepository {
	return &shortRepository{db: db}
}

const shortColumns = `
	id, employee_id, date, amount, remaining_unpaid, status, reason, created_at, updated_at
`

func scanShort(row pgx.Row) (deduction.Short, error) {
	var sh deduction.Short
	err := row.Scan(
		&sh.ID, &sh.EmployeeID, &sh.Date, &sh.Amount, &sh.RemainingUnpaid,
		&sh.Status, &sh.Reason, &sh.CreatedAt, &sh.UpdatedAt,
	)
	return sh, err
}

// Create implements deduction.ShortRepository.
func (r *shortRepository) Create(ctx context.Context, sh deduction.Short) (deduction.Short, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shorts (employee_id, date, amount, remaining_unpaid, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.EmployeeID, sh.Date, sh.Amount, sh.RemainingUnpaid, sh.Status, sh.Reason,
	).Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return deduction.Short{}, fmt.Errorf("failed to create short: %w", err)
	}

	return sh, nil
}

// GetByID implements deduction.ShortRepository.
func (r *shortRepository) GetByID(ctx context.Context, id string) (deduction.Short, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shortColumns + ` FROM shorts WHERE id = $1`

	sh, err := scanShort(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Short{}, deduction.ErrInstrumentNotFound
		}
		return deduction.Short{}, fmt.Errorf("failed to get short: %w", err)
	}

	return sh, nil
}

// ListByMonth implements deduction.ShortRepository.
func (r *shortRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]deduction.Short, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shortColumns + `
		FROM shorts
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, employeeID, year, month)
}

// ListOutstandingInMonths implements deduction.ShortRepository.
func (r *shortRepository) ListOutstandingInMonths(ctx context.Context, employeeID string, months []deduction.MonthRef) ([]deduction.Short, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + shortColumns + `
		FROM shorts
		WHERE employee_id = $1
		  AND status = 'Unpaid'
		  AND remaining_unpaid > 0
		  AND ` + clause + `
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, append([]interface{}{employeeID}, args...)...)
}

// GetByIDInMonths implements deduction.ShortRepository.
func (r *shortRepository) GetByIDInMonths(ctx context.Context, id string, months []deduction.MonthRef) (deduction.Short, error) {
	q := GetQuerier(ctx, r.db)

	clause, args := monthWindowClause("date", months, 2)
	query := `
		SELECT ` + shortColumns + `
		FROM shorts
		WHERE id = $1
		  AND ` + clause + `
	`

	sh, err := scanShort(q.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Short{}, deduction.ErrInstrumentNotFound
		}
		return deduction.Short{}, fmt.Errorf("failed to get short: %w", err)
	}

	return sh, nil
}

// Update implements deduction.ShortRepository.
func (r *shortRepository) Update(ctx context.Context, sh deduction.Short) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shorts SET
			remaining_unpaid = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, sh.ID, sh.RemainingUnpaid, sh.Status)
	if err != nil {
		return fmt.Errorf("failed to update short: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

// Delete implements deduction.ShortRepository.
func (r *shortRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shorts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete short: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrInstrumentNotFound
	}

	return nil
}

func (r *shortRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]deduction.Short, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shorts: %w", err)
	}
	defer rows.Close()

	var shorts []deduction.Short
	for rows.Next() {
		sh, err := scanShort(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan short: %w", err)
		}
		shorts = append(shorts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shorts: %w", err)
	}

	return shorts, nil
}
