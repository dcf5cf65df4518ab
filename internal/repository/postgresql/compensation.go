package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

const compensationColumns = `
	id, employee_id, day, month, year, day_type, hours_worked,
	late_minutes, undertime_minutes, overtime_minutes, night_differential_hours,
	gross_pay, deductions, net_pay,
	late_deduction, undertime_deduction, overtime_pay, night_differential_pay, holiday_bonus,
	leave_type, leave_pay, absence, manual_override, notes,
	created_at, updated_at
`

func scanCompensation(row pgx.Row) (compensation.Compensation, error) {
	var c compensation.Compensation
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Day, &c.Month, &c.Year, &c.DayType, &c.HoursWorked,
		&c.LateMinutes, &c.UndertimeMinutes, &c.OvertimeMinutes, &c.NightDifferentialHours,
		&c.GrossPay, &c.Deductions, &c.NetPay,
		&c.LateDeduction, &c.UndertimeDeduction, &c.OvertimePay, &c.NightDifferentialPay, &c.HolidayBonus,
		&c.LeaveType, &c.LeavePay, &c.Absence, &c.ManualOverride, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// ListByMonth implements compensation.CompensationRepository.
func (r *compensationRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]compensation.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compensationColumns + `
		FROM compensations
		WHERE employee_id = $1
		  AND year = $2
		  AND month = $3
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensations: %w", err)
	}
	defer rows.Close()

	var records []compensation.Compensation
	for rows.Next() {
		c, err := scanCompensation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compensations: %w", err)
	}

	return records, nil
}

// GetByDay implements compensation.CompensationRepository.
func (r *compensationRepository) GetByDay(ctx context.Context, employeeID string, year, month, day int) (*compensation.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compensationColumns + `
		FROM compensations
		WHERE employee_id = $1
		  AND year = $2
		  AND month = $3
		  AND day = $4
	`

	c, err := scanCompensation(q.QueryRow(ctx, query, employeeID, year, month, day))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get compensation: %w", err)
	}

	return &c, nil
}

// Upsert implements compensation.CompensationRepository.
func (r *compensationRepository) Upsert(ctx context.Context, c compensation.Compensation) (compensation.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensations (
			employee_id, day, month, year, day_type, hours_worked,
			late_minutes, undertime_minutes, overtime_minutes, night_differential_hours,
			gross_pay, deductions, net_pay,
			late_deduction, undertime_deduction, overtime_pay, night_differential_pay, holiday_bonus,
			leave_type, leave_pay, absence, manual_override, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (employee_id, year, month, day) DO UPDATE SET
			day_type = EXCLUDED.day_type,
			hours_worked = EXCLUDED.hours_worked,
			late_minutes = EXCLUDED.late_minutes,
			undertime_minutes = EXCLUDED.undertime_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			night_differential_hours = EXCLUDED.night_differential_hours,
			gross_pay = EXCLUDED.gross_pay,
			deductions = EXCLUDED.deductions,
			net_pay = EXCLUDED.net_pay,
			late_deduction = EXCLUDED.late_deduction,
			undertime_deduction = EXCLUDED.undertime_deduction,
			overtime_pay = EXCLUDED.overtime_pay,
			night_differential_pay = EXCLUDED.night_differential_pay,
			holiday_bonus = EXCLUDED.holiday_bonus,
			leave_type = EXCLUDED.leave_type,
			leave_pay = EXCLUDED.leave_pay,
			absence = EXCLUDED.absence,
			manual_override = EXCLUDED.manual_override,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.EmployeeID, c.Day, c.Month, c.Year, c.DayType, c.HoursWorked,
		c.LateMinutes, c.UndertimeMinutes, c.OvertimeMinutes, c.NightDifferentialHours,
		c.GrossPay, c.Deductions, c.NetPay,
		c.LateDeduction, c.UndertimeDeduction, c.OvertimePay, c.NightDifferentialPay, c.HolidayBonus,
		c.LeaveType, c.LeavePay, c.Absence, c.ManualOverride, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return compensation.Compensation{}, fmt.Errorf("failed to upsert compensation: %w", err)
	}

	return c, nil
}

// SaveMonth implements compensation.CompensationRepository. The whole month
// is written in one transaction so a failed recompute never leaves a month
// half-updated.
func (r *compensationRepository) SaveMonth(ctx context.Context, employeeID string, year, month int, records []compensation.Compensation) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, c := range records {
			if _, err := r.Upsert(txCtx, c); err != nil {
				return err
			}
		}
		return nil
	})
}
