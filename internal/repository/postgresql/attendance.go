package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, day, month, year, time_in, time_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND year = $2
		  AND month = $3
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var atts []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Day, &att.Month, &att.Year,
			&att.TimeIn, &att.TimeOut, &att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		atts = append(atts, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return atts, nil
}

// GetByDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByDay(ctx context.Context, employeeID string, year, month, day int) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, day, month, year, time_in, time_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND year = $2
		  AND month = $3
		  AND day = $4
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, year, month, day).Scan(
		&att.ID, &att.EmployeeID, &att.Day, &att.Month, &att.Year,
		&att.TimeIn, &att.TimeOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &att, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, day, month, year, time_in, time_out)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, year, month, day) DO UPDATE SET
			time_in = EXCLUDED.time_in,
			time_out = EXCLUDED.time_out,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Day, att.Month, att.Year, att.TimeIn, att.TimeOut,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		DELETE FROM attendances
		WHERE id = $1
		RETURNING id, employee_id, day, month, year, time_in, time_out, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Day, &att.Month, &att.Year,
		&att.TimeIn, &att.TimeOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to delete attendance: %w", err)
	}

	return att, nil
}

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) attendance.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements attendance.SettingsRepository. The settings table holds at
// most one row.
func (s *settingsRepository) Get(ctx context.Context) (attendance.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, late_grace_period_minutes, late_deduction_per_minute,
			   undertime_grace_period_minutes, undertime_deduction_per_minute,
			   overtime_hourly_multiplier, night_differential_multiplier,
			   night_window_start, night_window_end,
			   regular_holiday_multiplier, special_holiday_multiplier,
			   created_at, updated_at
		FROM attendance_settings
		LIMIT 1
	`

	var settings attendance.Settings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID, &settings.LateGracePeriodMinutes, &settings.LateDeductionPerMinute,
		&settings.UndertimeGracePeriodMinutes, &settings.UndertimeDeductionPerMinute,
		&settings.OvertimeHourlyMultiplier, &settings.NightDifferentialMultiplier,
		&settings.NightWindowStart, &settings.NightWindowEnd,
		&settings.RegularHolidayMultiplier, &settings.SpecialHolidayMultiplier,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Settings{}, attendance.ErrSettingsNotFound
		}
		return attendance.Settings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	return settings, nil
}

// Upsert implements attendance.SettingsRepository.
func (s *settingsRepository) Upsert(ctx context.Context, settings attendance.Settings) (attendance.Settings, error) {
	q := GetQuerier(ctx, s.db)

	existing, err := s.Get(ctx)
	if err != nil && err != attendance.ErrSettingsNotFound {
		return attendance.Settings{}, err
	}

	if err == attendance.ErrSettingsNotFound {
		if settings.ID == "" {
			settings.ID = uuid.New().String()
		}
		query := `
			INSERT INTO attendance_settings (
				id,
				late_grace_period_minutes, late_deduction_per_minute,
				undertime_grace_period_minutes, undertime_deduction_per_minute,
				overtime_hourly_multiplier, night_differential_multiplier,
				night_window_start, night_window_end,
				regular_holiday_multiplier, special_holiday_multiplier
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`
		err := q.QueryRow(ctx, query, settings.ID,
			settings.LateGracePeriodMinutes, settings.LateDeductionPerMinute,
			settings.UndertimeGracePeriodMinutes, settings.UndertimeDeductionPerMinute,
			settings.OvertimeHourlyMultiplier, settings.NightDifferentialMultiplier,
			settings.NightWindowStart, settings.NightWindowEnd,
			settings.RegularHolidayMultiplier, settings.SpecialHolidayMultiplier,
		).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
		if err != nil {
			return attendance.Settings{}, fmt.Errorf("failed to insert attendance settings: %w", err)
		}
		return settings, nil
	}

	query := `
		UPDATE attendance_settings SET
			late_grace_period_minutes = $2, late_deduction_per_minute = $3,
			undertime_grace_period_minutes = $4, undertime_deduction_per_minute = $5,
			overtime_hourly_multiplier = $6, night_differential_multiplier = $7,
			night_window_start = $8, night_window_end = $9,
			regular_holiday_multiplier = $10, special_holiday_multiplier = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, created_at, updated_at
	`
	err = q.QueryRow(ctx, query, existing.ID,
		settings.LateGracePeriodMinutes, settings.LateDeductionPerMinute,
		settings.UndertimeGracePeriodMinutes, settings.UndertimeDeductionPerMinute,
		settings.OvertimeHourlyMultiplier, settings.NightDifferentialMultiplier,
		settings.NightWindowStart, settings.NightWindowEnd,
		settings.RegularHolidayMultiplier, settings.SpecialHolidayMultiplier,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to update attendance settings: %w", err)
	}

	return settings, nil
}
