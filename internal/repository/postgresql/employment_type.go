package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type employmentTypeRepository struct {
	db *database.DB
}

func NewEmploymentTypeRepository(db *database.DB) schedule.EmploymentTypeRepository {
	return &employmentTypeRepository{db: db}
}

// GetByName implements schedule.EmploymentTypeRepository.
func (r *employmentTypeRepository) GetByName(ctx context.Context, name string) (schedule.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hours_of_work, requires_time_tracking, created_at, updated_at
		FROM employment_types
		WHERE name = $1
	`

	var et schedule.EmploymentType
	err := q.QueryRow(ctx, query, name).Scan(
		&et.ID, &et.Name, &et.HoursOfWork, &et.RequiresTimeTracking,
		&et.CreatedAt, &et.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.EmploymentType{}, schedule.ErrEmploymentTypeNotFound
		}
		return schedule.EmploymentType{}, fmt.Errorf("failed to get employment type: %w", err)
	}

	pattern, err := r.getWeekPattern(ctx, et.ID)
	if err != nil {
		return schedule.EmploymentType{}, err
	}
	et.WeekPattern = pattern

	return et, nil
}

// List implements schedule.EmploymentTypeRepository.
func (r *employmentTypeRepository) List(ctx context.Context) ([]schedule.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hours_of_work, requires_time_tracking, created_at, updated_at
		FROM employment_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}
	defer rows.Close()

	var types []schedule.EmploymentType
	for rows.Next() {
		var et schedule.EmploymentType
		if err := rows.Scan(
			&et.ID, &et.Name, &et.HoursOfWork, &et.RequiresTimeTracking,
			&et.CreatedAt, &et.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employment type: %w", err)
		}
		types = append(types, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employment types: %w", err)
	}

	for i := range types {
		pattern, err := r.getWeekPattern(ctx, types[i].ID)
		if err != nil {
			return nil, err
		}
		types[i].WeekPattern = pattern
	}

	return types, nil
}

// Upsert implements schedule.EmploymentTypeRepository.
// The week pattern is replaced wholesale; partial pattern updates are not a
// thing the schedule form produces.
func (r *employmentTypeRepository) Upsert(ctx context.Context, et schedule.EmploymentType) (schedule.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employment_types (name, hours_of_work, requires_time_tracking)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			hours_of_work = EXCLUDED.hours_of_work,
			requires_time_tracking = EXCLUDED.requires_time_tracking,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, et.Name, et.HoursOfWork, et.RequiresTimeTracking).
		Scan(&et.ID, &et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		return schedule.EmploymentType{}, fmt.Errorf("failed to upsert employment type: %w", err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM employment_type_schedules WHERE employment_type_id = $1`, et.ID); err != nil {
		return schedule.EmploymentType{}, fmt.Errorf("failed to clear week pattern: %w", err)
	}

	insert := `
		INSERT INTO employment_type_schedules (employment_type_id, day_of_week, time_in, time_out, is_off)
		VALUES ($1, $2, $3, $4, $5)
	`
	for day, ds := range et.WeekPattern {
		if _, err := q.Exec(ctx, insert, et.ID, day, ds.TimeIn, ds.TimeOut, ds.IsOff); err != nil {
			return schedule.EmploymentType{}, fmt.Errorf("failed to insert week pattern day: %w", err)
		}
	}

	return et, nil
}

// Delete implements schedule.EmploymentTypeRepository.
func (r *employmentTypeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employment_type_schedules WHERE employment_type_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete week pattern: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM employment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEmploymentTypeNotFound
	}

	return nil
}

func (r *employmentTypeRepository) getWeekPattern(ctx context.Context, employmentTypeID string) (map[int]schedule.DailySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT day_of_week, time_in, time_out, is_off
		FROM employment_type_schedules
		WHERE employment_type_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, employmentTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get week pattern: %w", err)
	}
	defer rows.Close()

	pattern := make(map[int]schedule.DailySchedule)
	for rows.Next() {
		var day int
		var ds schedule.DailySchedule
		if err := rows.Scan(&day, &ds.TimeIn, &ds.TimeOut, &ds.IsOff); err != nil {
			return nil, fmt.Errorf("failed to scan week pattern day: %w", err)
		}
		pattern[day] = ds
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate week pattern: %w", err)
	}

	return pattern, nil
}
