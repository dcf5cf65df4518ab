package attendance

import "context"

// AttendanceRepository defines data access methods for raw punch records.
type AttendanceRepository interface {
	// ListByMonth retrieves every punch record for an employee in a month.
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]Attendance, error)

	// GetByDay retrieves the record for one calendar day, nil when absent.
	GetByDay(ctx context.Context, employeeID string, year, month, day int) (*Attendance, error)

	// Upsert creates or updates the punch record for a day.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// Delete removes a punch record and returns the removed row so the
	// caller can recompute the day it belonged to.
	Delete(ctx context.Context, id string) (Attendance, error)
}

// SettingsRepository stores the company-wide attendance policy singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
