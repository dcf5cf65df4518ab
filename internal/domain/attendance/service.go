package attendance

import "context"

// AttendanceService manages raw punch records and the attendance policy.
// Editing a punch re-derives that day's compensation record so the stored
// pay never lags behind the punches.
type AttendanceService interface {
	UpsertAttendance(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	ListMonth(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
