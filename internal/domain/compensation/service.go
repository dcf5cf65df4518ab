package compensation

import (
	"context"
	"time"
)

// CompensationService defines business logic for per-day compensation
// records: the recompute pipeline and the manual override flows.
type CompensationService interface {
	// RecomputeMonth re-derives every non-overridden record for the month
	// from punches, schedule, settings and holidays, creating default
	// records for days that have none yet. Idempotent for fixed inputs.
	RecomputeMonth(ctx context.Context, employeeID string, year, month int) ([]CompensationResponse, error)

	// RecomputeDay re-derives a single day (non-override path only).
	RecomputeDay(ctx context.Context, employeeID string, date time.Time) (CompensationResponse, error)

	// ListMonth returns the persisted records for the month.
	ListMonth(ctx context.Context, employeeID string, year, month int) ([]CompensationResponse, error)

	// ApplyManualEdit edits chosen fields of an overridden record, applying
	// the stored per-field formulas to the downstream totals.
	ApplyManualEdit(ctx context.Context, req ManualEditRequest) (CompensationResponse, error)

	// SetManualOverride toggles override. Turning it off re-runs the full
	// computation pipeline for the day, discarding manual edits.
	SetManualOverride(ctx context.Context, req SetManualOverrideRequest) (CompensationResponse, error)
}
