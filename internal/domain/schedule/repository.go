package schedule

import "context"

// EmploymentTypeRepository defines data access methods for employment types
// and their weekly schedule patterns.
type EmploymentTypeRepository interface {
	// GetByName retrieves an employment type with its full week pattern.
	GetByName(ctx context.Context, name string) (EmploymentType, error)

	// List retrieves all employment types with their week patterns.
	List(ctx context.Context) ([]EmploymentType, error)

	// Upsert creates or replaces an employment type and its week pattern.
	Upsert(ctx context.Context, et EmploymentType) (EmploymentType, error)

	// Delete removes an employment type and its pattern rows.
	Delete(ctx context.Context, id string) error
}
