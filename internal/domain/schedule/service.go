package schedule

import "context"

// EmploymentTypeService defines the read/write surface the settings UI uses
// to manage employment types and their weekly patterns.
type EmploymentTypeService interface {
	GetEmploymentType(ctx context.Context, name string) (EmploymentTypeResponse, error)
	ListEmploymentTypes(ctx context.Context) ([]EmploymentTypeResponse, error)
	UpsertEmploymentType(ctx context.Context, req UpsertEmploymentTypeRequest) (EmploymentTypeResponse, error)
	DeleteEmploymentType(ctx context.Context, id string) error
}
