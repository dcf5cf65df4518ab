package employee

import "context"

// EmployeeRepository defines data access methods for employee master data.
// Employee records are managed by the surrounding application; the engine
// only reads them.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}
