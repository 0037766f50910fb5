package employee

import "context"

// EmployeeRepository methods take organizationID explicitly so a query can
// never cross a tenant boundary.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
