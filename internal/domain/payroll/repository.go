package payroll

import "context"

type SalaryRepository interface {
	GetByID(ctx context.Context, id string) (Salary, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (Salary, error)
	ListByEmployee(ctx context.Context, organizationID, employeeID string) ([]Salary, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Salary, error)
	// Insert returns ErrSalaryExists when a record for the same
	// (employee, month, year) already exists.
	Insert(ctx context.Context, record Salary) (Salary, error)
	Update(ctx context.Context, record Salary) (Salary, error)
}
