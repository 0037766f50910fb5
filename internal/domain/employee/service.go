package employee

import (
	"context"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
)

type EmployeeService interface {
	Create(ctx context.Context, tc tenant.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, tc tenant.Context, employeeID string) (EmployeeResponse, error)
	List(ctx context.Context, tc tenant.Context) ([]EmployeeResponse, error)
}
