package payroll

import (
	"context"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
)

// PayrollService operations take the resolved tenant context explicitly;
// nothing is read from ambient request state.
type PayrollService interface {
	// Calculate generates salary records for every employee in the tenant
	// for the requested period, skipping employees that already have one.
	// It returns the newly created records only.
	Calculate(ctx context.Context, tc tenant.Context, req CalculateSalaryRequest) ([]SalaryResponse, error)
	// MarkPaid transitions a PENDING record to PAID, exactly once.
	MarkPaid(ctx context.Context, tc tenant.Context, salaryID string) (SalaryResponse, error)
	GetByID(ctx context.Context, tc tenant.Context, salaryID string) (SalaryResponse, error)
	ListMine(ctx context.Context, tc tenant.Context) ([]SalaryResponse, error)
	ListAll(ctx context.Context, tc tenant.Context) ([]SalaryResponse, error)
}
