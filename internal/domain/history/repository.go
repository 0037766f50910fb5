package history

import (
	"context"

	"github.com/shopspring/decimal"
)

type HistoryRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	// LatestBaseSalary returns the newest "Base Salary" entry for the
	// employee, or ErrNoBaseSalary when none exists.
	LatestBaseSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
