package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Salary is one employee's payroll record for a (month, year) period.
// At most one exists per (employee, month, year); the unique index on the
// salaries table is the authoritative guard against concurrent generation.
type Salary struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	Month          int
	Year           int
	BasicSalary    decimal.Decimal
	Bonus          decimal.Decimal
	Deductions     decimal.Decimal
	Total          decimal.Decimal
	Status         Status
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalculateTotal keeps the total = basic + bonus - deductions invariant.
func (s *Salary) RecalculateTotal() {
	s.Total = s.BasicSalary.Add(s.Bonus).Sub(s.Deductions)
}

// Stats holds the working-day breakdown a salary is computed from. It is
// derived per generation run and never persisted.
type Stats struct {
	AttendanceDays    int
	ApprovedLeaveDays int
	UnpaidDays        int
}
