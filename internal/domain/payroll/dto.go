package payroll

import (
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSalaryRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deductions   decimal.Decimal `json:"deductions"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	PaidAt       *string         `json:"paid_at,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// ToResponse maps a Salary to its API shape. Employee name is attached by
// the service when the roster lookup succeeds.
func ToResponse(s Salary, employeeName *string) SalaryResponse {
	var paidAt *string
	if s.PaidAt != nil {
		str := s.PaidAt.Format(time.RFC3339)
		paidAt = &str
	}

	return SalaryResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: employeeName,
		Month:        s.Month,
		Year:         s.Year,
		BasicSalary:  s.BasicSalary,
		Bonus:        s.Bonus,
		Deductions:   s.Deductions,
		Total:        s.Total,
		Status:       string(s.Status),
		PaidAt:       paidAt,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}
