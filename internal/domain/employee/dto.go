package employee

import (
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	JobTitle   *string `json:"job_title,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	BaseSalary *string `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil {
		amount, err := decimal.NewFromString(*r.BaseSalary)
		if err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be a non-negative decimal amount"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	JobTitle  *string `json:"job_title,omitempty"`
	HireDate  *string `json:"hire_date,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	var hireDate *string
	if e.HireDate != nil {
		s := e.HireDate.Format("2006-01-02")
		hireDate = &s
	}

	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		JobTitle:  e.JobTitle,
		HireDate:  hireDate,
	}
}
