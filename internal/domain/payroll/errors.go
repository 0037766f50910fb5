package payroll

import "errors"

var (
	ErrSalaryNotFound    = errors.New("salary record not found")
	ErrSalaryForbidden   = errors.New("salary record belongs to another organization")
	ErrSalaryAlreadyPaid = errors.New("salary already marked as paid")
	ErrSalaryExists      = errors.New("salary record already exists for this period")
)
