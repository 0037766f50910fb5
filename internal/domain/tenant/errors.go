package tenant

import "errors"

var (
	ErrNoOrganization  = errors.New("organization id missing from token")
	ErrInvalidEmployee = errors.New("employee id claim is not a valid identifier")
	// ErrEmployeeRequired is returned when an operation needs the caller to
	// be linked to an employee record and the account is not.
	ErrEmployeeRequired = errors.New("account is not linked to an employee")
)
