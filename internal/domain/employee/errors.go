package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered in this organization")
	ErrNoEmployeesInOrg  = errors.New("no employees found in organization")
	ErrWrongOrganization = errors.New("employee does not belong to this organization")
)
