package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNameExists           = errors.New("organization name already taken")
)
