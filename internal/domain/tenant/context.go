// Package tenant resolves the per-request organization identity from
// verified JWT claims. The resolved Context is an immutable value passed
// explicitly into services; nothing here is stored in shared state, so a
// context can never leak across requests.
package tenant

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// Context identifies the organization (and, when the caller is an employee
// account, the employee) a request acts on behalf of.
type Context struct {
	OrganizationID string
	EmployeeID     string
	UserID         string
	Role           string
}

// HasEmployee reports whether the caller is linked to an employee record.
func (c Context) HasEmployee() bool {
	return c.EmployeeID != ""
}

// FromContext builds a tenant Context from the jwtauth-verified claims on
// ctx. The organization id claim must be present and a valid UUID; the
// employee id is optional (owner accounts have none) but must parse when set.
func FromContext(ctx context.Context) (Context, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Context{}, ErrNoOrganization
	}

	orgID, ok := claims["organization_id"].(string)
	if !ok || orgID == "" {
		return Context{}, ErrNoOrganization
	}
	if _, err := uuid.Parse(orgID); err != nil {
		return Context{}, ErrNoOrganization
	}

	tc := Context{OrganizationID: orgID}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return Context{}, ErrInvalidEmployee
		}
		tc.EmployeeID = employeeID
	}

	if userID, ok := claims["user_id"].(string); ok {
		tc.UserID = userID
	}
	if role, ok := claims["role"].(string); ok {
		tc.Role = role
	}

	return tc, nil
}
