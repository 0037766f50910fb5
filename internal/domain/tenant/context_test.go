package tenant

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = jwtauth.New("HS256", []byte("tenant-test-secret"), nil)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	token, _, err := testAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestFromContext_ResolvesBothIdentifiers(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"organization_id": "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a",
		"employee_id":     "9f0f7a3e-63e4-4b3c-9a3e-5a1f0b2c3d4e",
		"user_id":         "user-1",
		"role":            "employee",
	})

	tc, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a", tc.OrganizationID)
	assert.Equal(t, "9f0f7a3e-63e4-4b3c-9a3e-5a1f0b2c3d4e", tc.EmployeeID)
	assert.True(t, tc.HasEmployee())
	assert.Equal(t, "employee", tc.Role)
}

func TestFromContext_OwnerWithoutEmployee(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"organization_id": "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a",
		"role":            "owner",
	})

	tc, err := FromContext(ctx)
	require.NoError(t, err)
	assert.False(t, tc.HasEmployee())
}

func TestFromContext_MissingOrganization(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"employee_id": "9f0f7a3e-63e4-4b3c-9a3e-5a1f0b2c3d4e",
	})

	_, err := FromContext(ctx)
	assert.ErrorIs(t, err, ErrNoOrganization)
}

func TestFromContext_MalformedOrganization(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"organization_id": "not-a-uuid",
	})

	_, err := FromContext(ctx)
	assert.ErrorIs(t, err, ErrNoOrganization)
}

func TestFromContext_MalformedEmployee(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"organization_id": "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a",
		"employee_id":     "nope",
	})

	_, err := FromContext(ctx)
	assert.ErrorIs(t, err, ErrInvalidEmployee)
}

func TestFromContext_NoToken(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoOrganization)
}
