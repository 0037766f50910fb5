package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_ClaimsRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	employeeID := "a2f1c3d4-0000-4000-8000-000000000001"
	token, expiresAt, err := svc.GenerateAccessToken(
		"user-1", "owner@example.com", &employeeID,
		"b2f1c3d4-0000-4000-8000-000000000002", user.RoleOwner,
	)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	orgID, ok := decoded.Get("organization_id")
	require.True(t, ok)
	assert.Equal(t, "b2f1c3d4-0000-4000-8000-000000000002", orgID)

	empID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, employeeID, empID)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "owner", role)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_NilEmployeeID(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "owner@example.com", nil, "org-1", user.RoleOwner)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	empID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Nil(t, empID)
}

func TestValidateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("user-42", "e@example.com", nil, "org-1", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshToken_Expired(t *testing.T) {
	// Expiration beyond the 30s acceptable skew.
	svc := NewJWTService(testSecret, "1h", "-2m")

	refresh, _, err := svc.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestValidateRefreshToken_WrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("a-completely-different-secret", "1h", "24h")

	refresh, _, err := other.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}
