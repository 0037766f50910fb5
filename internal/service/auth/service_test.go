package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/organization"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/user"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/jwt"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]user.User // by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	for _, u := range f.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	newUser.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[newUser.ID] = newUser
	return newUser, nil
}

type fakeOrgRepo struct {
	orgs    []organization.Organization
	nextID  int
	failure error
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == id {
			return o, nil
		}
	}
	return organization.Organization{}, organization.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) Create(_ context.Context, newOrg organization.Organization) (organization.Organization, error) {
	if f.failure != nil {
		return organization.Organization{}, f.failure
	}
	for _, o := range f.orgs {
		if o.Name == newOrg.Name {
			return organization.Organization{}, organization.ErrNameExists
		}
	}
	f.nextID++
	newOrg.ID = fmt.Sprintf("org-%d", f.nextID)
	f.orgs = append(f.orgs, newOrg)
	return newOrg, nil
}

// passthroughTx mimics transactional routing without a database. Rollback
// is covered by the repos' own error returns.
func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc   auth.AuthService
	users *fakeUserRepo
	orgs  *fakeOrgRepo
	jwt   jwt.Service
}

func newFixture() *fixture {
	f := &fixture{
		users: newFakeUserRepo(),
		orgs:  &fakeOrgRepo{},
		jwt:   jwt.NewJWTService("test-secret-key-for-auth", "15m", "168h"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewAuthService(f.users, f.orgs, f.jwt, passthroughTx, logger)
	return f
}

func signUp(t *testing.T, f *fixture) auth.TokenResponse {
	t.Helper()
	resp, err := f.svc.SignUp(context.Background(), auth.SignUpRequest{
		OrganizationName: "Acme Pte Ltd",
		Email:            "owner@acme.test",
		Password:         "correct-horse",
	})
	require.NoError(t, err)
	return resp
}

func TestSignUp_CreatesOrganizationAndOwner(t *testing.T) {
	f := newFixture()

	resp := signUp(t, f)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "owner", resp.Role)

	require.Len(t, f.orgs.orgs, 1)
	assert.Equal(t, f.orgs.orgs[0].ID, resp.OrganizationID)

	account, err := f.users.GetByEmail(context.Background(), "owner@acme.test")
	require.NoError(t, err)
	assert.Equal(t, user.RoleOwner, account.Role)
	assert.Nil(t, account.EmployeeID)
	assert.NotEqual(t, "correct-horse", account.PasswordHash, "password must be hashed")
}

func TestSignUp_Validation(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name string
		req  auth.SignUpRequest
	}{
		{"missing organization", auth.SignUpRequest{Email: "a@b.co", Password: "longenough"}},
		{"bad email", auth.SignUpRequest{OrganizationName: "Acme", Email: "nope", Password: "longenough"}},
		{"short password", auth.SignUpRequest{OrganizationName: "Acme", Email: "a@b.co", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.SignUp(context.Background(), tc.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestSignUp_DuplicateOrganizationName(t *testing.T) {
	f := newFixture()
	signUp(t, f)

	_, err := f.svc.SignUp(context.Background(), auth.SignUpRequest{
		OrganizationName: "Acme Pte Ltd",
		Email:            "second@acme.test",
		Password:         "correct-horse",
	})
	assert.ErrorIs(t, err, organization.ErrNameExists)
}

func TestSignUp_OrgFailureCreatesNoUser(t *testing.T) {
	f := newFixture()
	f.orgs.failure = errors.New("connection reset")

	_, err := f.svc.SignUp(context.Background(), auth.SignUpRequest{
		OrganizationName: "Acme Pte Ltd",
		Email:            "owner@acme.test",
		Password:         "correct-horse",
	})
	require.Error(t, err)
	assert.Empty(t, f.users.users)
}

func TestLogin_Success(t *testing.T) {
	f := newFixture()
	signUp(t, f)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@acme.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "owner", resp.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	f := newFixture()
	signUp(t, f)

	_, errWrongPass := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@acme.test",
		Password: "wrong-password",
	})
	_, errUnknown := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, errWrongPass, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	f := newFixture()
	tokens := signUp(t, f)

	resp, err := f.svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	f := newFixture()
	tokens := signUp(t, f)

	_, err := f.svc.RefreshToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
