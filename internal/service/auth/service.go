package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/organization"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/user"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TxFunc runs fn with repository calls routed through one transaction.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	orgRepo    organization.OrganizationRepository
	jwtService jwt.Service
	inTx       TxFunc
	logger     *slog.Logger
}

func NewAuthService(
	userRepo user.UserRepository,
	orgRepo organization.OrganizationRepository,
	jwtService jwt.Service,
	inTx TxFunc,
	logger *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		jwtService: jwtService,
		inTx:       inTx,
		logger:     logger,
	}
}

// SignUp registers a new organization and its owner account in one
// transaction; neither row survives without the other.
func (s *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var newUser user.User
	err = s.inTx(ctx, func(txCtx context.Context) error {
		org, err := s.orgRepo.Create(txCtx, organization.Organization{
			Name:  req.OrganizationName,
			Email: req.Email,
		})
		if err != nil {
			return err
		}

		newUser, err = s.userRepo.Create(txCtx, user.User{
			OrganizationID: org.ID,
			Email:          req.Email,
			PasswordHash:   string(hash),
			Role:           user.RoleOwner,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.logger.InfoContext(ctx, "organization registered",
		slog.String("organization_id", newUser.OrganizationID),
		slog.String("user_id", newUser.ID))

	return s.issueTokens(newUser)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(
		account.ID, account.Email, account.EmployeeID, account.OrganizationID, account.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(
		account.ID, account.Email, account.EmployeeID, account.OrganizationID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Role:                  string(account.Role),
		OrganizationID:        account.OrganizationID,
	}, nil
}
