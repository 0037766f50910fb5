package auth

import "context"

type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)
}
