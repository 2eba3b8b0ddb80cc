package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}
