package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/oauth"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	google oauth.GoogleService
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		google:         googleService,
	}
}

// Login verifies the email/password pair and issues the token pair. Lookup
// misses and password mismatches collapse into the same error so callers
// cannot probe which emails exist.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// LoginWithGoogle exchanges the OAuth code, verifies the Google account, and
// issues tokens for the matching local user. Accounts are provisioned by the
// directory import, never created here.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrOAuthEmailMismatch
	}

	userData, err := a.UserRepository.GetByOAuth(ctx, "google", info.GoogleID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, fmt.Errorf("failed to get user by oauth id: %w", err)
		}
		// Not linked yet, fall back to the verified email
		userData, err = a.UserRepository.GetByEmail(ctx, info.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
				return auth.LoginResponse{}, auth.ErrOAuthEmailMismatch
			}
			return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	var response auth.LoginResponse
	var err error

	response.AccessToken, response.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	response.RefreshToken, response.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return response, nil
}
