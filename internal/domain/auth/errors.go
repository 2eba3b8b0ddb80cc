package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrOAuthEmailMismatch = errors.New("oauth account email is not registered")
)
