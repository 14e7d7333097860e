package patient

import "errors"

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrOTPMismatch        = errors.New("invalid or expired code")
	ErrNotFound           = errors.New("patient not found")
)
