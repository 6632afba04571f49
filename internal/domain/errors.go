package domain

import "errors"

// Sentinel errors for domain-level error discrimination. Their text is the
// user-facing message the handlers return, so services hand them back
// as-is; anything not in this list becomes a generic 500.
var (
	ErrUserExists         = errors.New("User already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidVerifyCode  = errors.New("Invalid or expired verification code")
	ErrInvalidResetToken  = errors.New("Invalid or expired reset token")
	ErrBadRequest         = errors.New("bad request")
)
