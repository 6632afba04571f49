package domain

import "time"

// User is the credential record stored in the users table.
// The two token/expiry pairs are either both set or both nil; the dynamo
// layer writes them together so a token never exists without its expiry.
type User struct {
	UserID       string     `json:"id" dynamodbav:"user_id"`
	Email        string     `json:"email" dynamodbav:"email"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Name         string     `json:"name" dynamodbav:"name"`
	IsVerified   bool       `json:"is_verified" dynamodbav:"is_verified"`
	LastLogin    *time.Time `json:"last_login,omitempty" dynamodbav:"last_login"`

	VerificationToken     *string `json:"-" dynamodbav:"verification_token"`
	VerificationExpiresAt *int64  `json:"-" dynamodbav:"verification_expires_at"` // Unix seconds

	ResetPasswordToken *string `json:"-" dynamodbav:"reset_password_token"`
	ResetExpiresAt     *int64  `json:"-" dynamodbav:"reset_expires_at"` // Unix seconds

	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
