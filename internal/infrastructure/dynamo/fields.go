package dynamo

// DynamoDB attribute names used in expressions across the users repo.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUserID                = "user_id"
	fieldEmail                 = "email"
	fieldPasswordHash          = "password_hash"
	fieldIsVerified            = "is_verified"
	fieldLastLogin             = "last_login"
	fieldVerificationToken     = "verification_token"
	fieldVerificationExpiresAt = "verification_expires_at"
	fieldResetPasswordToken    = "reset_password_token"
	fieldResetExpiresAt        = "reset_expires_at"
	fieldUpdatedAt             = "updated_at"
)
