package mail

import "fmt"

// Plain HTML bodies for the four transactional emails. Kept as format
// strings rather than html/template since the only substitutions are
// server-generated values, never user input.

const (
	SubjectVerification = "Verify your email"
	SubjectWelcome      = "Welcome"
	SubjectReset        = "Reset your password"
	SubjectResetSuccess = "Your password was changed"
)

func VerificationBody(code string) string {
	return fmt.Sprintf(`<p>Thanks for signing up.</p>
<p>Your verification code is:</p>
<h2 style="letter-spacing:4px">%s</h2>
<p>The code expires in 24 hours.</p>`, code)
}

func WelcomeBody(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Your email is verified and your account is ready to use.</p>`, name)
}

func ResetBody(resetURL string) string {
	return fmt.Sprintf(`<p>We received a request to reset your password.</p>
<p><a href="%s">Click here to choose a new password</a></p>
<p>The link expires in 1 hour. If you didn't ask for this, ignore this email.</p>`, resetURL)
}

func ResetSuccessBody() string {
	return `<p>Your password was changed successfully.</p>
<p>If this wasn't you, contact support immediately.</p>`
}
