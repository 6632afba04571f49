package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeShowREX/major-project/internal/domain"
	"github.com/codeShowREX/major-project/internal/infrastructure/mail"
	"github.com/codeShowREX/major-project/internal/pkg/id"
	pkgtoken "github.com/codeShowREX/major-project/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = 1 * time.Hour
)

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)
	VerifyEmail(ctx context.Context, code string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationToken(ctx context.Context, code string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	SetResetToken(ctx context.Context, userID, token string, expiresAt int64) error
	MarkVerified(ctx context.Context, userID string) error
	ConsumeResetToken(ctx context.Context, userID, token, newPasswordHash string) error
}

type service struct {
	repo      userStore
	mailer    mail.Mailer
	clientURL string
}

type ServiceDeps struct {
	UserRepo  userStore
	Mailer    mail.Mailer
	ClientURL string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.UserRepo,
		mailer:    deps.Mailer,
		clientURL: deps.ClientURL,
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	// The uniqueness check must actually run; a store failure here cannot
	// be read as "email free".
	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, err := pkgtoken.NewVerificationCode()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	expiresAt := now.Add(verificationTTL).Unix()
	u := &domain.User{
		UserID:                id.New(),
		Email:                 req.Email,
		PasswordHash:          string(hash),
		Name:                  req.Name,
		VerificationToken:     &code,
		VerificationExpiresAt: &expiresAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	s.sendAsync(u.Email, mail.SubjectVerification, mail.VerificationBody(code))
	return u, nil
}

func (s *service) VerifyEmail(ctx context.Context, code string) (*domain.User, error) {
	u, err := s.repo.GetByVerificationToken(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Wrong and expired codes are indistinguishable to the caller.
			return nil, domain.ErrInvalidVerifyCode
		}
		return nil, err
	}
	if u.VerificationExpiresAt == nil || *u.VerificationExpiresAt < time.Now().Unix() {
		return nil, domain.ErrInvalidVerifyCode
	}
	if err := s.repo.MarkVerified(ctx, u.UserID); err != nil {
		return nil, err
	}
	u.IsVerified = true
	u.VerificationToken = nil
	u.VerificationExpiresAt = nil
	s.sendAsync(u.Email, mail.SubjectWelcome, mail.WelcomeBody(u.Name))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same message whether the email or the password was wrong.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	now := time.Now().UTC()
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{"last_login": now}); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	// The repo already reports an unknown email as domain.ErrUserNotFound;
	// anything else is an infrastructure failure and propagates as-is.
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	tok, err := pkgtoken.NewResetToken()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetTTL).Unix()
	if err := s.repo.SetResetToken(ctx, u.UserID, tok, expiresAt); err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, tok)
	s.sendAsync(u.Email, mail.SubjectReset, mail.ResetBody(resetURL))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	u, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}
	if u.ResetExpiresAt == nil || *u.ResetExpiresAt < time.Now().Unix() {
		return domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	// Conditional update: a concurrent reset with the same token loses here.
	if err := s.repo.ConsumeResetToken(ctx, u.UserID, token, string(hash)); err != nil {
		return err
	}
	s.sendAsync(u.Email, mail.SubjectResetSuccess, mail.ResetSuccessBody())
	return nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

// sendAsync dispatches an email without blocking the request. The user
// record is the source of truth; a failed send is logged, never surfaced.
func (s *service) sendAsync(to, subject, body string) {
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			slog.Warn("failed to send email", "to", to, "subject", subject, "err", err)
		}
	}()
}
