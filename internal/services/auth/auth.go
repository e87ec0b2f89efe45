// Package auth contains the business logic for user accounts: registration,
// login and the password-reset flow.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/lib/jwt"
	"github.com/matchpulse/matchpulse-backend/internal/lib/password"
	"github.com/matchpulse/matchpulse-backend/internal/lib/resettoken"
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// UserRepository is the contract against the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, userUID, token string, expires time.Time) error
	ResetPassword(ctx context.Context, token, passwordHash string, now time.Time) error
}

// ResetMailer dispatches the password-reset email.
type ResetMailer interface {
	SendPasswordReset(to, token string) error
}

// AuthService implements registration, login and password reset.
type AuthService struct {
	users    UserRepository
	mailer   ResetMailer
	jwtMaker jwt.Maker
	resetTTL time.Duration
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserRepository, mailer ResetMailer, jwtMaker jwt.Maker, resetTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		mailer:   mailer,
		jwtMaker: jwtMaker,
		resetTTL: resetTTL,
	}
}

// Register creates a new user with a hashed password and the default role.
// favoriteTeams lands in the preferences field, empty when absent.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword, favoriteTeams string) (string, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.DefaultRole,
		Preferences:  favoriteTeams,
	}
	return s.users.CreateUser(ctx, user)
}

// Login verifies the password of the user matching login (email or full
// name) and issues a session token. The returned User still carries the
// hash; handlers must serialize only the public fields.
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (*models.User, string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// RequestPasswordReset issues a fresh reset token for the user with the
// given email, persists it, then emails the reset link. The token stays
// persisted when dispatch fails, so a retried request keeps working even if
// the first email never arrived.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "auth.RequestPasswordReset"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := resettoken.New()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	expires := time.Now().UTC().Add(s.resetTTL)

	if err := s.users.SetResetToken(ctx, user.UID, token, expires); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(user.Email, token); err != nil {
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrMailDelivery, err)
	}
	return nil
}

// ResetPassword replaces the password of the user holding an unexpired
// token; the token is invalidated in the same statement.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	const op = "auth.ResetPassword"

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return s.users.ResetPassword(ctx, token, hashed, time.Now().UTC())
}
