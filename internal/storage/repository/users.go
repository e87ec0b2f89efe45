package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// Postgres unique_violation.
const uniqueViolationCode = "23505"

// CreateUser inserts a new user and returns its UID. A duplicate email is
// reported as apperr.ErrEmailTaken via the unique index, so two concurrent
// registrations with the same email cannot both succeed.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"

	var newUID string
	query := `INSERT INTO users (full_name, email, password_hash, role, preferences)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	err := s.DB.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.Role, user.Preferences).Scan(&newUID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return "", fmt.Errorf("%s: %w", op, apperr.ErrEmailTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByLogin returns the first user whose email OR full name equals the
// given login. Matching by either field mirrors the deployed client contract.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"

	query := `SELECT uid, full_name, email, password_hash, role, preferences,
			      reset_password_token, reset_password_expires, created_at
			  FROM users
			  WHERE email = $1 OR full_name = $1
			  LIMIT 1`
	return s.scanUser(ctx, op, query, login)
}

// GetUserByEmail returns the user with the given email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT uid, full_name, email, password_hash, role, preferences,
			      reset_password_token, reset_password_expires, created_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(ctx, op, query, email)
}

func (s *Storage) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var resetToken sql.NullString
	var resetExpires sql.NullTime
	if err := row.Scan(&u.UID, &u.FullName, &u.Email, &u.PasswordHash,
		&u.Role, &u.Preferences, &resetToken, &resetExpires, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resetToken.Valid {
		u.ResetToken = &resetToken.String
	}
	if resetExpires.Valid {
		u.ResetExpires = &resetExpires.Time
	}
	return u, nil
}

// SetResetToken stores a reset token and its expiration on the user record,
// replacing any previously issued token.
func (s *Storage) SetResetToken(ctx context.Context, userUID, token string, expires time.Time) error {
	const op = "storage.SetResetToken"

	query := `UPDATE users
			  SET reset_password_token = $1, reset_password_expires = $2
			  WHERE uid = $3`
	commandTag, err := s.DB.ExecContext(ctx, query, token, expires, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := commandTag.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
	}
	return nil
}

// ResetPassword overwrites the password hash of the user holding an unexpired
// token and clears the token fields in the same statement, which makes the
// token single-use.
func (s *Storage) ResetPassword(ctx context.Context, token, passwordHash string, now time.Time) error {
	const op = "storage.ResetPassword"

	query := `UPDATE users
			  SET password_hash = $1,
			      reset_password_token = NULL,
			      reset_password_expires = NULL
			  WHERE reset_password_token = $2 AND reset_password_expires > $3`
	commandTag, err := s.DB.ExecContext(ctx, query, passwordHash, token, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := commandTag.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrTokenInvalid)
	}
	return nil
}
