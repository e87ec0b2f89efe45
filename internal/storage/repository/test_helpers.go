package repository

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// TestDataFactory creates rows for integration tests.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory creates a factory bound to the given storage.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser inserts a user row directly and returns its UID.
func (f *TestDataFactory) CreateUser(t *testing.T, fullName, email, passwordHash, role string) string {
	t.Helper()
	uid := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO users (uid, full_name, email, password_hash, role, preferences)
		VALUES ($1, $2, $3, $4, $5, '')`,
		uid, fullName, email, passwordHash, role)
	require.NoError(t, err)
	return uid
}

// CreateUserWithResetToken inserts a user with a pending reset token.
func (f *TestDataFactory) CreateUserWithResetToken(t *testing.T, fullName, email, token string, expires time.Time) string {
	t.Helper()
	uid := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO users
		(uid, full_name, email, password_hash, role, preferences, reset_password_token, reset_password_expires)
		VALUES ($1, $2, $3, 'hashedpassword', 'user', '', $4, $5)`,
		uid, fullName, email, token, expires)
	require.NoError(t, err)
	return uid
}

// GetTestUserData returns standard test user fields.
func GetTestUserData() models.User {
	return models.User{
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Role:         "user",
		Preferences:  "Real Madrid,Liverpool",
	}
}

const usersSchema = `
	CREATE EXTENSION IF NOT EXISTS "pgcrypto";

	CREATE TABLE users (
		uid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		preferences TEXT NOT NULL DEFAULT '',
		reset_password_token TEXT,
		reset_password_expires TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// setupTestDatabase starts a disposable PostgreSQL container and returns a
// Storage connected to it with the users schema applied.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort(nat.Port("5432/tcp")),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			if err = storage.DB.Ping(); err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	_, err = storage.DB.Exec(usersSchema)
	require.NoError(t, err, "failed to create schema")

	cleanup := func() {
		_ = storage.DB.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return storage, cleanup
}
