// Package apperr defines the error taxonomy shared by services and HTTP
// handlers. Services return these sentinels (wrapped with operation context);
// handlers translate them to status codes and never leak lower-layer detail.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned when a registration hits the unique email index.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the given lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the password hash check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is returned for an unknown or expired reset token.
	ErrTokenInvalid = errors.New("invalid or expired token")

	// ErrPlayerNotFound is returned when an upstream payload has no matching player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrMailDelivery is returned when the reset email could not be dispatched.
	ErrMailDelivery = errors.New("mail delivery failed")
)

const maxBodyInError = 512

// UpstreamError describes a failed call to a sports-data provider: either a
// transport error or a non-2xx status. Body is kept (truncated) for server-side
// logs only.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError]
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("upstream %s: unexpected status %d: %s", e.Provider, e.StatusCode, body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstream reports whether err wraps an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
