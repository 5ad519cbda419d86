package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// CredentialVerifier checks a username/password pair. The single-admin
// bcrypt implementation lives in the admin domain; swapping in a multi-user
// backend requires no caller changes.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Credentials CredentialVerifier
}

var ErrInvalidCredentials = errors.New("invalid username or password")

// ExecuteLogin validates admin credentials.
// PRE: Username and password provided
// POST: Returns nil on success so the caller can establish a session
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) error {
	if input.Username == "" || input.Password == "" {
		return ErrInvalidCredentials
	}
	if !deps.Credentials.Verify(input.Username, input.Password) {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username)
		return ErrInvalidCredentials
	}
	slog.Info("auth_event", "event", "login_success", "username", input.Username)
	return nil
}
