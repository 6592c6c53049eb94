package service

import (
	"context"

	"github.com/nutriguide/go-nutri-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthAdapter is the slice of the transport layer the session service needs:
// the auth endpoints plus token custody.
type AuthAdapter interface {
	Register(ctx context.Context, username, email, password string) (models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// CredentialRepository mirrors the store contract the session service relies
// on for persisted session recovery.
type CredentialRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
	SaveUser(ctx context.Context, user models.User) error
}

// SessionService owns the single authenticated session of the process: the
// auth state machine, its persisted recovery, and change notifications.
//
// All methods are safe for concurrent use. Notifications are delivered
// synchronously on the calling goroutine, after the state transition is
// complete and outside the service's internal lock.
type SessionService interface {
	// Initialize restores a previously persisted session, if one exists and
	// is still usable. Missing, incomplete, or expired state silently leaves
	// the service logged out; only infrastructure failures are returned.
	Initialize(ctx context.Context) error

	// Login authenticates with the backend and establishes the session.
	// On any failure the current state is left untouched.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates an account and establishes the session, mirroring
	// Login's semantics.
	Register(ctx context.Context, username, email, password string) (models.Session, error)

	// Logout ends the session. The local session is cleared even when the
	// server cannot be reached; the error reports local cleanup failures
	// only.
	Logout(ctx context.Context) error

	// UpdateProfile applies a partial profile update on the server and folds
	// the returned user record into the current session.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// Session returns a snapshot of the current session.
	Session() models.Session

	// Subscribe registers fn to be called after every session change. The
	// returned function removes the subscription; it is safe to call more
	// than once.
	Subscribe(fn func(models.Session)) (unsubscribe func())

	// Dispose drops all subscriptions. Subsequent state-changing calls fail
	// with [ErrServiceDisposed].
	Dispose()
}
