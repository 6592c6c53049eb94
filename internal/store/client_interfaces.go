package store

import (
	"context"

	"github.com/nutriguide/go-nutri-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository is the local keeper of the authenticated identity.
// It persists the user record and the bearer token so a restart can restore
// the session without re-authenticating.
//
// SaveToken/DeleteToken also satisfy the transport layer's token mirror, so
// the same repository backs both the session service and the HTTP adapter.
type CredentialRepository interface {
	// SaveSession persists the user record and token atomically, replacing
	// any previous session.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession loads the persisted session. Returns [ErrSessionNotFound]
	// when nothing is stored and [ErrCorruptSession] when the stored user
	// record cannot be decoded.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted user record and token.
	DeleteSession(ctx context.Context) error

	// SaveUser replaces only the persisted user record, keeping the token.
	SaveUser(ctx context.Context, user models.User) error

	// SaveToken replaces only the persisted bearer token.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes only the persisted bearer token.
	DeleteToken(ctx context.Context) error
}
