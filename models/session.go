package models

// Session is the in-memory representation of the current authenticated
// identity. There is exactly one Session per process; it is owned by the
// session service and handed out to consumers as a value snapshot.
//
// Invariant: Authenticated is true if and only if User is non-nil and Token
// is non-empty. A Session must never be observed half-populated.
type Session struct {
	// User is the authenticated account record, nil when logged out.
	User *User `json:"user,omitempty"`

	// Token is the opaque bearer credential attached to API requests.
	// Empty when logged out.
	Token string `json:"token,omitempty"`

	// Authenticated reports whether a complete session is held.
	Authenticated bool `json:"authenticated"`
}

// IsZero reports whether the session carries no identity at all.
func (s Session) IsZero() bool {
	return s.User == nil && s.Token == "" && !s.Authenticated
}
