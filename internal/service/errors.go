package service

import "errors"

var (
	// ErrRegisterOnServer wraps transport failures during registration.
	ErrRegisterOnServer = errors.New("registration failed on server")

	// ErrLoginOnServer wraps transport failures during login.
	ErrLoginOnServer = errors.New("login failed on server")

	// ErrNoToken is returned when the server reports auth success but the
	// response carries no usable token or user record. The session stays
	// logged out rather than entering a half-authenticated state.
	ErrNoToken = errors.New("authentication response missing token or user")

	// ErrNotAuthenticated is returned by operations that require an active
	// session when none is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrServiceDisposed is returned by state-changing calls after Dispose.
	ErrServiceDisposed = errors.New("session service is disposed")
)
