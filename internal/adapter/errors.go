package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes. The server's
// message text is attached by wrapping, so callers check the class with
// [errors.Is] and surface err.Error() to the user.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
