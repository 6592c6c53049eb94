// Package adapter provides the transport layer for communicating with the
// Nutri Guide backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty; every endpoint
// method is a thin parameter-to-request mapping around a shared request
// primitive that owns URL construction, the JSON content type, the bearer
// token header, and the `{success, message}` envelope decoding.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapAPIError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter
