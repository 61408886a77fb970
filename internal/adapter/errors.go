package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
// Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrEndpointNotFound is a 404 that did not come from the snapshot
	// handler, e.g. a server without the snapshot route.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrNotConfigured is returned by constructors when no server address is set.
	ErrNotConfigured = errors.New("server address is not configured")
)
