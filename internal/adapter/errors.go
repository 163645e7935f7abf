package adapter

import "errors"

// Sentinels matched with errors.Is. Each non-2xx status has one; the
// message from the response body travels in the wrapping *ResponseError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrServerUnavailable wraps transport failures: refused connections,
	// DNS errors, timeouts and cancelled contexts.
	ErrServerUnavailable = errors.New("server unavailable")
)
