// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/exo-explorer/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedJSON is returned when a request body cannot be decoded.
	ErrMalformedJSON = errors.New(app.MsgMalformedJSON)

	// ErrInvalidParameter is returned for a path or query parameter of the
	// wrong type.
	ErrInvalidParameter = errors.New(app.MsgValidationFailed + " : paramètre invalide")

	// ErrAdminRequired is returned by the admin guard for a non-admin token.
	ErrAdminRequired = errors.New("admin role required")
)
