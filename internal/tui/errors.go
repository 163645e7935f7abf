// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/internal/validators"
)

// errorText turns a service error into the line shown to the user.
// Validation errors are translated field by field; known domain errors get a
// catalog message; anything else keeps the text the backend sent.
func (e *env) errorText(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Localize(e.services.Bundle.Translator(e.lang()))
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable), isNetworkError(err):
		return e.t(i18n.CommonServerUnavailable)
	case errors.Is(err, service.ErrInvalidCredentials):
		return e.t(i18n.LoginError)
	case errors.Is(err, service.ErrUserAlreadyExists):
		return e.t(i18n.SignupUserExists)
	case errors.Is(err, service.ErrInvalidCode):
		return e.t(i18n.OtpError)
	case errors.Is(err, service.ErrWrongCurrentPassword):
		return e.t(i18n.ChangePasswordError)
	case errors.Is(err, service.ErrSessionExpired):
		return e.t(i18n.CommonSessionExpired)
	case errors.Is(err, service.ErrForbidden):
		return e.t(i18n.CommonForbidden)
	case errors.Is(err, service.ErrLoginRequired):
		return e.t(i18n.CommonLoginRequired)
	case errors.Is(err, service.ErrExoplanetNotFound), errors.Is(err, service.ErrUserNotFound):
		return e.t(i18n.CommonNotFound)
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
