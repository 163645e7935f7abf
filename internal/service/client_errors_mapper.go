// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The backend message is kept after the sentinel so it can
// still be shown when no localized text exists for it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)
	wrap := func(kind error) error {
		if msg == "" {
			return kind
		}
		return fmt.Errorf("%w: %s", kind, msg)
	}

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidBackupCode {
			return wrap(ErrInvalidCode)
		}
		return wrap(ErrInvalidDataProvided)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgBadCredentials:
			return wrap(ErrInvalidCredentials)
		case app.MsgWrongCurrentPassword:
			return wrap(ErrWrongCurrentPassword)
		case app.MsgInvalidOtp, app.MsgOtpExpired, app.MsgOtpNotFound, app.MsgInvalidBackupCode:
			return wrap(ErrInvalidCode)
		}
		return wrap(ErrSessionExpired)

	case errors.Is(err, adapter.ErrForbidden):
		return wrap(ErrForbidden)

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.HasPrefix(msg, app.MsgExoplanetNotFound):
			return wrap(ErrExoplanetNotFound)
		case msg == app.MsgUserNotFound:
			return wrap(ErrUserNotFound)
		}
		return wrap(ErrExoplanetNotFound)

	case errors.Is(err, adapter.ErrConflict):
		return wrap(ErrUserAlreadyExists)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return wrap(ErrServerError)
	}

	return err
}

// extractBody returns the backend message carried by an adapter error.
func extractBody(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}

// credentialError narrows a login failure. Any 401 from /auth/login means bad
// credentials whatever the message says.
func credentialError(err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrSessionExpired) {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, extractBody(err))
	}
	return mapped
}

// codeError narrows a second-factor failure the same way.
func codeError(err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrSessionExpired) || errors.Is(mapped, ErrInvalidDataProvided) {
		return fmt.Errorf("%w: %s", ErrInvalidCode, extractBody(err))
	}
	return mapped
}
