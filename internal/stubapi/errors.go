// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import (
	"errors"

	"github.com/MKhiriev/exo-explorer/internal/app"
)

// Business errors of the backend. Their text is the message the API writes
// into the error envelope, so callers wrap them with %w and the transport
// layer reports the sentinel text only.
var (
	ErrUserAlreadyExists    = errors.New(app.MsgUserAlreadyExists)
	ErrBadCredentials       = errors.New(app.MsgBadCredentials)
	ErrWrongCurrentPassword = errors.New(app.MsgWrongCurrentPassword)
	ErrUserNotFound         = errors.New(app.MsgUserNotFound)
	ErrExoplanetNotFound    = errors.New(app.MsgExoplanetNotFound)

	ErrInvalidOtp        = errors.New(app.MsgInvalidOtp)
	ErrOtpExpired        = errors.New(app.MsgOtpExpired)
	ErrOtpNotFound       = errors.New(app.MsgOtpNotFound)
	ErrInvalidBackupCode = errors.New(app.MsgInvalidBackupCode)

	ErrEmailRequired          = errors.New(app.MsgEmailRequired)
	ErrExoplanetIDRequired    = errors.New(app.MsgExoplanetIDRequired)
	ErrPasswordFieldsRequired = errors.New(app.MsgPasswordFieldsRequired)
	ErrValidation             = errors.New(app.MsgValidationFailed)

	// ErrForbidden is returned when a user token acts on another user's data.
	ErrForbidden = errors.New("accès refusé")

	// ErrInvalidToken covers every bearer token the backend refuses.
	ErrInvalidToken = errors.New("jeton invalide ou expiré")
)
