// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client forms before anything is sent to the API.
//
// Login, signup, OTP, profile, password and search forms carry
// go-playground/validator tags. A failed rule is reported as a [*FieldError]
// that matches [ErrInvalidInput] and can be rendered in the active UI
// language.
package validators

import "context"

// Validator validates a form value. fields, when given, restricts the check
// to the named struct fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
