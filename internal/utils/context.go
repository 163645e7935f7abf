// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and parsing, and trace identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserEmailCtxKey is the key used to store the authenticated user's email in
// the context of a stub API request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserEmailCtxKey, "user@test.io")
var UserEmailCtxKey = contextKey("userEmail")

// UserIsAdminCtxKey carries the role flag of the token the request was
// authenticated with.
var UserIsAdminCtxKey = contextKey("userIsAdmin")

// TraceIDCtxKey is the key used to carry a request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetUserEmailFromContext retrieves the authenticated user's email.
//
// Returns the email and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok && email != ""
}

// WithUser returns a copy of ctx carrying the authenticated user's email and
// role flag.
func WithUser(ctx context.Context, email string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, UserEmailCtxKey, email)
	return context.WithValue(ctx, UserIsAdminCtxKey, isAdmin)
}

// IsAdminFromContext reports whether the request was authenticated with an
// admin token. A missing value reads as false.
func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(UserIsAdminCtxKey).(bool)
	return isAdmin
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace identifier stored by WithTraceID.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
