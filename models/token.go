package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer credential issued after second-factor verification.
//
// The client treats the credential as opaque for authorization purposes; the
// embedded claims are only read (without signature verification) to notice a
// stored credential that has already expired.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// IsAdmin mirrors the role claim put in the token by the backend, when
	// present.
	IsAdmin bool `json:"isAdmin,omitempty"`

	// SignedString is the compact serialized form as received from the
	// backend and sent back in the Authorization header.
	SignedString string `json:"-"`
}

// Expired reports whether the token carries an exp claim earlier than now.
// Tokens without exp never expire from the client's point of view.
func (t Token) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(t.ExpiresAt.Time)
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
