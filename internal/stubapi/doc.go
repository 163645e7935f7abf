// Package stubapi is an in-memory implementation of the exoplanet REST
// backend the client talks to.
//
// It keeps users, exoplanets, favorites and second-factor state in process
// memory. Passwords, OTPs and backup codes are stored as bcrypt hashes, OTPs
// are produced with a TOTP generator and sessions are HS256 JWTs. The
// transport layer lives in internal/handler/http; this package owns the
// rules and the French messages the real backend answers with.
//
// The stub also carries the test-only helpers of the backend: reset
// endpoints and a way to read the last OTP issued for an email.
package stubapi
