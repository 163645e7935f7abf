package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// with [stubapi.Backend.ParseToken] and stores the subject email and role
// flag in the request context before delegating to the next handler. Any
// failure is answered with 401 and the error envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := h.backend.ParseToken(tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUser(r.Context(), strings.ToLower(token.Subject), token.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly lets through requests authenticated with an admin token. It must
// run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsAdminFromContext(r.Context()) {
			writeError(w, r, ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// subject resolves the email a user endpoint acts on. An empty email means
// the caller; another user's email needs an admin token.
func subject(r *http.Request, email string) (string, error) {
	caller, _ := utils.GetUserEmailFromContext(r.Context())

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = caller
	}
	if email == "" {
		return "", stubapi.ErrEmailRequired
	}
	if email != caller && !utils.IsAdminFromContext(r.Context()) {
		return "", stubapi.ErrForbidden
	}
	return email, nil
}
