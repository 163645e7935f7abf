package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/models"
)

const testAdminEmail = "admin@exo.io"

// ---- Helpers ----

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	backend := stubapi.NewBackend(&config.StubAPIConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "exo-test",
		TokenDuration: time.Hour,
		AdminEmails:   []string{testAdminEmail},
	}, logger.Nop())

	return NewHandler(backend, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), logger.Nop())
}

// serve runs one request through the full router. body is JSON encoded
// unless it is already a string.
func serve(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// signIn signs email up through the API, reads the pending code from the test
// endpoint and returns the session token.
func signIn(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	rr := serve(t, router, http.MethodPost, "/api/auth/signup", "", models.Credentials{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = serve(t, router, http.MethodGet, "/api/test/otp?email="+email, "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	otp := decode[map[string]string](t, rr)["otp"]

	rr = serve(t, router, http.MethodPost, "/api/auth/verify-otp", "", models.OtpVerificationRequest{Email: email, Otp: otp})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[models.AuthResponse](t, rr).Token
}
