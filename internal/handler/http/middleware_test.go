package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/internal/utils"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace ID is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "missing trace ID is generated", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(utils.TraceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(utils.TraceIDHeader)
			assert.Equal(t, got, ctxTraceID)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: l}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"size":5`)
	assert.Contains(t, buf.String(), `"uri":"/api/health"`)
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, w.statusCode())

		_, err := w.Write([]byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.statusCode())
		assert.Equal(t, 3, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.statusCode())
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

// ---- withGZip ----

func TestWithGZip(t *testing.T) {
	payload := bytes.Repeat([]byte("exoplanet "), 100)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	})

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among other encodings", acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "no accept-encoding", acceptEncoding: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			if !tt.wantGzipped {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rr.Body.Bytes())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			assert.Less(t, rr.Body.Len(), len(payload))

			gz, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			body, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, payload, body)
		})
	}
}

func TestWithGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

// ---- auth, adminOnly, subject ----

func TestAuthMiddleware(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()
	token := signIn(t, router, "User@Test.io", "secret1")

	var gotEmail string
	var gotAdmin bool
	protected := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = utils.GetUserEmailFromContext(r.Context())
		gotAdmin = utils.IsAdminFromContext(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + token + "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEmail = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "user@test.io", gotEmail)
				assert.False(t, gotAdmin)
			} else {
				assert.Empty(t, gotEmail)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	protected := h.adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req.WithContext(utils.WithUser(req.Context(), "user@test.io", false)))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, req.WithContext(utils.WithUser(req.Context(), "root@test.io", true)))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSubject(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		admin   bool
		email   string
		want    string
		wantErr error
	}{
		{name: "empty email is the caller", caller: "user@test.io", want: "user@test.io"},
		{name: "own email in other case", caller: "user@test.io", email: " USER@test.io ", want: "user@test.io"},
		{name: "other email", caller: "user@test.io", email: "other@test.io", wantErr: stubapi.ErrForbidden},
		{name: "admin acts on others", caller: "root@test.io", admin: true, email: "other@test.io", want: "other@test.io"},
		{name: "no caller and no email", wantErr: stubapi.ErrEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.caller != "" {
				req = req.WithContext(utils.WithUser(req.Context(), tt.caller, tt.admin))
			}

			got, err := subject(req, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyError(t *testing.T) {
	status, message := classifyError(stubapi.ErrExoplanetNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, stubapi.ErrExoplanetNotFound.Error(), message)

	status, message = classifyError(io.ErrUnexpectedEOF)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, message, "EOF")
}
