package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"Email is required"}`, want: ErrBadRequest, message: "Email is required"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"status":401,"message":"Invalid OTP"}`, want: ErrUnauthorized, message: "Invalid OTP"},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found plain", status: http.StatusNotFound, body: "no such planet", want: ErrNotFound, message: "no such planet"},
		{name: "conflict", status: http.StatusConflict, body: `{"message":"User already exists"}`, want: ErrConflict, message: "User already exists"},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, want: ErrInternalServerError},
		{name: "teapot", status: http.StatusTeapot, want: ErrUnexpectedStatus, message: "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			respErr, ok := err.(*ResponseError)
			require.True(t, ok)
			assert.Equal(t, tt.status, respErr.Status)
			assert.Equal(t, tt.message, respErr.Message)
		})
	}
}
