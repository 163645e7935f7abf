package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/utils"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// newRequest starts a request bound to ctx. The bearer header is attached
// only while a token is held.
func (h *httpServerAdapter) newRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute sends req and maps both transport failures and non-2xx statuses.
func (h *httpServerAdapter) execute(req *resty.Request, method, path, op string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter."+op).
			Str("path", path).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %s request: %w", ErrServerUnavailable, op, err)
	}

	if err = mapHTTPError(resp); err != nil {
		var respErr *ResponseError
		if errors.As(err, &respErr) {
			h.logger.Debug().
				Str("func", "httpServerAdapter."+op).
				Int("status", respErr.Status).
				Str("message", respErr.Message).
				Msg("api returned an error")
		}
		return resp, err
	}

	return resp, nil
}
