package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Every outgoing request gets an X-Trace-ID header. The value is taken from
// the request context (see WithTraceID) when present, otherwise a fresh
// identifier is generated. A header set explicitly on the request wins.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(setTraceID)

	return &HTTPClient{Client: client}
}

func setTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) != "" {
		return nil
	}

	traceID, ok := GetTraceIDFromContext(req.Context())
	if !ok {
		traceID = NewTraceID()
	}
	req.SetHeader(TraceIDHeader, traceID)

	return nil
}
