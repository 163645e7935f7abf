package utils

import "github.com/google/uuid"

// TraceIDHeader is the header that carries a request trace identifier between
// the client and the API.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
