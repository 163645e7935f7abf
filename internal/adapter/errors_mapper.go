package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/exo-explorer/models"
)

// ResponseError is a non-2xx answer of the API.
type ResponseError struct {
	Status  int
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return NewResponseError(resp.StatusCode(), responseMessage(resp.Body()))
}

// NewResponseError classifies status into one of the package sentinels.
func NewResponseError(status int, message string) *ResponseError {
	respErr := &ResponseError{Status: status, Message: message}

	switch status {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusBadGateway:
		respErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		respErr.kind = fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
		if respErr.Message == "" {
			respErr.Message = http.StatusText(status)
		}
	}

	return respErr
}

// responseMessage extracts "message" from the JSON error envelope and falls
// back to the raw body for plain-text answers.
func responseMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "{") {
		return ""
	}
	return raw
}
