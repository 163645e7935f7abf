package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/exo-explorer/models"
)

// errorTimestampLayout mirrors the zone-less ISO timestamp of the API error
// envelope.
const errorTimestampLayout = "2006-01-02T15:04:05.000"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.AuthResponse{Message: "OTP sent"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {timestamp,status,error,message} envelope that the
// client's adapter decodes for every non-2xx response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	_, _ = WriteJSON(w, models.ErrorResponse{
		Timestamp: time.Now().Format(errorTimestampLayout),
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
	}, statusCode)
}
