package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	if err := h.backend.Signup(credentials); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("email", credentials.Email).Msg("user signed up")
	writeMessage(w, r, app.MsgSignupSucceeded)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	if err := h.backend.Login(credentials); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgOtpSent)
}

func (h *Handler) verifyOtp(w http.ResponseWriter, r *http.Request) {
	var verification models.OtpVerificationRequest
	if !decodeJSON(w, r, &verification) {
		return
	}

	resp, err := h.backend.VerifyOtp(verification)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) verifyBackupCode(w http.ResponseWriter, r *http.Request) {
	var verification models.BackupCodeVerificationRequest
	if !decodeJSON(w, r, &verification) {
		return
	}

	resp, err := h.backend.VerifyBackupCode(verification)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) generateBackupCodes(w http.ResponseWriter, r *http.Request) {
	var generate models.GenerateBackupCodesRequest
	if !decodeJSON(w, r, &generate) {
		return
	}

	email, err := subject(r, generate.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	generate.Email = email

	codes, err := h.backend.GenerateBackupCodes(generate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, codes, http.StatusOK)
}

// decodeJSON reads the request body into v. On failure it answers 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrMalformedJSON)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}
