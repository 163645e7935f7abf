package http

import (
	"net/http"

	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
)

func (h *Handler) insertSampleExoplanets(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, h.backend.InsertSampleExoplanets())
}

func (h *Handler) insertHabitableExoplanets(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, h.backend.InsertHabitableExoplanets())
}

func (h *Handler) clearExoplanets(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, h.backend.ClearExoplanets())
}

func (h *Handler) resetUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, r, stubapi.ErrEmailRequired)
		return
	}

	h.backend.ResetUser(email)
	logger.FromRequest(r).Warn().Str("email", email).Msg("test user reset")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetDB(w http.ResponseWriter, r *http.Request) {
	h.backend.ResetDB()
	logger.FromRequest(r).Warn().Msg("test catalog reset")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetAll(w http.ResponseWriter, r *http.Request) {
	h.backend.ResetAll()
	logger.FromRequest(r).Warn().Msg("all test data reset")
	w.WriteHeader(http.StatusOK)
}

// peekOtp returns the pending one-time code of a user. It stands in for the
// mailbox end-to-end runs would otherwise read.
func (h *Handler) peekOtp(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, r, stubapi.ErrEmailRequired)
		return
	}

	code, ok := h.backend.LastOtp(email)
	if !ok {
		writeError(w, r, stubapi.ErrOtpNotFound)
		return
	}

	writeJSON(w, r, map[string]string{"email": email, "otp": code}, http.StatusOK)
}
