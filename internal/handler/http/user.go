package http

import (
	"net/http"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
)

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	favorites, err := h.backend.Favorites(email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, favorites, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var toggle models.ToggleFavoriteRequest
	if !decodeJSON(w, r, &toggle) {
		return
	}

	email, err := subject(r, toggle.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	toggle.Email = email

	if _, err = h.backend.ToggleFavorite(toggle); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgFavoriteToggled)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.backend.Profile(email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.UpdateProfileRequest
	if !decodeJSON(w, r, &update) {
		return
	}

	email, err := subject(r, update.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	update.Email = email

	if err = h.backend.UpdateProfile(update); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgProfileUpdated)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.ChangePasswordRequest
	if !decodeJSON(w, r, &change) {
		return
	}

	email, err := subject(r, change.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	change.Email = email

	if err = h.backend.ChangePassword(change); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgPasswordChanged)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var update models.UpdatePreferencesRequest
	if !decodeJSON(w, r, &update) {
		return
	}

	email, err := subject(r, update.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	update.Email = email

	if err = h.backend.UpdatePreferences(update); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgPreferencesUpdated)
}

func (h *Handler) backupCodeStats(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.backend.BackupCodeStats(email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}
