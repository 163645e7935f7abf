package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/exo-explorer/models"
)

// GetFavorites implements [UserAdapter] via GET /user/favorites?email=.
func (h *httpServerAdapter) GetFavorites(ctx context.Context, email string) ([]models.Exoplanet, error) {
	var favorites []models.Exoplanet
	req := h.newRequest(ctx).SetQueryParam("email", email).SetResult(&favorites)

	if _, err := h.execute(req, http.MethodGet, "/user/favorites", "GetFavorites"); err != nil {
		return nil, err
	}
	return favorites, nil
}

// ToggleFavorite implements [UserAdapter] via POST /user/toggle-favorite.
func (h *httpServerAdapter) ToggleFavorite(ctx context.Context, toggle models.ToggleFavoriteRequest) error {
	req := h.newRequest(ctx).SetBody(toggle)

	_, err := h.execute(req, http.MethodPost, "/user/toggle-favorite", "ToggleFavorite")
	return err
}

// GetProfile implements [UserAdapter] via GET /user/profile?email=.
func (h *httpServerAdapter) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	req := h.newRequest(ctx).SetQueryParam("email", email).SetResult(&profile)

	if _, err := h.execute(req, http.MethodGet, "/user/profile", "GetProfile"); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile implements [UserAdapter] via PUT /user/update-profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) error {
	req := h.newRequest(ctx).SetBody(update)

	_, err := h.execute(req, http.MethodPut, "/user/update-profile", "UpdateProfile")
	return err
}

// ChangePassword implements [UserAdapter] via POST /user/change-password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.ChangePasswordRequest) error {
	req := h.newRequest(ctx).SetBody(change)

	_, err := h.execute(req, http.MethodPost, "/user/change-password", "ChangePassword")
	return err
}

// UpdatePreferences implements [UserAdapter] via PUT /user/preferences.
func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, update models.UpdatePreferencesRequest) error {
	req := h.newRequest(ctx).SetBody(update)

	_, err := h.execute(req, http.MethodPut, "/user/preferences", "UpdatePreferences")
	return err
}

// GetBackupCodeStats implements [UserAdapter] via GET /user/backup-codes?email=.
func (h *httpServerAdapter) GetBackupCodeStats(ctx context.Context, email string) (models.BackupCodeStats, error) {
	var stats models.BackupCodeStats
	req := h.newRequest(ctx).SetQueryParam("email", email).SetResult(&stats)

	if _, err := h.execute(req, http.MethodGet, "/user/backup-codes", "GetBackupCodeStats"); err != nil {
		return models.BackupCodeStats{}, err
	}
	return stats, nil
}
