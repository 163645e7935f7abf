package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/exo-explorer/models"
)

// InsertSampleExoplanets implements [AdminAdapter] via
// POST /admin/data-loader/insert-500-exoplanets.
func (h *httpServerAdapter) InsertSampleExoplanets(ctx context.Context) (string, error) {
	return h.dataLoader(ctx, http.MethodPost, "/admin/data-loader/insert-500-exoplanets", "InsertSampleExoplanets")
}

// InsertHabitableExoplanets implements [AdminAdapter] via
// POST /admin/data-loader/insert-habitable-exoplanets.
func (h *httpServerAdapter) InsertHabitableExoplanets(ctx context.Context) (string, error) {
	return h.dataLoader(ctx, http.MethodPost, "/admin/data-loader/insert-habitable-exoplanets", "InsertHabitableExoplanets")
}

// ClearExoplanets implements [AdminAdapter] via
// DELETE /admin/data-loader/clear-exoplanets.
func (h *httpServerAdapter) ClearExoplanets(ctx context.Context) (string, error) {
	return h.dataLoader(ctx, http.MethodDelete, "/admin/data-loader/clear-exoplanets", "ClearExoplanets")
}

func (h *httpServerAdapter) dataLoader(ctx context.Context, method, path, op string) (string, error) {
	var result models.MessageResponse
	req := h.newRequest(ctx).SetResult(&result)

	if _, err := h.execute(req, method, path, op); err != nil {
		return "", err
	}
	return result.Message, nil
}

// ResetUser implements [AdminAdapter] via DELETE /test/reset-user?email=.
func (h *httpServerAdapter) ResetUser(ctx context.Context, email string) error {
	req := h.newRequest(ctx).SetQueryParam("email", email)

	_, err := h.execute(req, http.MethodDelete, "/test/reset-user", "ResetUser")
	return err
}

// ResetDB implements [AdminAdapter] via DELETE /test/reset-db.
func (h *httpServerAdapter) ResetDB(ctx context.Context) error {
	_, err := h.execute(h.newRequest(ctx), http.MethodDelete, "/test/reset-db", "ResetDB")
	return err
}

// ResetAll implements [AdminAdapter] via DELETE /test/reset-all.
func (h *httpServerAdapter) ResetAll(ctx context.Context) error {
	_, err := h.execute(h.newRequest(ctx), http.MethodDelete, "/test/reset-all", "ResetAll")
	return err
}
