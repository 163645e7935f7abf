package adapter

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/exo-explorer/models"
)

// SearchExoplanets implements [ExoplanetAdapter] via GET /exoplanets/summary.
// Blank filter bounds are not sent.
func (h *httpServerAdapter) SearchExoplanets(ctx context.Context, filter models.SearchFilter) (models.Page[models.ExoplanetSummary], error) {
	var page models.Page[models.ExoplanetSummary]
	req := h.newRequest(ctx).SetQueryParamsFromValues(filter.QueryParams()).SetResult(&page)

	if _, err := h.execute(req, http.MethodGet, "/exoplanets/summary", "SearchExoplanets"); err != nil {
		return models.Page[models.ExoplanetSummary]{}, err
	}
	return page, nil
}

// ListExoplanets implements [ExoplanetAdapter] via GET /exoplanets.
func (h *httpServerAdapter) ListExoplanets(ctx context.Context) ([]models.Exoplanet, error) {
	var exoplanets []models.Exoplanet
	req := h.newRequest(ctx).SetResult(&exoplanets)

	if _, err := h.execute(req, http.MethodGet, "/exoplanets", "ListExoplanets"); err != nil {
		return nil, err
	}
	return exoplanets, nil
}

// ListHabitableExoplanets implements [ExoplanetAdapter] via
// GET /exoplanets/habitable.
func (h *httpServerAdapter) ListHabitableExoplanets(ctx context.Context) ([]models.ExoplanetDetails, error) {
	var exoplanets []models.ExoplanetDetails
	req := h.newRequest(ctx).SetResult(&exoplanets)

	if _, err := h.execute(req, http.MethodGet, "/exoplanets/habitable", "ListHabitableExoplanets"); err != nil {
		return nil, err
	}
	return exoplanets, nil
}

// GetExoplanet implements [ExoplanetAdapter] via GET /exoplanets/{id}.
func (h *httpServerAdapter) GetExoplanet(ctx context.Context, id int64) (models.Exoplanet, error) {
	var exoplanet models.Exoplanet
	req := h.newRequest(ctx).SetPathParam("id", formatID(id)).SetResult(&exoplanet)

	if _, err := h.execute(req, http.MethodGet, "/exoplanets/{id}", "GetExoplanet"); err != nil {
		return models.Exoplanet{}, err
	}
	return exoplanet, nil
}

// GetExoplanetDetails implements [ExoplanetAdapter] via
// GET /exoplanets/{id}/details.
func (h *httpServerAdapter) GetExoplanetDetails(ctx context.Context, id int64) (models.ExoplanetDetails, error) {
	var details models.ExoplanetDetails
	req := h.newRequest(ctx).SetPathParam("id", formatID(id)).SetResult(&details)

	if _, err := h.execute(req, http.MethodGet, "/exoplanets/{id}/details", "GetExoplanetDetails"); err != nil {
		return models.ExoplanetDetails{}, err
	}
	return details, nil
}

// CreateExoplanet implements [ExoplanetAdapter] via POST /exoplanets.
func (h *httpServerAdapter) CreateExoplanet(ctx context.Context, exoplanet models.Exoplanet) (models.Exoplanet, error) {
	var created models.Exoplanet
	req := h.newRequest(ctx).SetBody(exoplanet).SetResult(&created)

	if _, err := h.execute(req, http.MethodPost, "/exoplanets", "CreateExoplanet"); err != nil {
		return models.Exoplanet{}, err
	}
	return created, nil
}

// UpdateExoplanet implements [ExoplanetAdapter] via PUT /exoplanets/{id}.
func (h *httpServerAdapter) UpdateExoplanet(ctx context.Context, id int64, exoplanet models.Exoplanet) (models.Exoplanet, error) {
	var updated models.Exoplanet
	req := h.newRequest(ctx).SetPathParam("id", formatID(id)).SetBody(exoplanet).SetResult(&updated)

	if _, err := h.execute(req, http.MethodPut, "/exoplanets/{id}", "UpdateExoplanet"); err != nil {
		return models.Exoplanet{}, err
	}
	return updated, nil
}

// DeleteExoplanet implements [ExoplanetAdapter] via DELETE /exoplanets/{id}.
func (h *httpServerAdapter) DeleteExoplanet(ctx context.Context, id int64) error {
	req := h.newRequest(ctx).SetPathParam("id", formatID(id))

	_, err := h.execute(req, http.MethodDelete, "/exoplanets/{id}", "DeleteExoplanet")
	return err
}

// RefreshExoplanets implements [ExoplanetAdapter] via POST /exoplanets/refresh.
// The API answers with plain text.
func (h *httpServerAdapter) RefreshExoplanets(ctx context.Context) (string, error) {
	resp, err := h.execute(h.newRequest(ctx), http.MethodPost, "/exoplanets/refresh", "RefreshExoplanets")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
