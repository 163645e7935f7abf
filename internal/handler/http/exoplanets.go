package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/models"
)

func (h *Handler) searchSummaries(w http.ResponseWriter, r *http.Request) {
	query, err := parseSummaryQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, h.backend.SearchSummaries(query), http.StatusOK)
}

func (h *Handler) listExoplanets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.backend.Exoplanets(), http.StatusOK)
}

func (h *Handler) habitableExoplanets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.backend.HabitableExoplanets(), http.StatusOK)
}

func (h *Handler) getExoplanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	exoplanet, err := h.backend.Exoplanet(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, exoplanet, http.StatusOK)
}

func (h *Handler) getExoplanetDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	details, err := h.backend.ExoplanetDetails(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, details, http.StatusOK)
}

func (h *Handler) createExoplanet(w http.ResponseWriter, r *http.Request) {
	var exoplanet models.Exoplanet
	if !decodeJSON(w, r, &exoplanet) {
		return
	}

	created, err := h.backend.CreateExoplanet(exoplanet)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", created.ID).Str("name", created.Name).Msg("exoplanet created")
	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateExoplanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var exoplanet models.Exoplanet
	if !decodeJSON(w, r, &exoplanet) {
		return
	}

	updated, err := h.backend.UpdateExoplanet(id, exoplanet)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteExoplanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.backend.DeleteExoplanet(id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Msg("exoplanet deleted")
	writeMessage(w, r, app.MsgExoplanetDeleted)
}

// refreshExoplanets answers with plain text.
func (h *Handler) refreshExoplanets(w http.ResponseWriter, r *http.Request) {
	updated, created := h.backend.RefreshExoplanets()
	logger.FromRequest(r).Info().
		Int("updated", updated).
		Int("created", created).
		Msg("exoplanet catalog refreshed")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(app.MsgExoplanetsRefreshed))
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidParameter, raw)
	}
	return id, nil
}

// parseSummaryQuery reads the optional bounds of GET /exoplanets/summary.
// Blank parameters are left unset.
func parseSummaryQuery(values url.Values) (stubapi.SummaryQuery, error) {
	q := stubapi.SummaryQuery{Name: strings.TrimSpace(values.Get("name"))}

	floats := []struct {
		key string
		dst **float64
	}{
		{"minTemp", &q.MinTemp},
		{"maxTemp", &q.MaxTemp},
		{"minDistance", &q.MinDistance},
		{"maxDistance", &q.MaxDistance},
	}
	for _, f := range floats {
		raw := strings.TrimSpace(values.Get(f.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return stubapi.SummaryQuery{}, fmt.Errorf("%w: %s %q", ErrInvalidParameter, f.key, raw)
		}
		*f.dst = &v
	}

	ints := []struct {
		key string
		dst **int
	}{
		{"minYear", &q.MinYear},
		{"maxYear", &q.MaxYear},
	}
	for _, i := range ints {
		raw := strings.TrimSpace(values.Get(i.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return stubapi.SummaryQuery{}, fmt.Errorf("%w: %s %q", ErrInvalidParameter, i.key, raw)
		}
		*i.dst = &v
	}

	var err error
	if q.Page, err = intParam(values, "page"); err != nil {
		return stubapi.SummaryQuery{}, err
	}
	if q.Size, err = intParam(values, "size"); err != nil {
		return stubapi.SummaryQuery{}, err
	}

	return q, nil
}

func intParam(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParameter, key, raw)
	}
	return v, nil
}
