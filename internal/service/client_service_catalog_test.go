package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
)

func ptr[T any](v T) *T { return &v }

func TestBand(t *testing.T) {
	assert.Equal(t, BandUnknown, Band(nil))
	assert.Equal(t, BandBelow, Band(ptr(179.9)))
	assert.Equal(t, BandWithin, Band(ptr(180.0)))
	assert.Equal(t, BandWithin, Band(ptr(310.0)))
	assert.Equal(t, BandAbove, Band(ptr(310.5)))
}

func TestClientCatalogService_Latest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().SearchExoplanets(ctx, models.SearchFilter{Page: 0, Size: models.DefaultPageSize}).
		Return(models.Page[models.ExoplanetSummary]{Content: summaries("A", "B", "C", "D")}, nil)

	got, err := env.services.CatalogService.Latest(ctx, LatestDiscoveriesCount)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Name)
}

func TestClientCatalogService_Details_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().GetExoplanetDetails(ctx, int64(99)).
		Return(models.ExoplanetDetails{}, responseErr(http.StatusNotFound, app.MsgExoplanetNotFound))

	_, err := env.services.CatalogService.Details(ctx, 99)
	assert.ErrorIs(t, err, ErrExoplanetNotFound)
}

func TestClientCatalogService_Describe(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.CatalogService

	full := models.ExoplanetDetails{
		Name:              "Kepler-Test",
		Distance:          ptr(42.0),
		Radius:            ptr(1.0),
		Mass:              ptr(1.5),
		Temperature:       ptr(273.0),
		OrbitalPeriodDays: ptr(365.0),
		OrbitalPeriodYear: ptr(1.0),
	}

	assert.Equal(t,
		"Exoplanet Kepler-Test is located approximately 42 light-years. It has a radius of 1 R⊕, "+
			"an estimated mass of 1.5 M⊕, and an average temperature of 273 K. Its orbit lasts about 365 days (or 1.00 years).",
		svc.Describe(full, models.LanguageEnglish))

	assert.Equal(t,
		"L'exoplanète Kepler-Test est située à environ 42 années-lumière. Elle possède un rayon de 1 R⊕, "+
			"une masse estimée à 1.5 M⊕, et une température moyenne de 273 K. Son orbite dure environ 365 jours (soit 1.00 ans).",
		svc.Describe(full, models.LanguageFrench))

	sparse := models.ExoplanetDetails{Name: "X"}
	assert.Equal(t,
		"Exoplanet X is located approximately unknown. It has a radius of unknown, an estimated mass of unknown, and an average temperature of unknown.",
		svc.Describe(sparse, models.LanguageEnglish))
	assert.Contains(t, svc.Describe(sparse, models.LanguageFrench), "inconnue")
}
