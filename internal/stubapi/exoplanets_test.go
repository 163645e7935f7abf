package stubapi

import (
	"testing"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_SearchSummaries(t *testing.T) {
	b := newTestBackend(t)

	t.Run("defaults to ten newest first", func(t *testing.T) {
		page := b.SearchSummaries(SummaryQuery{})

		assert.Equal(t, models.DefaultPageSize, page.Size)
		assert.Equal(t, int64(len(referenceCatalog())), page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Content, 10)
		assert.Equal(t, int64(len(referenceCatalog())), page.Content[0].ID)
	})

	t.Run("temperature window with small pages", func(t *testing.T) {
		query := SummaryQuery{MinTemp: ptr(200.0), MaxTemp: ptr(310.0), Size: 6}

		first := b.SearchSummaries(query)
		assert.Equal(t, int64(8), first.TotalElements)
		assert.Equal(t, 2, first.TotalPages)
		require.Len(t, first.Content, 6)

		query.Page = 1
		second := b.SearchSummaries(query)
		assert.Equal(t, 1, second.Number)
		require.Len(t, second.Content, 2)
		assert.NotContains(t, first.Content, second.Content[0])
	})

	t.Run("name is case insensitive", func(t *testing.T) {
		page := b.SearchSummaries(SummaryQuery{Name: "trappist"})
		require.Len(t, page.Content, 1)
		assert.Equal(t, "TRAPPIST-1e", page.Content[0].Name)
	})

	t.Run("year and distance bounds", func(t *testing.T) {
		page := b.SearchSummaries(SummaryQuery{MinYear: ptr(2015), MaxYear: ptr(2017), MaxDistance: ptr(100.0)})
		names := make([]string, 0, len(page.Content))
		for _, s := range page.Content {
			names = append(names, s.Name)
		}
		assert.ElementsMatch(t, []string{"Proxima Centauri b", "TRAPPIST-1e", "LHS 1140 b"}, names)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page := b.SearchSummaries(SummaryQuery{Page: 9})
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
	})
}

func TestBackend_SearchSkipsMissingValues(t *testing.T) {
	b := newTestBackend(t)
	b.ClearExoplanets()
	_, err := b.CreateExoplanet(models.Exoplanet{Name: "Unknown-1"})
	require.NoError(t, err)

	assert.Len(t, b.SearchSummaries(SummaryQuery{}).Content, 1)
	assert.Empty(t, b.SearchSummaries(SummaryQuery{MinTemp: ptr(0.0)}).Content)
}

func TestBackend_ExoplanetDetails(t *testing.T) {
	b := newTestBackend(t)
	b.ResetDB()
	all := b.Exoplanets()
	require.Len(t, all, 1)

	details, err := b.ExoplanetDetails(all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Kepler-Test", details.Name)
	assert.True(t, details.PotentiallyHabitable)
	assert.Equal(t, "Taille similaire à la Terre", details.EarthSizeComparison)
	assert.Equal(t, "Masse similaire à la Terre", details.EarthMassComparison)
	require.NotNil(t, details.TravelTimeYears)
	assert.InDelta(t, 420.0, *details.TravelTimeYears, 1e-9)

	_, err = b.ExoplanetDetails(999)
	assert.ErrorIs(t, err, ErrExoplanetNotFound)
}

func TestCompareToEarth(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{name: "unknown", value: nil, want: "Taille inconnue"},
		{name: "similar", value: ptr(1.05), want: "Taille similaire à la Terre"},
		{name: "larger", value: ptr(2.4), want: "2.4 fois plus grande que la Terre"},
		{name: "smaller", value: ptr(0.5), want: "2.0 fois plus petite que la Terre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareToEarth(tt.value, "Taille", "plus grande", "plus petite"))
		})
	}
}

func TestBackend_HabitableExoplanets(t *testing.T) {
	b := newTestBackend(t)

	habitable := b.HabitableExoplanets()
	require.NotEmpty(t, habitable)
	for _, d := range habitable {
		assert.True(t, d.PotentiallyHabitable, d.Name)
		assert.NotEqual(t, "51 Pegasi b", d.Name)
	}
}

func TestBackend_ExoplanetCRUD(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.CreateExoplanet(models.Exoplanet{Name: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	created, err := b.CreateExoplanet(models.Exoplanet{Name: "Gliese 12 b", OrbitalPeriodDays: ptr(12.8)})
	require.NoError(t, err)
	require.NotNil(t, created.OrbitalPeriodYear)
	assert.InDelta(t, 12.8/365, *created.OrbitalPeriodYear, 1e-9)

	updated, err := b.UpdateExoplanet(created.ID, models.Exoplanet{ID: 777, Name: "Gliese 12 b", Temperature: ptr(315.0)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := b.Exoplanet(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 315.0, *got.Temperature)

	require.NoError(t, b.DeleteExoplanet(created.ID))
	assert.ErrorIs(t, b.DeleteExoplanet(created.ID), ErrExoplanetNotFound)
	_, err = b.UpdateExoplanet(created.ID, models.Exoplanet{Name: "x"})
	assert.ErrorIs(t, err, ErrExoplanetNotFound)
}

func TestBackend_RefreshExoplanets(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.DeleteExoplanet(1))

	updated, created := b.RefreshExoplanets()

	assert.Equal(t, len(referenceCatalog())-1, updated)
	assert.Equal(t, 1, created)
	assert.Len(t, b.Exoplanets(), len(referenceCatalog()))
}

func TestBackend_DataLoader(t *testing.T) {
	b := newTestBackend(t)

	assert.Equal(t, app.MsgExoplanetsCleared, b.ClearExoplanets())
	assert.Empty(t, b.Exoplanets())

	assert.Equal(t, app.MsgSampleExoplanetsLoaded, b.InsertSampleExoplanets())
	all := b.Exoplanets()
	require.Len(t, all, SampleSize)
	assert.Equal(t, "ExoTest-1", all[0].Name)
	for _, e := range all {
		assert.GreaterOrEqual(t, *e.Temperature, 50.0)
		assert.Less(t, *e.Temperature, 500.0)
		assert.NotNil(t, e.OrbitalPeriodYear)
	}

	assert.Equal(t, "12 exoplanètes habitables insérées avec succès.", b.InsertHabitableExoplanets())
	assert.Len(t, b.HabitableExoplanets(), len(habitableNames)+countHabitable(all))
}

func countHabitable(all []models.Exoplanet) int {
	n := 0
	for _, e := range all {
		if potentiallyHabitable(e) {
			n++
		}
	}
	return n
}

func TestBackend_Resets(t *testing.T) {
	b := newTestBackend(t)
	signedUp(t, b, "user@test.io", "secret1")
	signedUp(t, b, "other@test.io", "secret1")

	b.ResetUser("USER@test.io")
	_, err := b.Profile("user@test.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = b.Profile("other@test.io")
	assert.NoError(t, err)

	b.ResetDB()
	all := b.Exoplanets()
	require.Len(t, all, 1)
	assert.Equal(t, "Kepler-Test", all[0].Name)

	b.ResetAll()
	assert.Empty(t, b.Exoplanets())
	_, err = b.Profile("other@test.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
