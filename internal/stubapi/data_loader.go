package stubapi

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
)

// SampleSize is the number of synthetic exoplanets InsertSampleExoplanets adds.
const SampleSize = 500

var habitableNames = []string{
	"Kepler-186f", "Kepler-442b", "Kepler-62f", "Kepler-1649c",
	"TRAPPIST-1e", "TRAPPIST-1f", "Proxima Centauri b", "TOI-700d",
	"Teegarden's Star b", "K2-18b", "WASP-12b", "Wolf 1061c",
}

// InsertSampleExoplanets adds SampleSize randomly generated exoplanets named
// ExoTest-1 to ExoTest-500.
func (b *Backend) InsertSampleExoplanets() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := 1; i <= SampleSize; i++ {
		b.insertLocked(models.Exoplanet{
			Name:              fmt.Sprintf("ExoTest-%d", i),
			ImageURL:          fmt.Sprintf("https://picsum.photos/seed/exotest%d/200", i),
			Distance:          ptr(b.between(0, 5000)),
			Temperature:       ptr(b.between(50, 500)),
			YearDiscovered:    ptr(1995 + b.rnd.IntN(28)),
			Radius:            ptr(b.between(0.5, 10.5)),
			Mass:              ptr(b.between(0.1, 20.1)),
			SemiMajorAxis:     ptr(b.between(0.05, 50.05)),
			Eccentricity:      ptr(b.between(0, 0.5)),
			OrbitalPeriodDays: ptr(b.between(1, 1001)),
		})
	}

	b.logger.Info().Str("func", "Backend.InsertSampleExoplanets").Int("count", SampleSize).Msg("sample exoplanets inserted")

	return app.MsgSampleExoplanetsLoaded
}

// InsertHabitableExoplanets adds a fixed list of exoplanets with
// temperatures inside the habitable range.
func (b *Backend) InsertHabitableExoplanets() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, name := range habitableNames {
		seed := strings.NewReplacer("'", "", " ", "").Replace(name)
		b.insertLocked(models.Exoplanet{
			Name:              name,
			ImageURL:          "https://picsum.photos/seed/" + seed + "/200",
			Distance:          ptr(b.between(1, 201)),
			Temperature:       ptr(b.between(habitableMinTemp, habitableMaxTemp)),
			YearDiscovered:    ptr(2000 + b.rnd.IntN(23)),
			Radius:            ptr(b.between(0.5, 2.5)),
			Mass:              ptr(b.between(0.5, 3.5)),
			SemiMajorAxis:     ptr(b.between(0.5, 2.5)),
			Eccentricity:      ptr(b.between(0, 0.2)),
			OrbitalPeriodDays: ptr(b.between(100, 500)),
		})
	}

	return fmt.Sprintf(app.MsgHabitableLoaded, len(habitableNames))
}

// ClearExoplanets deletes the whole catalog.
func (b *Backend) ClearExoplanets() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.exoplanets)
	b.logger.Info().Str("func", "Backend.ClearExoplanets").Msg("all exoplanets deleted")

	return app.MsgExoplanetsCleared
}

// ResetUser deletes the account of email if it exists.
func (b *Backend) ResetUser(email string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	email = normalizeEmail(email)
	delete(b.users, email)
	delete(b.issuedOtps, email)
}

// ResetDB replaces the catalog with the single Kepler-Test exoplanet.
func (b *Backend) ResetDB() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.exoplanets)
	b.insertLocked(models.Exoplanet{
		Name:              "Kepler-Test",
		ImageURL:          "https://example.com/kepler.png",
		Distance:          ptr(42.0),
		Temperature:       ptr(273.0),
		Radius:            ptr(1.0),
		Mass:              ptr(1.0),
		OrbitalPeriodDays: ptr(365.0),
		OrbitalPeriodYear: ptr(1.0),
	})
}

// ResetAll deletes every exoplanet and every user.
func (b *Backend) ResetAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.exoplanets)
	clear(b.users)
	clear(b.issuedOtps)
}

// between draws a uniform value in [lo, hi). Callers hold mu.
func (b *Backend) between(lo, hi float64) float64 {
	return lo + b.rnd.Float64()*(hi-lo)
}

// referenceCatalog is the data set the backend starts with and reloads on
// refresh.
func referenceCatalog() []models.Exoplanet {
	type row struct {
		name        string
		distance    float64
		temperature float64
		year        int
		radius      float64
		mass        float64
		periodDays  float64
	}
	rows := []row{
		{"Proxima Centauri b", 4.24, 234, 2016, 1.07, 1.07, 11.2},
		{"TRAPPIST-1e", 40.7, 251, 2017, 0.92, 0.69, 6.1},
		{"Kepler-22b", 635, 262, 2011, 2.4, 9.1, 289.9},
		{"Kepler-452b", 1402, 265, 2015, 1.63, 5.0, 384.8},
		{"Kepler-186f", 582, 188, 2014, 1.17, 1.71, 129.9},
		{"LHS 1140 b", 48.8, 226, 2017, 1.73, 5.6, 24.7},
		{"K2-18b", 124, 265, 2015, 2.61, 8.63, 32.9},
		{"TOI-700 d", 101.4, 269, 2020, 1.19, 1.72, 37.4},
		{"Gliese 667 Cc", 23.6, 277, 2011, 1.54, 3.8, 28.1},
		{"51 Pegasi b", 50.6, 1284, 1995, 19.6, 150, 4.2},
		{"HD 209458 b", 157, 1449, 1999, 15.3, 219, 3.5},
		{"WASP-12b", 1410, 2580, 2008, 21.3, 445, 1.1},
		{"Kepler-16b", 245, 188, 2011, 8.45, 105, 228.8},
		{"55 Cancri e", 41, 2573, 2004, 1.88, 8.0, 0.74},
	}

	catalog := make([]models.Exoplanet, len(rows))
	for i, r := range rows {
		seed := strings.NewReplacer(" ", "", "'", "").Replace(r.name)
		catalog[i] = models.Exoplanet{
			Name:              r.name,
			ImageURL:          "https://picsum.photos/seed/" + seed + "/200",
			Distance:          ptr(r.distance),
			Temperature:       ptr(r.temperature),
			YearDiscovered:    ptr(r.year),
			Radius:            ptr(r.radius),
			Mass:              ptr(r.mass),
			OrbitalPeriodDays: ptr(r.periodDays),
			OrbitalPeriodYear: ptr(r.periodDays / 365),
		}
	}
	return catalog
}
