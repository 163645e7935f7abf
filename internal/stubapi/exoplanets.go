package stubapi

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/exo-explorer/models"
)

const (
	habitableMinTemp = 180
	habitableMaxTemp = 310

	// MaxPageSize caps the size parameter of the summary search.
	MaxPageSize = 100
)

// SummaryQuery is a parsed GET /exoplanets/summary request. Nil bounds are
// not applied.
type SummaryQuery struct {
	Name string

	MinTemp, MaxTemp         *float64
	MinDistance, MaxDistance *float64
	MinYear, MaxYear         *int

	Page int
	Size int
}

// SearchSummaries filters the catalog and returns one page of summaries,
// newest id first. A page past the end is empty.
func (b *Backend) SearchSummaries(q SummaryQuery) models.Page[models.ExoplanetSummary] {
	size := q.Size
	if size <= 0 {
		size = models.DefaultPageSize
	}
	size = min(size, MaxPageSize)
	page := max(q.Page, 0)

	b.mu.RLock()
	matches := make([]models.Exoplanet, 0, len(b.exoplanets))
	for _, e := range b.exoplanets {
		if q.matches(e) {
			matches = append(matches, e)
		}
	}
	b.mu.RUnlock()

	slices.SortFunc(matches, func(a, b models.Exoplanet) int {
		return cmp.Compare(b.ID, a.ID)
	})

	total := len(matches)
	result := models.Page[models.ExoplanetSummary]{
		Content:       []models.ExoplanetSummary{},
		TotalPages:    (total + size - 1) / size,
		TotalElements: int64(total),
		Number:        page,
		Size:          size,
	}

	start := page * size
	if start >= total {
		return result
	}
	for _, e := range matches[start:min(start+size, total)] {
		result.Content = append(result.Content, e.Summary())
	}
	return result
}

func (q SummaryQuery) matches(e models.Exoplanet) bool {
	if q.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(q.Name)) {
		return false
	}
	return inRange(e.Temperature, q.MinTemp, q.MaxTemp) &&
		inRange(e.Distance, q.MinDistance, q.MaxDistance) &&
		inRange(e.YearDiscovered, q.MinYear, q.MaxYear)
}

// inRange treats a missing value as outside any bound, like a SQL comparison
// against NULL.
func inRange[T cmp.Ordered](v, lo, hi *T) bool {
	if lo == nil && hi == nil {
		return true
	}
	if v == nil {
		return false
	}
	if lo != nil && *v < *lo {
		return false
	}
	if hi != nil && *v > *hi {
		return false
	}
	return true
}

// Exoplanets lists the whole catalog by id.
func (b *Backend) Exoplanets() []models.Exoplanet {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.sortedLocked()
}

// HabitableExoplanets lists the exoplanets whose temperature falls in the
// habitable range, with their derived details.
func (b *Backend) HabitableExoplanets() []models.ExoplanetDetails {
	b.mu.RLock()
	defer b.mu.RUnlock()

	habitable := []models.ExoplanetDetails{}
	for _, e := range b.sortedLocked() {
		if potentiallyHabitable(e) {
			habitable = append(habitable, b.decorate(e))
		}
	}
	return habitable
}

func (b *Backend) Exoplanet(id int64) (models.Exoplanet, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.exoplanets[id]
	if !ok {
		return models.Exoplanet{}, fmt.Errorf("%w: %d", ErrExoplanetNotFound, id)
	}
	return e, nil
}

// ExoplanetDetails returns the exoplanet with its habitability, Earth
// comparisons and travel time.
func (b *Backend) ExoplanetDetails(id int64) (models.ExoplanetDetails, error) {
	e, err := b.Exoplanet(id)
	if err != nil {
		return models.ExoplanetDetails{}, err
	}
	return b.decorate(e), nil
}

func (b *Backend) CreateExoplanet(e models.Exoplanet) (models.Exoplanet, error) {
	if err := b.validateExoplanet(e); err != nil {
		return models.Exoplanet{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	created := b.insertLocked(e)
	b.logger.Info().Str("func", "Backend.CreateExoplanet").Int64("id", created.ID).Str("name", created.Name).Msg("exoplanet created")

	return created, nil
}

// UpdateExoplanet replaces every field of exoplanet id.
func (b *Backend) UpdateExoplanet(id int64, e models.Exoplanet) (models.Exoplanet, error) {
	if err := b.validateExoplanet(e); err != nil {
		return models.Exoplanet{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.exoplanets[id]; !ok {
		return models.Exoplanet{}, fmt.Errorf("%w: %d", ErrExoplanetNotFound, id)
	}
	e.ID = id
	b.exoplanets[id] = e

	return e, nil
}

func (b *Backend) DeleteExoplanet(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.exoplanets[id]; !ok {
		return fmt.Errorf("%w: %d", ErrExoplanetNotFound, id)
	}
	delete(b.exoplanets, id)

	return nil
}

// RefreshExoplanets reloads the reference catalog: known names are updated
// in place, missing ones are inserted.
func (b *Backend) RefreshExoplanets() (updated, created int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byName := make(map[string]int64, len(b.exoplanets))
	for id, e := range b.exoplanets {
		byName[strings.ToLower(e.Name)] = id
	}

	for _, e := range referenceCatalog() {
		if id, ok := byName[strings.ToLower(e.Name)]; ok {
			e.ID = id
			b.exoplanets[id] = e
			updated++
			continue
		}
		b.insertLocked(e)
		created++
	}

	b.logger.Info().Str("func", "Backend.RefreshExoplanets").Int("updated", updated).Int("created", created).Msg("exoplanet data refresh completed")

	return updated, created
}

func (b *Backend) validateExoplanet(e models.Exoplanet) error {
	if err := b.validate.Var(strings.TrimSpace(e.Name), "required,max=255"); err != nil {
		return fmt.Errorf("%w: name: %w", ErrValidation, err)
	}
	return nil
}

// sortedLocked returns the catalog ordered by id. Callers hold mu.
func (b *Backend) sortedLocked() []models.Exoplanet {
	all := make([]models.Exoplanet, 0, len(b.exoplanets))
	for _, e := range b.exoplanets {
		all = append(all, e)
	}
	slices.SortFunc(all, func(a, b models.Exoplanet) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return all
}

func (b *Backend) decorate(e models.Exoplanet) models.ExoplanetDetails {
	d := models.ExoplanetDetails{
		ID:                   e.ID,
		Name:                 e.Name,
		ImageURL:             e.ImageURL,
		Distance:             e.Distance,
		Temperature:          e.Temperature,
		YearDiscovered:       e.YearDiscovered,
		Radius:               e.Radius,
		Mass:                 e.Mass,
		SemiMajorAxis:        e.SemiMajorAxis,
		Eccentricity:         e.Eccentricity,
		OrbitalPeriodYear:    e.OrbitalPeriodYear,
		OrbitalPeriodDays:    e.OrbitalPeriodDays,
		PotentiallyHabitable: potentiallyHabitable(e),
		EarthSizeComparison:  compareToEarth(e.Radius, "Taille", "plus grande", "plus petite"),
		EarthMassComparison:  compareToEarth(e.Mass, "Masse", "plus massive", "moins massive"),
	}
	if e.Distance != nil && b.speedFraction > 0 {
		d.TravelTimeYears = ptr(*e.Distance / b.speedFraction)
	}
	return d
}

func potentiallyHabitable(e models.Exoplanet) bool {
	return e.Temperature != nil && *e.Temperature >= habitableMinTemp && *e.Temperature <= habitableMaxTemp
}

// compareToEarth phrases a value given in Earth units: "Taille similaire à la
// Terre", "2.4 fois plus grande que la Terre" and so on.
func compareToEarth(v *float64, noun, larger, smaller string) string {
	if v == nil || *v <= 0 {
		return noun + " inconnue"
	}

	const earth = 1.0
	switch {
	case math.Abs(*v-earth) < 0.1:
		return noun + " similaire à la Terre"
	case *v > earth:
		return fmt.Sprintf("%.1f fois %s que la Terre", *v/earth, larger)
	default:
		return fmt.Sprintf("%.1f fois %s que la Terre", earth / *v, smaller)
	}
}
