package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/models"
)

// Comfort band for liquid water, in kelvin.
const (
	HabitableMinTemp = 180.0
	HabitableMaxTemp = 310.0
)

// LatestDiscoveriesCount is how many cards the home view shows.
const LatestDiscoveriesCount = 3

// TemperatureBand places a temperature relative to the comfort band.
type TemperatureBand int

const (
	BandUnknown TemperatureBand = iota
	BandBelow
	BandWithin
	BandAbove
)

// Band classifies temp against [HabitableMinTemp, HabitableMaxTemp].
func Band(temp *float64) TemperatureBand {
	switch {
	case temp == nil:
		return BandUnknown
	case *temp < HabitableMinTemp:
		return BandBelow
	case *temp > HabitableMaxTemp:
		return BandAbove
	default:
		return BandWithin
	}
}

type clientCatalogService struct {
	exoplanets adapter.ExoplanetAdapter
	bundle     *i18n.Bundle
	logger     *logger.Logger
}

func NewClientCatalogService(exoplanets adapter.ExoplanetAdapter, bundle *i18n.Bundle, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{exoplanets: exoplanets, bundle: bundle, logger: logger}
}

// Latest returns the first n summaries of the unfiltered catalog.
func (s *clientCatalogService) Latest(ctx context.Context, n int) ([]models.ExoplanetSummary, error) {
	if n <= 0 {
		n = LatestDiscoveriesCount
	}

	page, err := s.exoplanets.SearchExoplanets(ctx, models.SearchFilter{Page: 0, Size: models.DefaultPageSize})
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Latest").Msg("error loading latest discoveries")
		return nil, mapAdapterError(err)
	}

	if len(page.Content) > n {
		return page.Content[:n], nil
	}
	return page.Content, nil
}

func (s *clientCatalogService) Details(ctx context.Context, id int64) (models.ExoplanetDetails, error) {
	details, err := s.exoplanets.GetExoplanetDetails(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Details").Int64("id", id).Msg("error loading exoplanet details")
		return models.ExoplanetDetails{}, mapAdapterError(err)
	}
	return details, nil
}

// Describe renders the prose overview of d in lang. Unknown measurements are
// spelled out; the orbit sentence is only added when the period is known.
func (s *clientCatalogService) Describe(d models.ExoplanetDetails, lang string) string {
	unknown := s.bundle.T(lang, i18n.DescUnknown)
	measure := func(v *float64, unit string) string {
		if v == nil {
			return unknown
		}
		return formatFloat(*v) + " " + unit
	}

	text := s.bundle.T(lang, i18n.DescBody,
		d.Name,
		measure(d.Distance, s.bundle.T(lang, i18n.DescLightYears)),
		measure(d.Radius, "R⊕"),
		measure(d.Mass, "M⊕"),
		measure(d.Temperature, "K"),
	)

	if d.OrbitalPeriodDays != nil && *d.OrbitalPeriodDays != 0 {
		days := formatFloat(*d.OrbitalPeriodDays) + " " + s.bundle.T(lang, i18n.DescDays)
		years := ""
		if d.OrbitalPeriodYear != nil && *d.OrbitalPeriodYear != 0 {
			years = s.bundle.T(lang, i18n.DescOrbitYears, fmt.Sprintf("%.2f", *d.OrbitalPeriodYear))
		}
		text += s.bundle.T(lang, i18n.DescOrbit, days, years)
	}

	return text
}

// formatFloat prints the shortest representation, so 1 stays "1" and 4.2
// stays "4.2".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
