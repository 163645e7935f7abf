// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Exoplanet is the catalog entity as served by the backend.
//
// Physical and orbital measurements are optional because the upstream
// archive does not know every value for every planet; a nil pointer means
// "unknown" and must be rendered as such. The client never computes or
// persists these values.
type Exoplanet struct {
	// ID is the backend-assigned numeric identifier.
	ID int64 `json:"id"`

	// Name is the display name (e.g. "Kepler-22 b").
	Name string `json:"name"`

	// ImageURL is an optional image reference.
	ImageURL string `json:"imageExo,omitempty"`

	// Distance from Earth in light-years.
	Distance *float64 `json:"distance,omitempty"`

	// Temperature is the equilibrium temperature in kelvin.
	Temperature *float64 `json:"temperature,omitempty"`

	// YearDiscovered is the discovery year.
	YearDiscovered *int `json:"yearDiscovered,omitempty"`

	// Mass in Earth masses. The entity endpoints spell the field "masse".
	Mass *float64 `json:"masse,omitempty"`

	// Radius in Earth radii.
	Radius *float64 `json:"radius,omitempty"`

	// Temp is a legacy integer temperature column kept by the backend.
	Temp *int `json:"temp,omitempty"`

	OrbitalPeriodDays *float64 `json:"orbitalPeriodDays,omitempty"`
	OrbitalPeriodYear *float64 `json:"orbitalPeriodYear,omitempty"`
	SemiMajorAxis     *float64 `json:"semiMajorAxis,omitempty"`
	Eccentricity      *float64 `json:"eccentricity,omitempty"`
}

// ExoplanetSummary is the lightweight card projection returned by the paged
// search endpoint.
type ExoplanetSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageExo,omitempty"`
}

// ExoplanetDetails is the decorated detail projection. On top of the raw
// measurements the backend adds habitability, Earth comparisons and a travel
// time estimate.
type ExoplanetDetails struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	ImageURL             string   `json:"imageExo,omitempty"`
	Distance             *float64 `json:"distance,omitempty"`
	Temperature          *float64 `json:"temperature,omitempty"`
	YearDiscovered       *int     `json:"yearDiscovered,omitempty"`
	Radius               *float64 `json:"radius,omitempty"`
	Mass                 *float64 `json:"mass,omitempty"`
	SemiMajorAxis        *float64 `json:"semiMajorAxis,omitempty"`
	Eccentricity         *float64 `json:"eccentricity,omitempty"`
	OrbitalPeriodYear    *float64 `json:"orbitalPeriodYear,omitempty"`
	OrbitalPeriodDays    *float64 `json:"orbitalPeriodDays,omitempty"`
	PotentiallyHabitable bool     `json:"potentiallyHabitable"`
	EarthSizeComparison  string   `json:"earthSizeComparison,omitempty"`
	EarthMassComparison  string   `json:"earthMassComparison,omitempty"`
	TravelTimeYears      *float64 `json:"travelTimeYears,omitempty"`
}

// Summary projects the entity onto its card representation.
func (e Exoplanet) Summary() ExoplanetSummary {
	return ExoplanetSummary{ID: e.ID, Name: e.Name, ImageURL: e.ImageURL}
}

// Page is the paging envelope used by the backend (Spring Data layout).
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
