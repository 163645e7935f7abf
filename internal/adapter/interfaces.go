// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the ExoExplorer REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] wrapping
// one of the sentinels in errors.go, so callers can use [errors.Is] for
// status matching (e.g. [ErrConflict] for 409) and [errors.As] to read the
// message supplied by the API.
package adapter

import (
	"context"

	"github.com/MKhiriev/exo-explorer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ExoExplorer API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token stops the header from being sent.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none is set.
	Token() string

	AuthAdapter
	ExoplanetAdapter
	UserAdapter
	AdminAdapter
}

// AuthAdapter covers the /auth endpoints.
type AuthAdapter interface {
	// Signup registers a new account. The API answers with a message and
	// sends an OTP to the address.
	Signup(ctx context.Context, credentials models.Credentials) (string, error)

	// Login checks the password and triggers an OTP for the second factor.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// VerifyOtp exchanges an OTP for a bearer token and the role flag.
	VerifyOtp(ctx context.Context, req models.OtpVerificationRequest) (models.AuthResponse, error)

	// VerifyBackupCode exchanges a single-use backup code for a bearer token.
	VerifyBackupCode(ctx context.Context, req models.BackupCodeVerificationRequest) (models.AuthResponse, error)

	// GenerateBackupCodes issues fresh backup codes, replacing unused ones.
	GenerateBackupCodes(ctx context.Context, req models.GenerateBackupCodesRequest) ([]string, error)
}

// ExoplanetAdapter covers the /exoplanets endpoints.
type ExoplanetAdapter interface {
	SearchExoplanets(ctx context.Context, filter models.SearchFilter) (models.Page[models.ExoplanetSummary], error)
	ListExoplanets(ctx context.Context) ([]models.Exoplanet, error)
	ListHabitableExoplanets(ctx context.Context) ([]models.ExoplanetDetails, error)
	GetExoplanet(ctx context.Context, id int64) (models.Exoplanet, error)
	GetExoplanetDetails(ctx context.Context, id int64) (models.ExoplanetDetails, error)
	CreateExoplanet(ctx context.Context, exoplanet models.Exoplanet) (models.Exoplanet, error)
	UpdateExoplanet(ctx context.Context, id int64, exoplanet models.Exoplanet) (models.Exoplanet, error)
	DeleteExoplanet(ctx context.Context, id int64) error

	// RefreshExoplanets asks the API to re-import the catalog from its
	// upstream source.
	RefreshExoplanets(ctx context.Context) (string, error)
}

// UserAdapter covers the /user endpoints. Every call is keyed by email.
type UserAdapter interface {
	GetFavorites(ctx context.Context, email string) ([]models.Exoplanet, error)
	ToggleFavorite(ctx context.Context, req models.ToggleFavoriteRequest) error
	GetProfile(ctx context.Context, email string) (models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	UpdatePreferences(ctx context.Context, req models.UpdatePreferencesRequest) error
	GetBackupCodeStats(ctx context.Context, email string) (models.BackupCodeStats, error)
}

// AdminAdapter covers the data loader and the test reset endpoints.
type AdminAdapter interface {
	InsertSampleExoplanets(ctx context.Context) (string, error)
	InsertHabitableExoplanets(ctx context.Context) (string, error)
	ClearExoplanets(ctx context.Context) (string, error)

	ResetUser(ctx context.Context, email string) error
	ResetDB(ctx context.Context) error
	ResetAll(ctx context.Context) error
}
