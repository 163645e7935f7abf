package config

import (
	"fmt"
	"time"
)

// ClientApp holds client UI settings derived from the shared structured
// config.
type ClientApp struct {
	// Language is the initial UI language.
	Language string
	// Theme is the initial UI theme.
	Theme string
	// LogFile is the client log file path; empty means "next to the binary".
	LogFile string
	// NotFoundRedirect is the not-found view countdown.
	NotFoundRedirect time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Driver is the database/sql driver name ("sqlite3" or "pgx").
	Driver string
	// DSN is the SQLite file path or PostgreSQL connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains UI settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Language:         cfg.App.Language,
			Theme:            cfg.App.Theme,
			LogFile:          cfg.App.LogFile,
			NotFoundRedirect: cfg.App.NotFoundRedirect,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
	}
}

// StubAPIConfig is the configuration view of the contract stub API.
type StubAPIConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	AdminEmails    []string
}

// GetStubAPIConfig builds and validates the stub API view of the merged
// structured configuration.
func GetStubAPIConfig(args []string) (*StubAPIConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubAPIConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    cfg.Server.TokenIssuer,
		TokenDuration:  cfg.Server.TokenDuration,
		AdminEmails:    cfg.Server.AdminEmails,
	}

	return stubCfg, stubCfg.validate()
}
