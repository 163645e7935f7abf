// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

var supportedDrivers = map[string]bool{
	"sqlite3": true,
	"pgx":     true,
}

// validate checks that the client view of the configuration can be used to
// start the client. Each group reports its own sentinel so callers can tell
// which part is broken.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || !supportedDrivers[cfg.Storage.DB.Driver] {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Language != "en" && cfg.App.Language != "fr" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.Theme != "light" && cfg.App.Theme != "dark" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.NotFoundRedirect <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StubAPIConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
