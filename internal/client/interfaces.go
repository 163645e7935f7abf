// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

// adapterFactory builds the transport. Tests swap it for a mock.
var adapterFactory = func(cfg config.ClientAdapter, log *logger.Logger) (adapter.ServerAdapter, error) {
	return adapter.NewHTTPServerAdapter(cfg, log)
}
