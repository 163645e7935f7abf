package handler

import (
	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/handler/http"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(backend *stubapi.Backend, cfg *config.StubAPIConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(backend, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
