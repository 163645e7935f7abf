package main

import (
	"os"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/handler"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/server"
	"github.com/MKhiriev/exo-explorer/internal/stubapi"
	"github.com/MKhiriev/exo-explorer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()

	log := logger.NewLogger("exo-explorer-stub-api")
	cfg, err := config.GetStubAPIConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("issuer", cfg.TokenIssuer).
		Dur("token_duration", cfg.TokenDuration).
		Strs("admin_emails", cfg.AdminEmails).
		Msg("received configs")

	log.Info().Stringer("build", buildInfo).Msg("starting stub api")

	backend := stubapi.NewBackend(cfg, log)

	handlers, err := handler.NewHandlers(backend, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
