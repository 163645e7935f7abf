package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/internal/tui"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// UI is the part of the terminal UI the app drives.
type UI interface {
	Run(ctx context.Context, startPath string) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	closer   func() error
	logger   *logger.Logger
}

// NewApp wires the client from cfg: local storage, the HTTP adapter, the
// translation bundle, the form validator, the services and the terminal UI.
// The returned app owns the storage connection.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(cfg, storages.LocalStorage, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	app.closer = storages.Close
	return app, nil
}

func newApp(cfg *config.ClientConfig, localStorage store.LocalStorage, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapterFactory(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	validator, err := validators.NewFormValidator(bundle)
	if err != nil {
		return nil, fmt.Errorf("create form validator: %w", err)
	}

	services := service.NewClientServices(localStorage, serverAdapter, bundle, validator,
		service.Defaults{Theme: models.Theme(cfg.App.Theme), Language: cfg.App.Language}, log)

	ui := tui.New(services, tui.Options{
		NotFoundRedirect: cfg.App.NotFoundRedirect,
		BuildInfo:        buildInfo,
	}, log)

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the previous session and preferences, then hands the
// terminal to the UI until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	// A broken stored session is dropped by Restore; what is left here is a
	// storage failure, which only costs the remembered session.
	if err := a.services.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("previous session not restored")
	}

	err := a.ui.Run(ctx, router.PathHome)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}
	return err
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing local storage")
	}
}
