package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// ClientServices bundles the holders and services the TUI pages are built
// from.
type ClientServices struct {
	Session  *SessionHolder
	Theme    *ThemeHolder
	Locale   *LocaleHolder
	Notifier *Notifier
	Search   *SearchCoordinator

	AuthService      ClientAuthService
	CatalogService   ClientCatalogService
	FavoritesService ClientFavoritesService
	ProfileService   ClientProfileService
	AdminService     ClientAdminService

	Bundle    *i18n.Bundle
	Validator validators.Validator
}

// Defaults are the preferences used until storage or a profile says
// otherwise.
type Defaults struct {
	Theme    models.Theme
	Language string
}

func NewClientServices(
	localStore store.LocalStorage,
	serverAdapter adapter.ServerAdapter,
	bundle *i18n.Bundle,
	validator validators.Validator,
	defaults Defaults,
	logger *logger.Logger,
) *ClientServices {
	session := NewSessionHolder(localStore, serverAdapter, logger)
	theme := NewThemeHolder(defaults.Theme, localStore, logger)
	locale := NewLocaleHolder(defaults.Language, localStore, logger)

	return &ClientServices{
		Session:  session,
		Theme:    theme,
		Locale:   locale,
		Notifier: NewNotifier(),
		Search:   NewSearchCoordinator(serverAdapter, logger),

		AuthService:      NewClientAuthService(serverAdapter, session, theme, locale, validator, logger),
		CatalogService:   NewClientCatalogService(serverAdapter, bundle, logger),
		FavoritesService: NewClientFavoritesService(serverAdapter, session, logger),
		ProfileService:   NewClientProfileService(serverAdapter, session, theme, locale, validator, logger),
		AdminService:     NewClientAdminService(serverAdapter, session, logger),

		Bundle:    bundle,
		Validator: validator,
	}
}

// Restore reloads the persisted session and preferences.
func (s *ClientServices) Restore(ctx context.Context) error {
	return errors.Join(
		s.Theme.Load(ctx),
		s.Locale.Load(ctx),
		s.Session.Restore(ctx),
	)
}
