package service

import (
	"context"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/models"
)

type clientFavoritesService struct {
	users   adapter.UserAdapter
	session *SessionHolder
	logger  *logger.Logger
}

func NewClientFavoritesService(users adapter.UserAdapter, session *SessionHolder, logger *logger.Logger) ClientFavoritesService {
	return &clientFavoritesService{users: users, session: session, logger: logger}
}

// Toggle flips the favorite flag of exoplanetID on the backend. The returned
// flag is only inverted once the backend confirmed; on failure current is
// returned with the error.
func (s *clientFavoritesService) Toggle(ctx context.Context, exoplanetID int64, current bool) (bool, error) {
	user, ok := s.session.User()
	if !ok {
		return current, ErrLoginRequired
	}

	err := s.users.ToggleFavorite(ctx, models.ToggleFavoriteRequest{Email: user.Email, ExoplanetID: exoplanetID})
	if err != nil {
		s.logger.Err(err).Str("func", "clientFavoritesService.Toggle").Int64("exoplanet_id", exoplanetID).Msg("error toggling favorite")
		return current, mapAdapterError(err)
	}

	return !current, nil
}

func (s *clientFavoritesService) List(ctx context.Context) ([]models.Exoplanet, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, ErrLoginRequired
	}

	favorites, err := s.users.GetFavorites(ctx, user.Email)
	if err != nil {
		s.logger.Err(err).Str("func", "clientFavoritesService.List").Msg("error loading favorites")
		return nil, mapAdapterError(err)
	}
	return favorites, nil
}

// Contains reports whether exoplanetID is a favorite. Anonymous sessions
// have no favorites.
func (s *clientFavoritesService) Contains(ctx context.Context, exoplanetID int64) (bool, error) {
	if !s.session.IsAuthenticated() {
		return false, nil
	}

	favorites, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.ID == exoplanetID {
			return true, nil
		}
	}
	return false, nil
}
