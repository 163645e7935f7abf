package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/logger"
)

// AdminAction names a data-management operation of the admin view.
type AdminAction string

const (
	AdminRefresh         AdminAction = "refresh"
	AdminInsert500       AdminAction = "insert500"
	AdminInsertHabitable AdminAction = "insertHabitable"
	AdminClearExoplanets AdminAction = "clearExoplanets"
	AdminResetDB         AdminAction = "resetDb"
	AdminResetAll        AdminAction = "resetAll"
)

// AdminActions lists the actions in display order.
var AdminActions = []AdminAction{
	AdminRefresh,
	AdminInsert500,
	AdminInsertHabitable,
	AdminClearExoplanets,
	AdminResetDB,
	AdminResetAll,
}

// Destructive reports whether the action deletes data and must be confirmed.
func (a AdminAction) Destructive() bool {
	switch a {
	case AdminClearExoplanets, AdminResetDB, AdminResetAll:
		return true
	default:
		return false
	}
}

type clientAdminService struct {
	mu       sync.Mutex
	inFlight map[AdminAction]bool

	serverAdapter adapter.ServerAdapter
	session       *SessionHolder
	logger        *logger.Logger
}

func NewClientAdminService(serverAdapter adapter.ServerAdapter, session *SessionHolder, logger *logger.Logger) ClientAdminService {
	return &clientAdminService{
		inFlight:      make(map[AdminAction]bool),
		serverAdapter: serverAdapter,
		session:       session,
		logger:        logger,
	}
}

// TryStart marks a as running. It returns false if a is already running;
// other actions are unaffected.
func (s *clientAdminService) TryStart(a AdminAction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[a] {
		return false
	}
	s.inFlight[a] = true
	return true
}

func (s *clientAdminService) Finish(a AdminAction) {
	s.mu.Lock()
	delete(s.inFlight, a)
	s.mu.Unlock()
}

func (s *clientAdminService) InFlight(a AdminAction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[a]
}

// Run dispatches a. Destructive actions need confirmed set. The returned
// string is the backend's message, empty for endpoints that answer without a
// body.
func (s *clientAdminService) Run(ctx context.Context, a AdminAction, confirmed bool) (string, error) {
	if !s.session.IsAdmin() {
		return "", ErrForbidden
	}
	if a.Destructive() && !confirmed {
		return "", ErrConfirmationNeeded
	}

	var (
		msg string
		err error
	)
	switch a {
	case AdminRefresh:
		msg, err = s.serverAdapter.RefreshExoplanets(ctx)
	case AdminInsert500:
		msg, err = s.serverAdapter.InsertSampleExoplanets(ctx)
	case AdminInsertHabitable:
		msg, err = s.serverAdapter.InsertHabitableExoplanets(ctx)
	case AdminClearExoplanets:
		msg, err = s.serverAdapter.ClearExoplanets(ctx)
	case AdminResetDB:
		err = s.serverAdapter.ResetDB(ctx)
	case AdminResetAll:
		err = s.serverAdapter.ResetAll(ctx)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}

	if err != nil {
		s.logger.Err(err).Str("func", "clientAdminService.Run").Str("action", string(a)).Msg("admin action failed")
		return "", mapAdapterError(err)
	}

	s.logger.Info().Str("func", "clientAdminService.Run").Str("action", string(a)).Msg("admin action done")
	return msg, nil
}
