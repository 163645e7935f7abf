package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/models"
)

// SessionState is the position of the session in the sign-in flow.
type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAwaitingSecondFactor
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAwaitingSecondFactor:
		return "awaiting-second-factor"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// tokenSink receives the bearer token whenever the session changes it.
type tokenSink interface {
	SetToken(token string)
}

// SessionHolder owns the signed-in principal, its bearer token and the email
// awaiting a second factor. User and token are mirrored to local storage.
type SessionHolder struct {
	mu           sync.RWMutex
	user         *models.User
	token        string
	pendingEmail string

	storage store.LocalStorage
	tokens  tokenSink
	logger  *logger.Logger
	now     func() time.Time
}

func NewSessionHolder(storage store.LocalStorage, tokens tokenSink, logger *logger.Logger) *SessionHolder {
	return &SessionHolder{
		storage: storage,
		tokens:  tokens,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *SessionHolder) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.user != nil:
		return StateAuthenticated
	case s.pendingEmail != "":
		return StateAwaitingSecondFactor
	default:
		return StateAnonymous
	}
}

// User returns the signed-in principal.
func (s *SessionHolder) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionHolder) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionHolder) PendingEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingEmail
}

func (s *SessionHolder) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *SessionHolder) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.IsAdmin
}

// Capabilities reports what the router may let this session see.
func (s *SessionHolder) Capabilities() router.Capabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return router.Capabilities{
		Authenticated:       s.user != nil,
		Admin:               s.user != nil && s.user.IsAdmin,
		PendingSecondFactor: s.pendingEmail != "",
	}
}

// beginSecondFactor records the email a code was sent to. A later login
// replaces it.
func (s *SessionHolder) beginSecondFactor(email string) {
	s.mu.Lock()
	s.pendingEmail = email
	s.mu.Unlock()
}

// cancelSecondFactor forgets the pending email.
func (s *SessionHolder) cancelSecondFactor() {
	s.mu.Lock()
	s.pendingEmail = ""
	s.mu.Unlock()
}

// authenticate installs user and token. Storage failures only cost
// persistence across restarts, so they are logged and the session proceeds.
func (s *SessionHolder) authenticate(ctx context.Context, user models.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.pendingEmail = ""
	s.mu.Unlock()

	s.tokens.SetToken(token)

	encoded, err := json.Marshal(user)
	if err == nil {
		err = s.storage.Set(ctx, StorageKeyUser, string(encoded))
	}
	if err == nil {
		err = s.storage.Set(ctx, StorageKeyToken, token)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SessionHolder.authenticate").Msg("error persisting session")
	}
}

// updateUser replaces the stored principal, keeping the token.
func (s *SessionHolder) updateUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user = &user
	s.mu.Unlock()

	encoded, err := json.Marshal(user)
	if err == nil {
		err = s.storage.Set(ctx, StorageKeyUser, string(encoded))
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SessionHolder.updateUser").Msg("error persisting user")
	}
}

// clear drops user, token and pending email from memory, storage and the
// adapter.
func (s *SessionHolder) clear(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.pendingEmail = ""
	s.mu.Unlock()

	s.tokens.SetToken("")

	if err := s.storage.Delete(ctx, StorageKeyUser, StorageKeyToken); err != nil {
		s.logger.Err(err).Str("func", "SessionHolder.clear").Msg("error deleting stored session")
	}
}

// Restore reloads a stored session. A token that no longer parses or whose
// exp claim has passed is discarded together with the user. The server stays
// the authority on validity; this only avoids starting with a dead session.
func (s *SessionHolder) Restore(ctx context.Context) error {
	token, err := s.storage.Get(ctx, StorageKeyToken)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	rawUser, err := s.storage.Get(ctx, StorageKeyUser)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return err
	}

	var user models.User
	if rawUser == "" || json.Unmarshal([]byte(rawUser), &user) != nil || user.Email == "" {
		s.logger.Warn().Str("func", "SessionHolder.Restore").Msg("stored user is missing or corrupt, discarding session")
		s.clear(ctx)
		return nil
	}

	if parsed, err := utils.ParseTokenUnverified(token); err != nil || parsed.Expired(s.now()) {
		s.logger.Info().Str("func", "SessionHolder.Restore").Msg("stored token is expired or unreadable, discarding session")
		s.clear(ctx)
		return nil
	}

	if user.ID == "" {
		user.ID = user.Email
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()
	s.tokens.SetToken(token)

	return nil
}
