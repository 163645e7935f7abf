package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/mock"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// memStorage is an in-memory store.LocalStorage.
type memStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStorage) has(key string) bool {
	_, err := m.Get(context.Background(), key)
	return err == nil
}

type testEnv struct {
	ctrl     *gomock.Controller
	adapter  *mock.MockServerAdapter
	storage  *memStorage
	services *ClientServices
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	storage := newMemStorage()

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	validator, err := validators.NewFormValidator(bundle)
	require.NoError(t, err)

	services := NewClientServices(storage, mockAdapter, bundle, validator,
		Defaults{Theme: models.ThemeLight, Language: models.LanguageEnglish}, logger.Nop())

	return &testEnv{ctrl: ctrl, adapter: mockAdapter, storage: storage, services: services}
}

// signIn installs an authenticated session without going through the
// adapter.
func (e *testEnv) signIn(t *testing.T, user models.User) {
	t.Helper()
	e.adapter.EXPECT().SetToken(gomock.Any()).AnyTimes()
	e.adapter.EXPECT().Token().Return("").AnyTimes()
	e.services.Session.authenticate(context.Background(), user, "token")
}

func responseErr(status int, message string) error {
	return adapter.NewResponseError(status, message)
}

func testJWT(t *testing.T, d time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateJWTToken("exo-explorer", "user@test.io", false, d, "sign-key")
	require.NoError(t, err)
	return tok.SignedString
}
