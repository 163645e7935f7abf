package tui

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/mock"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// cmdTimeout bounds how long a command may take before the harness treats
// it as a timer (spinner, cursor blink, countdown) and drops it.
const cmdTimeout = 20 * time.Millisecond

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

type harness struct {
	t        *testing.T
	adapter  *mock.MockServerAdapter
	storage  *memStorage
	services *service.ClientServices
	env      *env
	root     RootModel

	clipboard []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().SetToken(gomock.Any()).AnyTimes()
	mockAdapter.EXPECT().Token().Return("").AnyTimes()

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	validator, err := validators.NewFormValidator(bundle)
	require.NoError(t, err)

	storage := newMemStorage()
	services := service.NewClientServices(storage, mockAdapter, bundle, validator,
		service.Defaults{Theme: models.ThemeLight, Language: models.LanguageEnglish}, logger.Nop())

	h := &harness{t: t, adapter: mockAdapter, storage: storage, services: services}
	h.env = &env{
		ctx:      context.Background(),
		services: services,
		logger:   logger.Nop(),
		opts: Options{
			NotFoundRedirect: 3 * time.Second,
			Clipboard: func(text string) error {
				h.clipboard = append(h.clipboard, text)
				return nil
			},
		}.withDefaults(),
	}
	return h
}

// signIn stores a session the way a previous run would have and restores it.
func (h *harness) signIn(email string, admin bool) {
	h.t.Helper()

	tok, err := utils.GenerateJWTToken("exo-explorer", email, admin, time.Hour, "sign-key")
	require.NoError(h.t, err)
	user, err := json.Marshal(models.User{ID: email, Email: email, IsAdmin: admin})
	require.NoError(h.t, err)

	ctx := context.Background()
	require.NoError(h.t, h.storage.Set(ctx, service.StorageKeyToken, tok.SignedString))
	require.NoError(h.t, h.storage.Set(ctx, service.StorageKeyUser, string(user)))
	require.NoError(h.t, h.services.Session.Restore(ctx))
}

func (h *harness) start(path string) {
	h.root = newRootModel(h.env, routes(), path)
	h.pump(h.root.Init(), 0)
}

func (h *harness) send(msg tea.Msg) {
	h.dispatch(msg, 0)
}

func (h *harness) dispatch(msg tea.Msg, depth int) {
	require.Less(h.t, depth, 32, "message loop does not settle")

	updated, cmd := h.root.Update(msg)
	h.root = updated.(RootModel)
	h.pump(cmd, depth+1)
}

// press delivers msg to the root and hands back the command it produced
// without running it, leaving that request in flight.
func (h *harness) press(msg tea.Msg) tea.Cmd {
	updated, cmd := h.root.Update(msg)
	h.root = updated.(RootModel)
	return cmd
}

// pump runs cmd and feeds every message it produces back into the root.
func (h *harness) pump(cmd tea.Cmd, depth int) {
	for _, msg := range runCmd(cmd) {
		h.dispatch(msg, depth)
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(cmdTimeout):
		return nil
	}
}

func (h *harness) view() router.View {
	return h.root.route.View
}

func (h *harness) notification() (models.Notification, bool) {
	return h.services.Notifier.Current()
}

func (h *harness) t9n(key string, params ...string) string {
	return h.services.Bundle.T(models.LanguageEnglish, key, params...)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyAlt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(keyRunes(string(r)))
	}
}

func summaries(n int) []models.ExoplanetSummary {
	out := make([]models.ExoplanetSummary, n)
	for i := range out {
		out[i] = models.ExoplanetSummary{ID: int64(i + 1), Name: "Kepler-" + string(rune('a'+i))}
	}
	return out
}

func pageOf(items []models.ExoplanetSummary, number, size, totalPages int, total int64) models.Page[models.ExoplanetSummary] {
	return models.Page[models.ExoplanetSummary]{
		Content:       items,
		Number:        number,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}
