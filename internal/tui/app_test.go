package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRootModel_Guards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		path  string
		want  router.View
	}{
		{
			name: "anonymous favorites go to login",
			path: router.PathFavorites,
			want: router.ViewLogin,
		},
		{
			name: "anonymous profile goes to login",
			path: router.PathProfile,
			want: router.ViewLogin,
		},
		{
			name: "code screen without pending email goes to login",
			path: router.PathVerifyOtp,
			want: router.ViewLogin,
		},
		{
			name: "unknown path shows not found",
			path: "/no/such/page",
			want: router.ViewNotFound,
		},
		{
			name: "admin home goes to admin panel",
			setup: func(h *harness) {
				h.signIn("root@exo.io", true)
			},
			path: router.PathHome,
			want: router.ViewAdmin,
		},
		{
			name: "signed in user opens favorites",
			setup: func(h *harness) {
				h.signIn("user@exo.io", false)
				h.adapter.EXPECT().GetFavorites(gomock.Any(), "user@exo.io").Return(nil, nil)
			},
			path: router.PathFavorites,
			want: router.ViewFavorites,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.setup != nil {
				tt.setup(h)
			}

			h.start(tt.path)

			assert.Equal(t, tt.want, h.view())
		})
	}
}

func TestRootModel_AdminPathForNonAdmin(t *testing.T) {
	h := newHarness(t)
	h.signIn("user@exo.io", false)
	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(summaries(2), 0, 10, 1, 2), nil)

	h.start(router.PathAdmin)

	assert.Equal(t, router.ViewHome, h.view())
}

func TestRootModel_NotificationCapturesKeys(t *testing.T) {
	h := newHarness(t)
	h.start("/missing")
	require.Equal(t, router.ViewNotFound, h.view())

	h.services.Notifier.Error("boom")

	// Navbar hotkeys are swallowed while the modal is up.
	h.send(keyAlt("2"))
	assert.Equal(t, router.ViewNotFound, h.view())

	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, "boom", n.Message)
	assert.Contains(t, h.root.View(), "boom")

	h.send(keyType(tea.KeyEnter))
	_, visible = h.notification()
	assert.False(t, visible)
	assert.Equal(t, router.ViewNotFound, h.view())
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	h := newHarness(t)
	h.env.opts.BuildInfo = models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")
	h.start("/missing")

	h.send(keyType(tea.KeyF1))
	assert.True(t, h.root.showBuildInfo)
	assert.Contains(t, h.root.View(), "v1.2.3")

	// Page keys do not reach the page underneath.
	h.send(keyType(tea.KeyEnter))
	assert.Equal(t, router.ViewNotFound, h.view())

	h.send(keyType(tea.KeyEsc))
	assert.False(t, h.root.showBuildInfo)
}

func TestRootModel_ThemeAndLanguageHotkeys(t *testing.T) {
	h := newHarness(t)
	h.start("/missing")

	h.send(keyAlt("t"))
	assert.Equal(t, models.ThemeDark, h.services.Theme.Theme())
	stored, err := h.storage.Get(context.Background(), service.StorageKeyTheme)
	require.NoError(t, err)
	assert.Equal(t, string(models.ThemeDark), stored)

	h.send(keyAlt("g"))
	assert.Equal(t, models.LanguageFrench, h.services.Locale.Language())
	assert.Contains(t, h.root.View(), h.services.Bundle.T(models.LanguageFrench, i18n.NotFoundTitle))

	h.send(keyAlt("g"))
	assert.Equal(t, models.LanguageEnglish, h.services.Locale.Language())
}

func TestRootModel_Logout(t *testing.T) {
	h := newHarness(t)
	h.signIn("user@exo.io", false)
	h.adapter.EXPECT().GetFavorites(gomock.Any(), "user@exo.io").Return(nil, nil)
	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(summaries(1), 0, 10, 1, 1), nil)

	h.start(router.PathFavorites)
	require.Equal(t, router.ViewFavorites, h.view())

	h.send(keyAlt("6"))

	assert.False(t, h.services.Session.IsAuthenticated())
	assert.Equal(t, router.ViewHome, h.view())
	assert.Empty(t, h.root.history)
	_, err := h.storage.Get(context.Background(), service.StorageKeyToken)
	assert.Error(t, err)
}

func TestRootModel_NavigateBack(t *testing.T) {
	h := newHarness(t)
	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(summaries(3), 0, 10, 1, 3), nil)
	h.adapter.EXPECT().
		GetExoplanetDetails(gomock.Any(), int64(2)).
		Return(models.ExoplanetDetails{ID: 2, Name: "Kepler-b"}, nil)
	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(summaries(3), 0, 10, 1, 3), nil)

	h.start(router.PathHome)
	h.send(keyType(tea.KeyDown))
	h.send(keyType(tea.KeyEnter))
	require.Equal(t, router.ViewExoplanet, h.view())
	assert.Equal(t, int64(2), h.root.route.ExoplanetID)

	h.send(keyType(tea.KeyEsc))
	assert.Equal(t, router.ViewHome, h.view())
}

func TestNotFoundModel_Countdown(t *testing.T) {
	h := newHarness(t)
	h.start("/lost")

	page, ok := h.root.current.(*NotFoundModel)
	require.True(t, ok)
	assert.Equal(t, 3, page.remaining)
	assert.Contains(t, h.root.View(), h.t9n(i18n.NotFoundRedirect, "3"))

	// A tick from another countdown is ignored.
	h.send(countdownTickMsg{id: page.id + 100})
	assert.Equal(t, 3, page.remaining)

	h.send(countdownTickMsg{id: page.id})
	h.send(countdownTickMsg{id: page.id})
	assert.Equal(t, 1, page.remaining)
	assert.Equal(t, router.ViewNotFound, h.view())

	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(nil, 0, 10, 0, 0), nil)
	h.send(countdownTickMsg{id: page.id})
	assert.Equal(t, router.ViewHome, h.view())
}
