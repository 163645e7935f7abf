package tui

import (
	"strings"
	"testing"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// leaveForSearch opens the search view while a request of the previous page
// is still running.
func (h *harness) leaveForSearch() {
	h.t.Helper()

	h.adapter.EXPECT().
		SearchExoplanets(gomock.Any(), gomock.Any()).
		Return(pageOf(summaries(3), 0, 10, 1, 3), nil)
	h.send(keyAlt("2"))
	require.Equal(h.t, router.ViewSearch, h.view())
}

func TestAdminModel_ActionFinishesAfterLeaving(t *testing.T) {
	h := newHarness(t)
	h.signIn("root@exo.io", true)
	h.start(router.PathAdmin)

	h.adapter.EXPECT().RefreshExoplanets(gomock.Any()).Return("", nil).Times(2)

	refresh := h.press(keyType(tea.KeyEnter))
	require.NotNil(t, refresh)
	require.True(t, h.services.AdminService.InFlight(service.AdminRefresh))

	h.leaveForSearch()
	h.pump(refresh, 0)

	assert.False(t, h.services.AdminService.InFlight(service.AdminRefresh))
	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, models.SeveritySuccess, n.Severity)
	assert.Equal(t, h.t9n(i18n.AdminDone, h.t9n(i18n.AdminRefresh)), n.Message)
	assert.Equal(t, router.ViewSearch, h.view())

	// Back on the admin view the same action runs again.
	h.send(keyType(tea.KeyEsc))
	h.send(keyAlt("5"))
	require.Equal(t, router.ViewAdmin, h.view())
	h.send(keyType(tea.KeyEnter))

	_, visible = h.notification()
	assert.True(t, visible)
	assert.False(t, h.services.AdminService.InFlight(service.AdminRefresh))
}

func TestAdminModel_FailureAfterLeaving(t *testing.T) {
	h := newHarness(t)
	h.signIn("root@exo.io", true)
	h.start(router.PathAdmin)

	h.adapter.EXPECT().
		RefreshExoplanets(gomock.Any()).
		Return("", adapter.NewResponseError(500, "archive unreachable"))

	refresh := h.press(keyType(tea.KeyEnter))
	h.leaveForSearch()
	h.pump(refresh, 0)

	assert.False(t, h.services.AdminService.InFlight(service.AdminRefresh))
	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, models.SeverityError, n.Severity)
	assert.True(t, strings.HasPrefix(n.Message, h.t9n(i18n.AdminFailed, h.t9n(i18n.AdminRefresh))))
}

func detailWithFavorites(t *testing.T, id int64, favorites []models.Exoplanet) *harness {
	t.Helper()

	h := newHarness(t)
	h.signIn("user@exo.io", false)
	h.adapter.EXPECT().
		GetExoplanetDetails(gomock.Any(), id).
		Return(models.ExoplanetDetails{ID: id, Name: "TRAPPIST-1 e"}, nil)
	h.adapter.EXPECT().
		GetFavorites(gomock.Any(), "user@exo.io").
		Return(favorites, nil)

	h.start(router.ExoplanetPath(id))
	require.Equal(t, router.ViewExoplanet, h.view())
	return h
}

func TestDetailModel_ToggleFailureAfterLeaving(t *testing.T) {
	h := detailWithFavorites(t, 7, nil)
	h.adapter.EXPECT().
		ToggleFavorite(gomock.Any(), models.ToggleFavoriteRequest{Email: "user@exo.io", ExoplanetID: 7}).
		Return(adapter.NewResponseError(500, "database is down"))

	toggle := h.press(keyRunes("f"))
	require.NotNil(t, toggle)

	h.leaveForSearch()
	h.pump(toggle, 0)

	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, models.SeverityError, n.Severity)
	assert.Equal(t, router.ViewSearch, h.view())
}

func TestDetailModel_ToggleResultStaysWithItsPlanet(t *testing.T) {
	h := detailWithFavorites(t, 7, nil)
	h.adapter.EXPECT().
		ToggleFavorite(gomock.Any(), models.ToggleFavoriteRequest{Email: "user@exo.io", ExoplanetID: 7}).
		Return(nil)

	toggle := h.press(keyRunes("f"))

	h.adapter.EXPECT().
		GetExoplanetDetails(gomock.Any(), int64(8)).
		Return(models.ExoplanetDetails{ID: 8, Name: "TRAPPIST-1 f"}, nil)
	h.adapter.EXPECT().
		GetFavorites(gomock.Any(), "user@exo.io").
		Return([]models.Exoplanet{{ID: 7}}, nil)
	h.send(NavigateTo{Path: router.ExoplanetPath(8)})
	other := h.root.current.(*DetailModel)
	require.Equal(t, int64(8), other.id)

	h.pump(toggle, 0)

	assert.False(t, other.favorite)
	assert.False(t, other.toggling)
	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, h.t9n(i18n.ExoAddedFavorite), n.Message)
}

func TestProfileModel_SaveAfterLeaving(t *testing.T) {
	h := signedInProfile(t)
	h.adapter.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)
	h.adapter.EXPECT().UpdatePreferences(gomock.Any(), gomock.Any()).Return(nil)

	save := h.press(keyType(tea.KeyEnter))
	require.NotNil(t, save)

	h.leaveForSearch()
	h.pump(save, 0)

	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, h.t9n(i18n.ProfileSaved), n.Message)
}

func TestProfileModel_PasswordErrorAfterLeaving(t *testing.T) {
	h := signedInProfile(t)
	page := h.root.current.(*ProfileModel)

	page.setFocus(profileCurrentPassword)
	h.typeText("old-pass")
	h.send(keyType(tea.KeyTab))
	h.typeText("abc")
	h.send(keyType(tea.KeyTab))
	h.typeText("abc")
	change := h.press(keyType(tea.KeyEnter))
	require.NotNil(t, change)

	h.leaveForSearch()
	h.pump(change, 0)

	// The form is gone, so the validation error moves to the modal.
	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, models.SeverityError, n.Severity)
	assert.NotEmpty(t, n.Message)
	assert.Empty(t, page.passwordErr)
}

func TestProfileModel_BackupCodesAfterLeaving(t *testing.T) {
	h := signedInProfile(t)
	codes := []string{"AAAA-1111", "BBBB-2222"}
	h.adapter.EXPECT().
		GenerateBackupCodes(gomock.Any(), gomock.Any()).
		Return(codes, nil)

	generate := h.press(tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, generate)

	h.leaveForSearch()
	h.pump(generate, 0)

	n, visible := h.notification()
	require.True(t, visible)
	assert.Equal(t, h.t9n(i18n.BackupCodesIssued, "AAAA-1111 BBBB-2222"), n.Message)
}
