package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

func TestClientProfileService_Load(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})
	ctx := context.Background()

	profile := models.Profile{Email: "user@test.io", FirstName: "Ada", Language: "fr"}
	env.adapter.EXPECT().GetProfile(ctx, "user@test.io").Return(profile, nil)
	env.adapter.EXPECT().GetBackupCodeStats(ctx, "user@test.io").Return(models.BackupCodeStats{Total: 5, Used: 1, Available: 4}, nil)

	view, err := env.services.ProfileService.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, view.Profile)
	require.NotNil(t, view.BackupCodes)
	assert.Equal(t, 4, view.BackupCodes.Available)
}

func TestClientProfileService_Load_StatsRefused(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})
	ctx := context.Background()

	env.adapter.EXPECT().GetProfile(ctx, "user@test.io").Return(models.Profile{Email: "user@test.io"}, nil)
	env.adapter.EXPECT().GetBackupCodeStats(ctx, "user@test.io").Return(models.BackupCodeStats{}, responseErr(http.StatusForbidden, ""))

	view, err := env.services.ProfileService.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, view.BackupCodes)
}

func TestClientProfileService_Load_RequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.ProfileService.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestClientProfileService_Save(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})
	ctx := context.Background()

	gomock.InOrder(
		env.adapter.EXPECT().UpdateProfile(ctx, models.UpdateProfileRequest{Email: "user@test.io", FirstName: "Ada", LastName: "Lovelace"}).Return(nil),
		env.adapter.EXPECT().UpdatePreferences(ctx, models.UpdatePreferencesRequest{Email: "user@test.io", DarkMode: true, Language: "fr"}).Return(nil),
	)

	err := env.services.ProfileService.Save(ctx, models.ProfileForm{FirstName: " Ada ", LastName: "Lovelace", Language: "fr", Theme: models.ThemeDark})
	require.NoError(t, err)

	user, _ := env.services.Session.User()
	assert.Equal(t, "Ada Lovelace", user.DisplayName())

	assert.Equal(t, models.ThemeLight, env.services.Theme.Theme(), "saving does not apply preferences")
	assert.Equal(t, models.LanguageEnglish, env.services.Locale.Language())
}

func TestClientProfileService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})
	ctx := context.Background()

	err := env.services.ProfileService.ChangePassword(ctx, models.ChangePasswordForm{CurrentPassword: "old", NewPassword: "abc", ConfirmPassword: "abc"})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	env.adapter.EXPECT().
		ChangePassword(ctx, models.ChangePasswordRequest{Email: "user@test.io", CurrentPassword: "old", NewPassword: "secret1"}).
		Return(responseErr(http.StatusUnauthorized, app.MsgWrongCurrentPassword))

	err = env.services.ProfileService.ChangePassword(ctx, models.ChangePasswordForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret1"})
	assert.ErrorIs(t, err, ErrWrongCurrentPassword)
}

func TestClientProfileService_ApplyPreferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.services.ProfileService.ApplyPreferences(ctx, models.ThemeDark, "fr"))
	assert.Equal(t, models.ThemeDark, env.services.Theme.Theme())
	assert.Equal(t, "fr", env.services.Locale.Language())
	assert.Equal(t, "dark", env.storage.data[StorageKeyTheme])

	err := env.services.ProfileService.ApplyPreferences(ctx, models.ThemeDark, "de")
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Equal(t, "fr", env.services.Locale.Language())
}
