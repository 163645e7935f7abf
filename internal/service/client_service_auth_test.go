package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_InvalidFormSendsNothing(t *testing.T) {
	env := newTestEnv(t)

	next, err := env.services.AuthService.Login(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, next)
	assert.Equal(t, StateAnonymous, env.services.Session.State())
}

func TestClientAuthService_Login_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().
		Login(ctx, models.Credentials{Email: "user@test.io", Password: "secret1"}).
		Return(app.MsgOtpSent, nil)

	next, err := env.services.AuthService.Login(ctx, " user@test.io ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, router.PathVerifyOtp, next)
	assert.Equal(t, StateAwaitingSecondFactor, env.services.Session.State())
	assert.Equal(t, "user@test.io", env.services.Session.PendingEmail())
}

func TestClientAuthService_Login_BadCredentialsKeepsState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().Login(ctx, gomock.Any()).Return("", responseErr(http.StatusUnauthorized, app.MsgBadCredentials))

	_, err := env.services.AuthService.Login(ctx, "user@test.io", "wrong1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateAnonymous, env.services.Session.State())
}

func TestClientAuthService_Login_ReplacesPendingEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().Login(ctx, gomock.Any()).Return("", nil).Times(2)

	_, err := env.services.AuthService.Login(ctx, "first@test.io", "secret1")
	require.NoError(t, err)
	_, err = env.services.AuthService.Login(ctx, "second@test.io", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "second@test.io", env.services.Session.PendingEmail())
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
	}{
		{name: "bad email", email: "user", password: "secret1", confirm: "secret1"},
		{name: "short password", email: "user@test.io", password: "abc", confirm: "abc"},
		{name: "mismatch", email: "user@test.io", password: "secret1", confirm: "secret2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.services.AuthService.Signup(context.Background(), tt.email, tt.password, tt.confirm)
			assert.ErrorIs(t, err, validators.ErrInvalidInput)
		})
	}
}

func TestClientAuthService_Signup_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().Signup(ctx, gomock.Any()).Return("", responseErr(http.StatusConflict, app.MsgUserAlreadyExists))

	next, err := env.services.AuthService.Signup(ctx, "user@test.io", "secret1", "secret1")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), app.MsgUserAlreadyExists)
	assert.Empty(t, next)
	assert.Equal(t, StateAnonymous, env.services.Session.State())
}

func TestClientAuthService_Signup_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.adapter.EXPECT().Signup(ctx, models.Credentials{Email: "user@test.io", Password: "secret1"}).Return(app.MsgSignupSucceeded, nil)

	next, err := env.services.AuthService.Signup(ctx, "user@test.io", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, router.PathVerifyOtp, next)
	assert.Equal(t, StateAwaitingSecondFactor, env.services.Session.State())
}

// ── VerifyOtp ────────────────────────────────────────────────────────────────

func TestClientAuthService_VerifyOtp_NoPendingEmail(t *testing.T) {
	env := newTestEnv(t)

	next, err := env.services.AuthService.VerifyOtp(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoPendingEmail)
	assert.Equal(t, router.PathLogin, next)
}

func TestClientAuthService_VerifyBackupCode_NoPendingEmail(t *testing.T) {
	env := newTestEnv(t)

	next, err := env.services.AuthService.VerifyBackupCode(context.Background(), "ABCD1234")
	assert.ErrorIs(t, err, ErrNoPendingEmail)
	assert.Equal(t, router.PathLogin, next)
}

func TestClientAuthService_LoginThenOtp_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := testJWT(t, time.Hour)
	gomock.InOrder(
		env.adapter.EXPECT().Login(ctx, models.Credentials{Email: "user@test.io", Password: "secret1"}).Return(app.MsgOtpSent, nil),
		env.adapter.EXPECT().VerifyOtp(ctx, models.OtpVerificationRequest{Email: "user@test.io", Otp: "123456"}).
			Return(models.AuthResponse{Message: app.MsgOtpVerified, Token: token}, nil),
		env.adapter.EXPECT().Token().Return(""),
		env.adapter.EXPECT().SetToken(token),
		env.adapter.EXPECT().GetProfile(ctx, "user@test.io").Return(models.Profile{
			Email: "user@test.io", FirstName: "Ada", LastName: "Lovelace", DarkMode: true, Language: "fr",
		}, nil),
		env.adapter.EXPECT().SetToken(token),
	)

	next, err := env.services.AuthService.Login(ctx, "user@test.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, router.PathVerifyOtp, next)

	next, err = env.services.AuthService.VerifyOtp(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, router.PathHome, next)

	user, ok := env.services.Session.User()
	require.True(t, ok)
	assert.Equal(t, models.User{ID: "user@test.io", Email: "user@test.io", FirstName: "Ada", LastName: "Lovelace"}, user)
	assert.Equal(t, token, env.services.Session.Token())
	assert.Empty(t, env.services.Session.PendingEmail())

	assert.True(t, env.storage.has(StorageKeyUser))
	assert.True(t, env.storage.has(StorageKeyToken))

	assert.Equal(t, models.ThemeDark, env.services.Theme.Theme())
	assert.Equal(t, "fr", env.services.Locale.Language())
}

func TestClientAuthService_VerifyOtp_AdminFlagFromResponse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("admin@test.io")

	env.adapter.EXPECT().VerifyOtp(ctx, gomock.Any()).Return(models.AuthResponse{Token: "tok", IsAdmin: true}, nil)
	env.adapter.EXPECT().Token().Return("")
	env.adapter.EXPECT().SetToken("tok").Times(2)
	env.adapter.EXPECT().GetProfile(ctx, "admin@test.io").Return(models.Profile{Email: "admin@test.io", Language: "en"}, nil)

	_, err := env.services.AuthService.VerifyOtp(ctx, "654321")
	require.NoError(t, err)
	assert.True(t, env.services.Session.IsAdmin())
	assert.True(t, env.services.Session.Capabilities().Admin)
}

func TestClientAuthService_VerifyOtp_InvalidCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("user@test.io")

	env.adapter.EXPECT().VerifyOtp(ctx, gomock.Any()).Return(models.AuthResponse{}, responseErr(http.StatusUnauthorized, app.MsgInvalidOtp))

	_, err := env.services.AuthService.VerifyOtp(ctx, "000000")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Equal(t, StateAwaitingSecondFactor, env.services.Session.State())
}

func TestClientAuthService_VerifyOtp_TokenNotReceived(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("user@test.io")

	env.adapter.EXPECT().VerifyOtp(ctx, gomock.Any()).Return(models.AuthResponse{Message: "ok"}, nil)

	_, err := env.services.AuthService.VerifyOtp(ctx, "123456")
	assert.ErrorIs(t, err, ErrTokenNotReceived)
	assert.Equal(t, StateAwaitingSecondFactor, env.services.Session.State())
}

func TestClientAuthService_VerifyOtp_ProfileFailureRestoresToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("user@test.io")

	gomock.InOrder(
		env.adapter.EXPECT().VerifyOtp(ctx, gomock.Any()).Return(models.AuthResponse{Token: "tok"}, nil),
		env.adapter.EXPECT().Token().Return(""),
		env.adapter.EXPECT().SetToken("tok"),
		env.adapter.EXPECT().GetProfile(ctx, "user@test.io").Return(models.Profile{}, responseErr(http.StatusNotFound, app.MsgUserNotFound)),
		env.adapter.EXPECT().SetToken(""),
	)

	_, err := env.services.AuthService.VerifyOtp(ctx, "123456")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.False(t, env.services.Session.IsAuthenticated())
}

// ── VerifyBackupCode ─────────────────────────────────────────────────────────

func TestClientAuthService_VerifyBackupCode_AdminFlagFromProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("admin@test.io")

	env.adapter.EXPECT().VerifyBackupCode(ctx, models.BackupCodeVerificationRequest{Email: "admin@test.io", BackupCode: "ABCD1234"}).
		Return(models.AuthResponse{Token: "tok"}, nil)
	env.adapter.EXPECT().Token().Return("")
	env.adapter.EXPECT().SetToken("tok").Times(2)
	env.adapter.EXPECT().GetProfile(ctx, "admin@test.io").Return(models.Profile{Email: "admin@test.io", IsAdmin: true}, nil)

	next, err := env.services.AuthService.VerifyBackupCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, router.PathHome, next)
	assert.True(t, env.services.Session.IsAdmin())
}

func TestClientAuthService_VerifyBackupCode_Invalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.services.Session.beginSecondFactor("user@test.io")

	env.adapter.EXPECT().VerifyBackupCode(ctx, gomock.Any()).
		Return(models.AuthResponse{}, responseErr(http.StatusBadRequest, app.MsgInvalidBackupCode))

	_, err := env.services.AuthService.VerifyBackupCode(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

// ── Logout / Cancel / Backup codes ───────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})

	next := env.services.AuthService.Logout(context.Background())
	assert.Equal(t, router.PathHome, next)
	assert.Equal(t, StateAnonymous, env.services.Session.State())
	assert.Empty(t, env.services.Session.Token())
	assert.False(t, env.storage.has(StorageKeyUser))
	assert.False(t, env.storage.has(StorageKeyToken))
}

func TestClientAuthService_CancelSecondFactor(t *testing.T) {
	env := newTestEnv(t)
	env.services.Session.beginSecondFactor("user@test.io")

	assert.Equal(t, router.PathLogin, env.services.AuthService.CancelSecondFactor())
	assert.Equal(t, StateAnonymous, env.services.Session.State())
}

func TestClientAuthService_GenerateBackupCodes(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.AuthService.GenerateBackupCodes(context.Background(), 5)
		assert.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("default count", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})
		ctx := context.Background()

		codes := []string{"A1", "B2", "C3", "D4", "E5"}
		env.adapter.EXPECT().
			GenerateBackupCodes(ctx, models.GenerateBackupCodesRequest{Email: "user@test.io", Count: DefaultBackupCodeCount}).
			Return(codes, nil)

		got, err := env.services.AuthService.GenerateBackupCodes(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, codes, got)
		assert.True(t, env.services.Session.IsAuthenticated())
	})
}
