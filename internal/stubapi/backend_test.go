package stubapi

import (
	"testing"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testOtp = "123456"

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend(&config.StubAPIConfig{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "exo-test",
		TokenDuration: time.Hour,
		AdminEmails:   []string{" Root@Exo.io "},
	}, logger.Nop())
	b.hashCost = bcrypt.MinCost
	b.newOtp = func(string, time.Time) (string, error) { return testOtp, nil }
	return b
}

// signedUp registers email and consumes its first OTP.
func signedUp(t *testing.T, b *Backend, email, password string) models.AuthResponse {
	t.Helper()

	require.NoError(t, b.Signup(models.Credentials{Email: email, Password: password}))
	resp, err := b.VerifyOtp(models.OtpVerificationRequest{Email: email, Otp: testOtp})
	require.NoError(t, err)
	return resp
}

func TestNewBackend_SeedsReferenceCatalog(t *testing.T) {
	b := newTestBackend(t)

	all := b.Exoplanets()
	require.Len(t, all, len(referenceCatalog()))
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "Proxima Centauri b", all[0].Name)
	assert.Equal(t, []string{"root@exo.io"}, b.adminEmails)
}

func TestBackend_ParseToken(t *testing.T) {
	b := newTestBackend(t)
	resp := signedUp(t, b, "root@exo.io", "secret1")

	token, err := b.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "root@exo.io", token.Subject)
	assert.True(t, token.IsAdmin)

	_, err = b.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := newTestBackend(t)
	other.tokenSignKey = "another-key"
	_, err = other.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTotpCode_SixDigits(t *testing.T) {
	b := NewBackend(&config.StubAPIConfig{TokenSignKey: "k", TokenDuration: time.Hour}, logger.Nop())

	code, err := b.totpCode("user@test.io", time.Now())
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
}
