package stubapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBackupCodeCount is used when a request does not name a count.
	DefaultBackupCodeCount = 5

	MaxBackupCodeCount = 20
)

// Signup registers a new account and issues its first OTP, so the caller
// goes straight to the code screen.
func (b *Backend) Signup(credentials models.Credentials) error {
	email := normalizeEmail(credentials.Email)
	if err := b.validateCredentials(email, credentials.Password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), b.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	b.mu.Lock()
	if _, exists := b.users[email]; exists {
		b.mu.Unlock()
		b.logger.Warn().Str("func", "Backend.Signup").Str("email", email).Msg("registration attempt for existing email")
		return fmt.Errorf("%w: %s", ErrUserAlreadyExists, email)
	}
	b.users[email] = &user{
		email:        email,
		passwordHash: hash,
		language:     defaultLanguage,
		isAdmin:      b.isAdminEmail(email),
	}
	b.mu.Unlock()

	b.logger.Info().Str("func", "Backend.Signup").Str("email", email).Msg("user registered")

	return b.Login(credentials)
}

// Login checks the password and issues a fresh OTP. An unknown email and a
// wrong password fail the same way.
func (b *Backend) Login(credentials models.Credentials) error {
	email := normalizeEmail(credentials.Email)
	if err := b.validateCredentials(email, credentials.Password); err != nil {
		return err
	}

	b.mu.RLock()
	u, ok := b.users[email]
	var passwordHash []byte
	if ok {
		passwordHash = u.passwordHash
	}
	b.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(passwordHash, []byte(credentials.Password)) != nil {
		b.logger.Warn().Str("func", "Backend.Login").Str("email", email).Msg("failed login attempt")
		return ErrBadCredentials
	}

	now := b.now()
	code, err := b.newOtp(email, now)
	if err != nil {
		return fmt.Errorf("error generating otp: %w", err)
	}
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), b.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing otp: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, ok = b.users[email]
	if !ok {
		return ErrBadCredentials
	}
	u.otpHash = codeHash
	u.otpExpiry = now.Add(b.otpTTL)
	b.issuedOtps[email] = code

	b.logger.Info().Str("func", "Backend.Login").Str("email", email).Msg("otp generated")

	return nil
}

// VerifyOtp consumes the pending OTP of email and starts a session.
func (b *Backend) VerifyOtp(req models.OtpVerificationRequest) (models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return models.AuthResponse{}, ErrEmailRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(email)
	if err != nil {
		return models.AuthResponse{}, err
	}

	switch {
	case u.otpHash == nil:
		return models.AuthResponse{}, ErrOtpNotFound
	case b.now().After(u.otpExpiry):
		return models.AuthResponse{}, ErrOtpExpired
	case bcrypt.CompareHashAndPassword(u.otpHash, []byte(strings.TrimSpace(req.Otp))) != nil:
		return models.AuthResponse{}, ErrInvalidOtp
	}

	u.otpHash = nil
	u.otpExpiry = time.Time{}
	delete(b.issuedOtps, email)

	token, err := b.issueToken(u)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("error issuing token: %w", err)
	}

	b.logger.Info().Str("func", "Backend.VerifyOtp").Str("email", email).Msg("otp verified")

	return models.AuthResponse{Message: app.MsgOtpVerified, Token: token.SignedString, IsAdmin: u.isAdmin}, nil
}

// VerifyBackupCode consumes one unused backup code of email and starts a
// session.
func (b *Backend) VerifyBackupCode(req models.BackupCodeVerificationRequest) (models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return models.AuthResponse{}, ErrEmailRequired
	}
	input := []byte(strings.TrimSpace(req.BackupCode))

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(email)
	if err != nil {
		return models.AuthResponse{}, err
	}

	idx := -1
	for i, c := range u.backupCodes {
		if !c.used && bcrypt.CompareHashAndPassword(c.hash, input) == nil {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.logger.Warn().Str("func", "Backend.VerifyBackupCode").Str("email", email).Msg("invalid backup code used")
		return models.AuthResponse{}, ErrInvalidBackupCode
	}
	u.backupCodes[idx].used = true

	token, err := b.issueToken(u)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("error issuing token: %w", err)
	}

	return models.AuthResponse{Message: app.MsgBackupCodeVerified, Token: token.SignedString, IsAdmin: u.isAdmin}, nil
}

// GenerateBackupCodes replaces the backup codes of email with count new ones
// and returns them in clear. They cannot be read back afterwards.
func (b *Backend) GenerateBackupCodes(req models.GenerateBackupCodesRequest) ([]string, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	count := req.Count
	if count <= 0 {
		count = DefaultBackupCodeCount
	}
	if count > MaxBackupCodeCount {
		return nil, fmt.Errorf("%w: count must not exceed %d", ErrValidation, MaxBackupCodeCount)
	}

	plain := make([]string, count)
	codes := make([]backupCode, count)
	for i := range plain {
		plain[i] = newBackupCode()
		hash, err := bcrypt.GenerateFromPassword([]byte(plain[i]), b.hashCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing backup code: %w", err)
		}
		codes[i] = backupCode{hash: hash}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(email)
	if err != nil {
		return nil, err
	}
	u.backupCodes = codes

	b.logger.Info().Str("func", "Backend.GenerateBackupCodes").Str("email", email).Int("count", count).Msg("backup codes generated")

	return plain, nil
}

// BackupCodeStats counts the backup codes of email.
func (b *Backend) BackupCodeStats(email string) (models.BackupCodeStats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	u, err := b.userLocked(email)
	if err != nil {
		return models.BackupCodeStats{}, err
	}

	stats := models.BackupCodeStats{Total: len(u.backupCodes)}
	for _, c := range u.backupCodes {
		if c.used {
			stats.Used++
		}
	}
	stats.Available = stats.Total - stats.Used
	return stats, nil
}

// LastOtp returns the pending OTP of email in clear. It backs the test-only
// endpoint that stands in for the email the real backend sends.
func (b *Backend) LastOtp(email string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	code, ok := b.issuedOtps[normalizeEmail(email)]
	return code, ok
}

func (b *Backend) validateCredentials(email, password string) error {
	if err := b.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: email: %w", ErrValidation, err)
	}
	if err := b.validate.Var(password, "required"); err != nil {
		return fmt.Errorf("%w: password: %w", ErrValidation, err)
	}
	return nil
}

// totpCode derives a six-digit code from a secret minted for this login.
func (b *Backend) totpCode(email string, now time.Time) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      b.tokenIssuer,
		AccountName: email,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", err
	}

	return totp.GenerateCodeCustom(key.Secret(), now, totp.ValidateOpts{
		Period:    uint(b.otpTTL / time.Second),
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}

// newBackupCode returns an eight character code such as "4F9C-1A2B".
func newBackupCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:4] + "-" + raw[4:8]
}
