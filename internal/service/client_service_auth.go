package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// DefaultBackupCodeCount is the number of codes issued per request.
const DefaultBackupCodeCount = 5

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	session       *SessionHolder
	theme         *ThemeHolder
	locale        *LocaleHolder
	validator     validators.Validator
	logger        *logger.Logger
}

func NewClientAuthService(
	serverAdapter adapter.ServerAdapter,
	session *SessionHolder,
	theme *ThemeHolder,
	locale *LocaleHolder,
	validator validators.Validator,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		session:       session,
		theme:         theme,
		locale:        locale,
		validator:     validator,
		logger:        logger,
	}
}

func (s *clientAuthService) Login(ctx context.Context, email, password string) (string, error) {
	form := models.LoginForm{Email: strings.TrimSpace(email), Password: password}
	if err := s.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	if _, err := s.serverAdapter.Login(ctx, models.Credentials{Email: form.Email, Password: form.Password}); err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login rejected")
		return "", credentialError(err)
	}

	s.session.beginSecondFactor(form.Email)
	return router.PathVerifyOtp, nil
}

func (s *clientAuthService) Signup(ctx context.Context, email, password, confirm string) (string, error) {
	form := models.SignupForm{Email: strings.TrimSpace(email), Password: password, ConfirmPassword: confirm}
	if err := s.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	if _, err := s.serverAdapter.Signup(ctx, models.Credentials{Email: form.Email, Password: form.Password}); err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Signup").Msg("signup rejected")
		return "", mapAdapterError(err)
	}

	s.session.beginSecondFactor(form.Email)
	return router.PathVerifyOtp, nil
}

func (s *clientAuthService) VerifyOtp(ctx context.Context, code string) (string, error) {
	email := s.session.PendingEmail()
	if email == "" {
		return router.PathLogin, ErrNoPendingEmail
	}

	form := models.OtpForm{Email: email, Code: strings.TrimSpace(code)}
	if err := s.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	resp, err := s.serverAdapter.VerifyOtp(ctx, models.OtpVerificationRequest{Email: email, Otp: form.Code})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.VerifyOtp").Msg("otp rejected")
		return "", codeError(err)
	}

	isAdmin := resp.IsAdmin
	return s.completeSignIn(ctx, email, resp.Token, &isAdmin)
}

func (s *clientAuthService) VerifyBackupCode(ctx context.Context, code string) (string, error) {
	email := s.session.PendingEmail()
	if email == "" {
		return router.PathLogin, ErrNoPendingEmail
	}

	form := models.BackupCodeForm{Email: email, Code: strings.TrimSpace(code)}
	if err := s.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	resp, err := s.serverAdapter.VerifyBackupCode(ctx, models.BackupCodeVerificationRequest{Email: email, BackupCode: form.Code})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.VerifyBackupCode").Msg("backup code rejected")
		return "", codeError(err)
	}

	return s.completeSignIn(ctx, email, resp.Token, nil)
}

// completeSignIn loads the profile with the fresh token and installs the
// session. isAdmin overrides the profile's flag when the verification
// response carried one.
func (s *clientAuthService) completeSignIn(ctx context.Context, email, token string, isAdmin *bool) (string, error) {
	if token == "" {
		return "", ErrTokenNotReceived
	}

	previous := s.serverAdapter.Token()
	s.serverAdapter.SetToken(token)

	profile, err := s.serverAdapter.GetProfile(ctx, email)
	if err != nil {
		s.serverAdapter.SetToken(previous)
		s.logger.Err(err).Str("func", "clientAuthService.completeSignIn").Msg("error loading profile after verification")
		return "", mapAdapterError(err)
	}

	user := models.User{
		ID:        email,
		Email:     email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		IsAdmin:   profile.IsAdmin,
	}
	if isAdmin != nil {
		user.IsAdmin = *isAdmin
	}

	s.session.authenticate(ctx, user, token)

	prefs := models.Preferences{DarkMode: profile.DarkMode, Language: profile.Language}
	if err := applyPreferences(ctx, s.theme, s.locale, prefs); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientAuthService.completeSignIn").Msg("profile preferences not applied")
	}

	s.logger.Info().Str("func", "clientAuthService.completeSignIn").Bool("admin", user.IsAdmin).Msg("signed in")
	return router.PathHome, nil
}

func (s *clientAuthService) CancelSecondFactor() string {
	s.session.cancelSecondFactor()
	return router.PathLogin
}

func (s *clientAuthService) Logout(ctx context.Context) string {
	s.session.clear(ctx)
	return router.PathHome
}

func (s *clientAuthService) GenerateBackupCodes(ctx context.Context, count int) ([]string, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, ErrLoginRequired
	}
	if count <= 0 {
		count = DefaultBackupCodeCount
	}

	codes, err := s.serverAdapter.GenerateBackupCodes(ctx, models.GenerateBackupCodesRequest{Email: user.Email, Count: count})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.GenerateBackupCodes").Msg("error generating backup codes")
		return nil, mapAdapterError(err)
	}
	return codes, nil
}

// IsValidationError reports whether err was raised before any request was
// sent.
func IsValidationError(err error) bool {
	return errors.Is(err, validators.ErrInvalidInput)
}
