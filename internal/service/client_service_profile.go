package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/validators"
	"github.com/MKhiriev/exo-explorer/models"
)

// ProfileView is what the profile page shows. BackupCodes is nil when the
// backend refused the statistics.
type ProfileView struct {
	Profile     models.Profile
	BackupCodes *models.BackupCodeStats
}

type clientProfileService struct {
	users     adapter.UserAdapter
	session   *SessionHolder
	theme     *ThemeHolder
	locale    *LocaleHolder
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientProfileService(
	users adapter.UserAdapter,
	session *SessionHolder,
	theme *ThemeHolder,
	locale *LocaleHolder,
	validator validators.Validator,
	logger *logger.Logger,
) ClientProfileService {
	return &clientProfileService{
		users:     users,
		session:   session,
		theme:     theme,
		locale:    locale,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientProfileService) Load(ctx context.Context) (ProfileView, error) {
	user, ok := s.session.User()
	if !ok {
		return ProfileView{}, ErrLoginRequired
	}

	profile, err := s.users.GetProfile(ctx, user.Email)
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.Load").Msg("error loading profile")
		return ProfileView{}, mapAdapterError(err)
	}

	view := ProfileView{Profile: profile}

	// The statistics endpoint is restricted on some deployments.
	stats, err := s.users.GetBackupCodeStats(ctx, user.Email)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientProfileService.Load").Msg("backup code statistics unavailable")
	} else {
		view.BackupCodes = &stats
	}

	return view, nil
}

// Save stores names and preferences on the backend. The local holders are
// left alone; ApplyPreferences changes them.
func (s *clientProfileService) Save(ctx context.Context, form models.ProfileForm) error {
	user, ok := s.session.User()
	if !ok {
		return ErrLoginRequired
	}

	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	err := s.users.UpdateProfile(ctx, models.UpdateProfileRequest{
		Email:     user.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.Save").Msg("error updating profile")
		return mapAdapterError(err)
	}

	user.FirstName, user.LastName = form.FirstName, form.LastName
	s.session.updateUser(ctx, user)

	err = s.users.UpdatePreferences(ctx, models.UpdatePreferencesRequest{
		Email:    user.Email,
		DarkMode: form.Theme.IsDark(),
		Language: form.Language,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.Save").Msg("error updating preferences")
		return mapAdapterError(err)
	}

	return nil
}

func (s *clientProfileService) ChangePassword(ctx context.Context, form models.ChangePasswordForm) error {
	user, ok := s.session.User()
	if !ok {
		return ErrLoginRequired
	}
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	err := s.users.ChangePassword(ctx, models.ChangePasswordRequest{
		Email:           user.Email,
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.ChangePassword").Msg("error changing password")
		return mapAdapterError(err)
	}
	return nil
}

// ApplyPreferences is the explicit action that makes the form's theme and
// language the active ones.
func (s *clientProfileService) ApplyPreferences(ctx context.Context, theme models.Theme, language string) error {
	if err := s.validator.Validate(ctx, models.ProfileForm{Theme: theme, Language: language}, "Theme", "Language"); err != nil {
		return err
	}
	return applyPreferences(ctx, s.theme, s.locale, models.Preferences{DarkMode: theme.IsDark(), Language: language})
}
