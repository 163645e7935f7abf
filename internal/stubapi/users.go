package stubapi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/exo-explorer/models"
	"golang.org/x/crypto/bcrypt"
)

// Favorites lists the favorite exoplanets of email in the order they were
// added. Favorites whose exoplanet was deleted are skipped.
func (b *Backend) Favorites(email string) ([]models.Exoplanet, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	u, err := b.userLocked(email)
	if err != nil {
		return nil, err
	}

	favorites := make([]models.Exoplanet, 0, len(u.favorites))
	for _, id := range u.favorites {
		if e, ok := b.exoplanets[id]; ok {
			favorites = append(favorites, e)
		}
	}
	return favorites, nil
}

// ToggleFavorite adds the exoplanet to the favorites of email, or removes it
// when it is already there. It reports whether the exoplanet is a favorite
// afterwards.
func (b *Backend) ToggleFavorite(req models.ToggleFavoriteRequest) (bool, error) {
	if strings.TrimSpace(req.Email) == "" {
		return false, ErrEmailRequired
	}
	if req.ExoplanetID <= 0 {
		return false, ErrExoplanetIDRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(req.Email)
	if err != nil {
		return false, err
	}
	if _, ok := b.exoplanets[req.ExoplanetID]; !ok {
		return false, fmt.Errorf("%w: %d", ErrExoplanetNotFound, req.ExoplanetID)
	}

	// Drop favorites of deleted exoplanets while the list is being rewritten.
	u.favorites = slices.DeleteFunc(u.favorites, func(id int64) bool {
		_, ok := b.exoplanets[id]
		return !ok
	})

	if i := slices.Index(u.favorites, req.ExoplanetID); i >= 0 {
		u.favorites = slices.Delete(u.favorites, i, i+1)
		b.logger.Info().Str("func", "Backend.ToggleFavorite").Str("email", u.email).Int64("exoplanet_id", req.ExoplanetID).Msg("favorite removed")
		return false, nil
	}

	u.favorites = append(u.favorites, req.ExoplanetID)
	b.logger.Info().Str("func", "Backend.ToggleFavorite").Str("email", u.email).Int64("exoplanet_id", req.ExoplanetID).Msg("favorite added")
	return true, nil
}

// Profile returns the profile and preferences of email.
func (b *Backend) Profile(email string) (models.Profile, error) {
	if strings.TrimSpace(email) == "" {
		return models.Profile{}, ErrEmailRequired
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	u, err := b.userLocked(email)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Email:     u.email,
		FirstName: u.firstName,
		LastName:  u.lastName,
		DarkMode:  u.darkMode,
		Language:  u.language,
		IsAdmin:   u.isAdmin,
	}, nil
}

func (b *Backend) UpdateProfile(req models.UpdateProfileRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	firstName, lastName := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	if err := b.validate.Var(firstName, "max=50"); err != nil {
		return fmt.Errorf("%w: firstName: %w", ErrValidation, err)
	}
	if err := b.validate.Var(lastName, "max=50"); err != nil {
		return fmt.Errorf("%w: lastName: %w", ErrValidation, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(req.Email)
	if err != nil {
		return err
	}
	u.firstName, u.lastName = firstName, lastName

	return nil
}

// ChangePassword replaces the password of email once the current one has
// been checked.
func (b *Backend) ChangePassword(req models.ChangePasswordRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrPasswordFieldsRequired
	}
	if err := b.validate.Var(req.NewPassword, "min=6"); err != nil {
		return fmt.Errorf("%w: newPassword: %w", ErrValidation, err)
	}

	b.mu.RLock()
	u, err := b.userLocked(req.Email)
	var current []byte
	if err == nil {
		current = u.passwordHash
	}
	b.mu.RUnlock()
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword(current, []byte(req.CurrentPassword)) != nil {
		b.logger.Warn().Str("func", "Backend.ChangePassword").Str("email", req.Email).Msg("failed password change attempt")
		return ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), b.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err = b.userLocked(req.Email)
	if err != nil {
		return err
	}
	u.passwordHash = hash

	b.logger.Info().Str("func", "Backend.ChangePassword").Str("email", u.email).Msg("password changed")

	return nil
}

// UpdatePreferences stores the theme and language of email. An empty
// language keeps the current one.
func (b *Backend) UpdatePreferences(req models.UpdatePreferencesRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	if req.Language != "" && !models.IsSupportedLanguage(req.Language) {
		return fmt.Errorf("%w: unsupported language %q", ErrValidation, req.Language)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.userLocked(req.Email)
	if err != nil {
		return err
	}
	u.darkMode = req.DarkMode
	if req.Language != "" {
		u.language = req.Language
	}

	return nil
}
