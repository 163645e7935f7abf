package service

import (
	"context"

	"github.com/MKhiriev/exo-explorer/models"
)

// ClientAuthService drives the two-step sign-in. Methods that navigate
// return the path the client should go to next.
type ClientAuthService interface {
	// Login validates the form, submits the credentials and on success
	// records the email as awaiting a second factor. Returns /verify-otp.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup validates the form (email, password of at least 6 characters,
	// matching confirmation) without any request on failure, then registers
	// the account. Returns /verify-otp.
	Signup(ctx context.Context, email, password, confirm string) (string, error)

	// VerifyOtp exchanges the emailed code for a session. Without a pending
	// email it returns /login and ErrNoPendingEmail and sends nothing.
	VerifyOtp(ctx context.Context, code string) (string, error)

	// VerifyBackupCode is VerifyOtp for single-use recovery codes.
	VerifyBackupCode(ctx context.Context, code string) (string, error)

	// CancelSecondFactor forgets the pending email. Returns /login.
	CancelSecondFactor() string

	// Logout clears the session everywhere. Returns /.
	Logout(ctx context.Context) string

	// GenerateBackupCodes issues count codes (DefaultBackupCodeCount when
	// count <= 0) for the signed-in user.
	GenerateBackupCodes(ctx context.Context, count int) ([]string, error)
}

// ClientCatalogService serves the home and detail views.
type ClientCatalogService interface {
	Latest(ctx context.Context, n int) ([]models.ExoplanetSummary, error)
	Details(ctx context.Context, id int64) (models.ExoplanetDetails, error)

	// Describe renders the generated prose overview in lang.
	Describe(details models.ExoplanetDetails, lang string) string
}

// ClientFavoritesService manages the signed-in user's favorites.
type ClientFavoritesService interface {
	// Toggle returns !current once the backend confirmed, or current and
	// ErrLoginRequired without a request when nobody is signed in.
	Toggle(ctx context.Context, exoplanetID int64, current bool) (bool, error)
	List(ctx context.Context) ([]models.Exoplanet, error)
	Contains(ctx context.Context, exoplanetID int64) (bool, error)
}

// ClientProfileService backs the profile view.
type ClientProfileService interface {
	Load(ctx context.Context) (ProfileView, error)
	Save(ctx context.Context, form models.ProfileForm) error
	ChangePassword(ctx context.Context, form models.ChangePasswordForm) error
	ApplyPreferences(ctx context.Context, theme models.Theme, language string) error
}

// ClientAdminService runs the admin view's data-management actions.
type ClientAdminService interface {
	TryStart(action AdminAction) bool
	Finish(action AdminAction)
	InFlight(action AdminAction) bool
	Run(ctx context.Context, action AdminAction, confirmed bool) (string, error)
}
