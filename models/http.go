package models

// Credentials is the body of POST /auth/login and POST /auth/signup.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OtpVerificationRequest is the body of POST /auth/verify-otp.
type OtpVerificationRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// BackupCodeVerificationRequest is the body of POST /auth/verify-backup-code.
type BackupCodeVerificationRequest struct {
	Email      string `json:"email"`
	BackupCode string `json:"backupCode"`
}

// GenerateBackupCodesRequest is the body of POST /auth/generate-backup-codes.
type GenerateBackupCodesRequest struct {
	Email string `json:"email"`
	Count int    `json:"count"`
}

// MessageResponse is the {message} body returned by most mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by every /auth endpoint that answers with a JSON
// object. Token and IsAdmin are only set by the verification endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// ToggleFavoriteRequest is the body of POST /user/toggle-favorite.
type ToggleFavoriteRequest struct {
	Email       string `json:"email"`
	ExoplanetID int64  `json:"exoplanetId"`
}

// UpdateProfileRequest is the body of PUT /user/update-profile.
type UpdateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ChangePasswordRequest is the body of POST /user/change-password.
type ChangePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePreferencesRequest is the body of PUT /user/preferences.
type UpdatePreferencesRequest struct {
	Email    string `json:"email"`
	DarkMode bool   `json:"darkMode"`
	Language string `json:"language"`
}

// ErrorResponse is the error envelope produced by the backend exception
// handler. Timestamp is kept as text since the backend omits the zone.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}
