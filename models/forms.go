package models

// LoginForm is the login view's input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignupForm is the signup view's input. The confirmation never leaves the
// client.
type SignupForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// OtpForm carries the emailed six digit code.
type OtpForm struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,number"`
}

// BackupCodeForm carries a single-use recovery code.
type BackupCodeForm struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,max=32"`
}

// ChangePasswordForm is the password section of the profile view.
type ChangePasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// ProfileForm is the editable part of the profile view.
type ProfileForm struct {
	FirstName string `validate:"max=50"`
	LastName  string `validate:"max=50"`
	Language  string `validate:"required,oneof=en fr"`
	Theme     Theme  `validate:"required,oneof=light dark"`
}
