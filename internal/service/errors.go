package service

import "errors"

var (
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrUserNotFound         = errors.New("user not found")
	ErrExoplanetNotFound    = errors.New("exoplanet not found")
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrSessionExpired       = errors.New("session expired")
	ErrForbidden            = errors.New("forbidden")
	ErrServerError          = errors.New("server error")
	ErrServerUnavailable    = errors.New("server unavailable")

	ErrLoginRequired      = errors.New("login required")
	ErrNoPendingEmail     = errors.New("no pending email")
	ErrTokenNotReceived   = errors.New("token not received")
	ErrActionInProgress   = errors.New("action already in progress")
	ErrUnknownAction      = errors.New("unknown admin action")
	ErrConfirmationNeeded = errors.New("destructive action requires confirmation")

	ErrUnsupportedPreference = errors.New("unsupported preference value")
)
