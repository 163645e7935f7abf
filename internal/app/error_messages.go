// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the exoplanet API puts in its
// error envelopes and {message} bodies.
//
// The backend answers in French. The stub API writes these exact strings and
// the client service layer matches on them to tell apart failures that share
// a status code (a wrong password and a wrong OTP are both 401).
package app

const (
	// MsgBadCredentials is returned by POST /auth/login for an unknown email
	// or a wrong password.
	MsgBadCredentials = "Email ou mot de passe incorrect"

	// MsgWrongCurrentPassword is returned by POST /user/change-password when
	// the current password does not match.
	MsgWrongCurrentPassword = "Mot de passe actuel incorrect"

	MsgInvalidOtp  = "OTP invalide"
	MsgOtpExpired  = "OTP expiré"
	MsgOtpNotFound = "Aucun OTP généré pour cet utilisateur"

	// MsgInvalidBackupCode is returned with 400 by POST /auth/verify-backup-code.
	MsgInvalidBackupCode = "Code de secours invalide"

	// MsgUserAlreadyExists is returned with 409 by POST /auth/signup.
	MsgUserAlreadyExists = "Cet utilisateur existe déjà"

	MsgUserNotFound      = "Utilisateur introuvable"
	MsgExoplanetNotFound = "Exoplanète introuvable"

	MsgEmailRequired          = "Email requis"
	MsgExoplanetIDRequired    = "ID exoplanète requis"
	MsgPasswordFieldsRequired = "Tous les champs sont requis pour changer le mot de passe"
	MsgMalformedJSON          = "Corps JSON mal formé"
	MsgValidationFailed       = "Erreur de validation"
	MsgInternalServerError    = "Erreur interne du serveur"

	// Success bodies.
	MsgSignupSucceeded        = "Inscription réussie"
	MsgOtpSent                = "Code OTP envoyé par email"
	MsgOtpVerified            = "OTP vérifié avec succès. Connexion terminée."
	MsgBackupCodeVerified     = "Backup code vérifié avec succès"
	MsgFavoriteToggled        = "Favorite toggled successfully"
	MsgProfileUpdated         = "Profile updated successfully"
	MsgPasswordChanged        = "Password changed successfully"
	MsgPreferencesUpdated     = "Preferences updated successfully"
	MsgExoplanetsRefreshed    = "Exoplanet data refreshed successfully"
	MsgSampleExoplanetsLoaded = "500 exoplanètes insérées avec succès."
	MsgHabitableLoaded        = "%d exoplanètes habitables insérées avec succès."
	MsgExoplanetDeleted       = "Exoplanet deleted successfully"
	MsgExoplanetsCleared      = "Toutes les exoplanètes ont été supprimées."
)
