package models

// User is the signed-in principal mirrored by the client.
//
// Email is the primary key on the backend. ID defaults to the email when the
// backend does not return a separate identifier.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
}

// DisplayName returns "First Last" when known, otherwise the email.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// Profile is the editable profile returned by GET /user/profile.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DarkMode  bool   `json:"darkMode"`
	Language  string `json:"language"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Preferences is the UI preference pair stored both locally and on the
// backend profile.
type Preferences struct {
	DarkMode bool   `json:"darkMode"`
	Language string `json:"language"`
}

// BackupCodeStats counts the second-factor recovery codes of a user.
type BackupCodeStats struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}
