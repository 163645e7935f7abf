package tui

import (
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the root model to open Path. The path goes through the
// route guards first.
type NavigateTo struct {
	Path string
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}

// authDoneMsg ends a login, signup or code verification. next is where the
// service wants the user to go.
type authDoneMsg struct {
	next string
	err  error
}

type logoutDoneMsg struct {
	next string
}

type preferencesChangedMsg struct {
	err error
}

type latestLoadedMsg struct {
	items []models.ExoplanetSummary
	err   error
}

type searchResultMsg struct {
	result service.SearchResult
}

type detailsLoadedMsg struct {
	details  models.ExoplanetDetails
	favorite bool
	err      error
}

type favoriteToggledMsg struct {
	issuedBy
	favorite bool
	err      error
}

type favoritesLoadedMsg struct {
	items []models.Exoplanet
	err   error
}

// profileLoadedMsg with statsOnly set refreshes the backup code counters
// without touching the form.
type profileLoadedMsg struct {
	view      service.ProfileView
	statsOnly bool
	err       error
}

type profileSavedMsg struct {
	issuedBy
	err error
}

type passwordChangedMsg struct {
	issuedBy
	err error
}

type preferencesAppliedMsg struct {
	issuedBy
	err error
}

type backupCodesMsg struct {
	issuedBy
	codes []string
	err   error
}

type copiedMsg struct {
	issuedBy
	err error
}

type adminDoneMsg struct {
	issuedBy
	action  service.AdminAction
	message string
	err     error
}

// resultMsg is the outcome of a command a page started. The root model
// shows its notification on whatever page is open when it arrives and hands
// it back to the issuing page only while that page is still active.
type resultMsg interface {
	origin() tea.Model
	// notification returns what to show. attached reports whether the
	// issuing page is still the active one.
	notification(e *env, attached bool) (models.Notification, bool)
}

// issuedBy records the page a result belongs to.
type issuedBy struct {
	page tea.Model
}

func (i issuedBy) origin() tea.Model { return i.page }

func success(message string) (models.Notification, bool) {
	return models.Notification{Message: message, Severity: models.SeveritySuccess}, true
}

func failure(message string) (models.Notification, bool) {
	return models.Notification{Message: message, Severity: models.SeverityError}, true
}

type countdownTickMsg struct {
	id int
}
