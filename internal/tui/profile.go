package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus positions of the profile form, top to bottom.
const (
	profileFirstName = iota
	profileLastName
	profileTheme
	profileLanguage
	profileCurrentPassword
	profileNewPassword
	profileConfirmPassword
	profileFieldCount
)

// ProfileModel edits the personal data, the preferences and the password,
// and issues backup codes. The theme and language selectors only edit the
// form; the holders change when the user applies them with ctrl+a.
type ProfileModel struct {
	env *env

	inputs   map[int]*textinput.Model
	focus    int
	theme    models.Theme
	language string

	loading bool
	spinner spinner.Model
	email   string
	stats   *models.BackupCodeStats
	codes   []string

	saving     bool
	changing   bool
	applying   bool
	generating bool

	profileErr  string
	passwordErr string
}

func newProfileModel(e *env, _ router.Route) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	text := func() *textinput.Model {
		in := textinput.New()
		in.Width = 30
		in.CharLimit = 50
		return &in
	}
	password := func() *textinput.Model {
		in := newPasswordInput()
		in.Width = 30
		return &in
	}

	m := &ProfileModel{
		env: e,
		inputs: map[int]*textinput.Model{
			profileFirstName:       text(),
			profileLastName:        text(),
			profileCurrentPassword: password(),
			profileNewPassword:     password(),
			profileConfirmPassword: password(),
		},
		theme:    e.services.Theme.Theme(),
		language: e.lang(),
		loading:  true,
		spinner:  s,
	}
	m.inputs[profileFirstName].Focus()
	return m
}

func (m *ProfileModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdLoad(false))
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	e := m.env
	notifier := e.services.Notifier

	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			notifier.Error(e.errorText(msg.err))
			return m, nil
		}
		m.stats = msg.view.BackupCodes
		if !msg.statsOnly {
			m.fill(msg.view.Profile)
		}
		return m, nil
	case profileSavedMsg:
		m.saving = false
		m.profileErr = m.inlineError(msg.err)
		return m, nil
	case passwordChangedMsg:
		m.changing = false
		m.passwordErr = m.inlineError(msg.err)
		if msg.err == nil {
			for _, f := range []int{profileCurrentPassword, profileNewPassword, profileConfirmPassword} {
				m.inputs[f].SetValue("")
			}
		}
		return m, nil
	case preferencesAppliedMsg:
		m.applying = false
		m.profileErr = m.inlineError(msg.err)
		return m, nil
	case backupCodesMsg:
		m.generating = false
		if msg.err != nil {
			return m, nil
		}
		m.codes = msg.codes
		return m, m.cmdLoad(true)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	in, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m *ProfileModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus(m.focus + 1)
		return nil, true
	case key.Matches(msg, keys.backtab):
		m.setFocus(m.focus - 1)
		return nil, true
	case key.Matches(msg, keys.apply):
		if m.applying {
			return nil, true
		}
		m.applying = true
		return m.cmdApply(), true
	case key.Matches(msg, keys.generate):
		if m.generating {
			return nil, true
		}
		m.generating = true
		return m.cmdGenerate(), true
	case key.Matches(msg, keys.copyCodes):
		if len(m.codes) == 0 {
			return nil, true
		}
		return m.cmdCopy(), true
	case key.Matches(msg, keys.enter):
		if m.focus >= profileCurrentPassword {
			if m.changing {
				return nil, true
			}
			m.changing = true
			return m.cmdChangePassword(), true
		}
		if m.saving {
			return nil, true
		}
		m.saving = true
		return m.cmdSave(), true
	}

	if m.focus == profileTheme && (key.Matches(msg, keys.left) || key.Matches(msg, keys.right)) {
		m.theme = m.theme.Toggle()
		return nil, true
	}
	if m.focus == profileLanguage && (key.Matches(msg, keys.left) || key.Matches(msg, keys.right)) {
		m.language = nextLanguage(m.language)
		return nil, true
	}
	return nil, false
}

// inlineError returns the text shown under the form for validation errors.
// Every other outcome goes through the notification modal.
func (m *ProfileModel) inlineError(err error) string {
	if service.IsValidationError(err) {
		return m.env.errorText(err)
	}
	return ""
}

// formOutcome notifies a form result. Validation errors stay inline while
// the form is still open.
func formOutcome(e *env, err error, attached bool, successKey string) (models.Notification, bool) {
	switch {
	case err == nil:
		return success(e.t(successKey))
	case attached && service.IsValidationError(err):
		return models.Notification{}, false
	default:
		return failure(e.errorText(err))
	}
}

func (msg profileSavedMsg) notification(e *env, attached bool) (models.Notification, bool) {
	return formOutcome(e, msg.err, attached, i18n.ProfileSaved)
}

func (msg passwordChangedMsg) notification(e *env, attached bool) (models.Notification, bool) {
	return formOutcome(e, msg.err, attached, i18n.ChangePasswordSuccess)
}

func (msg preferencesAppliedMsg) notification(e *env, attached bool) (models.Notification, bool) {
	return formOutcome(e, msg.err, attached, i18n.ProfileApplied)
}

// The codes are shown once. When the profile page is gone by the time they
// arrive, the modal carries them instead.
func (msg backupCodesMsg) notification(e *env, attached bool) (models.Notification, bool) {
	switch {
	case msg.err != nil:
		return failure(e.errorText(msg.err))
	case attached:
		return models.Notification{}, false
	default:
		return success(e.t(i18n.BackupCodesIssued, strings.Join(msg.codes, " ")))
	}
}

func (msg copiedMsg) notification(e *env, _ bool) (models.Notification, bool) {
	if msg.err != nil {
		return failure(e.t(i18n.BackupCodesCopyFail))
	}
	return success(e.t(i18n.BackupCodesCopied))
}

func (m *ProfileModel) fill(p models.Profile) {
	m.email = p.Email
	m.inputs[profileFirstName].SetValue(p.FirstName)
	m.inputs[profileLastName].SetValue(p.LastName)
	m.theme = models.ThemeFromDarkMode(p.DarkMode)
	if models.IsSupportedLanguage(p.Language) {
		m.language = p.Language
	}
}

func (m *ProfileModel) setFocus(i int) {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
	}
	m.focus = (i%profileFieldCount + profileFieldCount) % profileFieldCount
	if in, ok := m.inputs[m.focus]; ok {
		in.Focus()
	}
}

func (m *ProfileModel) View() string {
	e := m.env
	p := e.palette()

	if m.loading {
		return e.page(e.t(i18n.ProfileTitle), m.spinner.View()+" "+e.t(i18n.CommonLoading), "")
	}

	labels := map[int]string{
		profileFirstName:       e.t(i18n.ProfileFirstName),
		profileLastName:        e.t(i18n.ProfileLastName),
		profileTheme:           e.t(i18n.ThemeToggle),
		profileLanguage:        e.t(i18n.LanguageSelect),
		profileCurrentPassword: e.t(i18n.ChangePasswordCurrent),
		profileNewPassword:     e.t(i18n.ChangePasswordNew),
		profileConfirmPassword: e.t(i18n.ChangePasswordConfirm),
	}
	all := make([]string, 0, len(labels))
	for _, l := range labels {
		all = append(all, l)
	}
	width := labelWidth(all...)

	row := func(f int) string {
		if in, ok := m.inputs[f]; ok {
			return formRow(labels[f], width, in.View())
		}
		value := m.selectorValue(f)
		line := fmt.Sprintf("%-*s │ ‹ %s ›", width, labels[f], value)
		if f == m.focus {
			return p.selected.Render(line)
		}
		return line
	}

	var b strings.Builder
	b.WriteString(p.muted.Render(m.email))
	b.WriteString("\n\n")

	b.WriteString(p.accent.Render(e.t(i18n.ProfilePersonal)))
	b.WriteString("\n")
	b.WriteString(row(profileFirstName) + "\n")
	b.WriteString(row(profileLastName) + "\n\n")

	b.WriteString(p.accent.Render(e.t(i18n.ProfilePreferences)))
	b.WriteString("\n")
	b.WriteString(row(profileTheme) + "\n")
	b.WriteString(row(profileLanguage) + "\n")
	b.WriteString(submitButton(e, i18n.CommonSave, m.saving) + " " + submitButton(e, i18n.ProfileApply, m.applying) + "\n")
	if m.profileErr != "" {
		b.WriteString(p.err.Render(m.profileErr) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(p.accent.Render(e.t(i18n.ChangePasswordTitle)))
	b.WriteString("\n")
	b.WriteString(row(profileCurrentPassword) + "\n")
	b.WriteString(row(profileNewPassword) + "\n")
	b.WriteString(row(profileConfirmPassword) + "\n")
	b.WriteString(submitButton(e, i18n.ChangePasswordSubmit, m.changing) + "\n")
	if m.passwordErr != "" {
		b.WriteString(p.err.Render(m.passwordErr) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(p.accent.Render(e.t(i18n.BackupCodesTitle)))
	b.WriteString("\n")
	if m.stats != nil {
		b.WriteString(e.t(i18n.BackupCodesStats,
			strconv.Itoa(m.stats.Available), strconv.Itoa(m.stats.Used), strconv.Itoa(m.stats.Total)))
		b.WriteString("\n")
	}
	if len(m.codes) > 0 {
		b.WriteString(p.muted.Render(e.t(i18n.BackupCodesHint)))
		b.WriteString("\n")
		for _, code := range m.codes {
			b.WriteString("  " + code + "\n")
		}
	}
	b.WriteString(submitButton(e, i18n.BackupCodesGenerate, m.generating))

	return e.page(e.t(i18n.ProfileTitle), b.String(), e.t(i18n.HelpProfile))
}

func (m *ProfileModel) selectorValue(f int) string {
	e := m.env
	if f == profileTheme {
		if m.theme.IsDark() {
			return e.t(i18n.ThemeDark)
		}
		return e.t(i18n.ThemeLight)
	}
	if m.language == models.LanguageFrench {
		return e.t(i18n.LanguageFR)
	}
	return e.t(i18n.LanguageEN)
}

func (m *ProfileModel) form() models.ProfileForm {
	return models.ProfileForm{
		FirstName: strings.TrimSpace(m.inputs[profileFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[profileLastName].Value()),
		Language:  m.language,
		Theme:     m.theme,
	}
}

func (m *ProfileModel) cmdLoad(statsOnly bool) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		view, err := e.services.ProfileService.Load(e.ctx)
		return profileLoadedMsg{view: view, statsOnly: statsOnly, err: err}
	}
}

func (m *ProfileModel) cmdSave() tea.Cmd {
	e := m.env
	form := m.form()
	return func() tea.Msg {
		return profileSavedMsg{issuedBy: issuedBy{m}, err: e.services.ProfileService.Save(e.ctx, form)}
	}
}

func (m *ProfileModel) cmdApply() tea.Cmd {
	e := m.env
	theme, language := m.theme, m.language
	return func() tea.Msg {
		return preferencesAppliedMsg{issuedBy: issuedBy{m}, err: e.services.ProfileService.ApplyPreferences(e.ctx, theme, language)}
	}
}

func (m *ProfileModel) cmdChangePassword() tea.Cmd {
	e := m.env
	form := models.ChangePasswordForm{
		CurrentPassword: m.inputs[profileCurrentPassword].Value(),
		NewPassword:     m.inputs[profileNewPassword].Value(),
		ConfirmPassword: m.inputs[profileConfirmPassword].Value(),
	}
	return func() tea.Msg {
		return passwordChangedMsg{issuedBy: issuedBy{m}, err: e.services.ProfileService.ChangePassword(e.ctx, form)}
	}
}

func (m *ProfileModel) cmdGenerate() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		codes, err := e.services.AuthService.GenerateBackupCodes(e.ctx, service.DefaultBackupCodeCount)
		return backupCodesMsg{issuedBy: issuedBy{m}, codes: codes, err: err}
	}
}

func (m *ProfileModel) cmdCopy() tea.Cmd {
	e := m.env
	text := strings.Join(m.codes, "\n")
	return func() tea.Msg {
		err := e.opts.Clipboard(text)
		if err != nil {
			e.logger.Warn().Err(err).Str("func", "ProfileModel.cmdCopy").Msg("clipboard write failed")
		}
		return copiedMsg{issuedBy: issuedBy{m}, err: err}
	}
}

func nextLanguage(current string) string {
	for i, lang := range models.SupportedLanguages {
		if lang == current {
			return models.SupportedLanguages[(i+1)%len(models.SupportedLanguages)]
		}
	}
	return models.SupportedLanguages[0]
}
