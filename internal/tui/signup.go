package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignupModel is the registration screen: email, password and its
// confirmation. The form is validated before anything is sent.
type SignupModel struct {
	env *env

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSignupModel(e *env, _ router.Route) tea.Model {
	emailInput := textinput.New()
	emailInput.Placeholder = "user@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	return &SignupModel{
		env:    e,
		inputs: []textinput.Model{emailInput, newPasswordInput(), newPasswordInput()},
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		return m, handleAuthDone(m.env, result, &m.errMsg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.toLogin):
			return m, navigate(router.PathLogin)
		case key.Matches(keyMsg, keys.tab):
			m.focus = cycleFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = cycleFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value(), m.inputs[2].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	e := m.env
	p := e.palette()
	labels := []string{e.t(i18n.LoginEmail), e.t(i18n.LoginPassword), e.t(i18n.SignupConfirmPassword)}
	width := labelWidth(labels...)

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(formRow(labels[i], width, input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(submitButton(e, i18n.SignupSubmit, m.submitting))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.muted.Render(e.t(i18n.SignupHaveAccount)))

	return e.page(e.t(i18n.SignupTitle), b.String(), e.t(i18n.HelpForm))
}

func (m *SignupModel) cmdSignup(email, password, confirm string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		next, err := e.services.AuthService.Signup(e.ctx, email, password, confirm)
		return authDoneMsg{next: next, err: err}
	}
}
