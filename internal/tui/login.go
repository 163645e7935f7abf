// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. Success moves on to the second-factor screen.
type LoginModel struct {
	env *env

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel(e *env, _ router.Route) tea.Model {
	emailInput := textinput.New()
	emailInput.Placeholder = "user@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	return &LoginModel{
		env:    e,
		inputs: []textinput.Model{emailInput, newPasswordInput()},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] clears the submitting state and either navigates on or
//     reports the error.
//   - tab / shift+tab move focus between the inputs.
//   - enter dispatches the async login command.
//   - ctrl+n opens the signup screen.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		return m, handleAuthDone(m.env, result, &m.errMsg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.toSignup):
			return m, navigate(router.PathSignup)
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
			return m, m.cmdLogin(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	e := m.env
	p := e.palette()
	labels := []string{e.t(i18n.LoginEmail), e.t(i18n.LoginPassword)}
	width := labelWidth(labels...)

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(formRow(labels[i], width, input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(submitButton(e, i18n.LoginSubmit, m.submitting))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.muted.Render(e.t(i18n.LoginNoAccount)))

	return e.page(e.t(i18n.LoginTitle), b.String(), e.t(i18n.HelpForm))
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		next, err := e.services.AuthService.Login(e.ctx, email, password)
		return authDoneMsg{next: next, err: err}
	}
}

// handleAuthDone is shared by the login, signup and code screens. Errors
// caught before any request stay inline on the form; backend rejections go
// to the notification modal.
func handleAuthDone(e *env, result authDoneMsg, errMsg *string) tea.Cmd {
	if result.err == nil {
		*errMsg = ""
		return navigate(result.next)
	}

	switch {
	case errors.Is(result.err, service.ErrNoPendingEmail):
		*errMsg = ""
	case service.IsValidationError(result.err):
		*errMsg = e.errorText(result.err)
	default:
		*errMsg = ""
		e.services.Notifier.Error(e.errorText(result.err))
	}
	if result.next != "" {
		return navigate(result.next)
	}
	return nil
}

func newPasswordInput() textinput.Model {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	n := len(inputs)
	focus = ((focus+delta)%n + n) % n
	inputs[focus].Focus()
	return focus
}

func submitButton(e *env, labelKey string, submitting bool) string {
	if submitting {
		return "[" + e.t(i18n.CommonLoading) + "]"
	}
	return e.palette().accent.Render("[" + e.t(labelKey) + "]")
}
