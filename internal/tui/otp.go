package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// OtpModel is the second-factor screen. It verifies either the emailed
// one-time code or, after ctrl+b, a backup code.
type OtpModel struct {
	env *env

	input      textinput.Model
	backup     bool
	submitting bool
	errMsg     string
}

func newOtpModel(e *env, _ router.Route) tea.Model {
	in := textinput.New()
	in.Width = 34
	in.Focus()

	m := &OtpModel{env: e, input: in}
	m.setMode(false)
	return m
}

func (m *OtpModel) setMode(backup bool) {
	m.backup = backup
	m.errMsg = ""
	m.input.SetValue("")
	if backup {
		m.input.CharLimit = 32
		m.input.Placeholder = "XXXX-XXXX"
	} else {
		m.input.CharLimit = 6
		m.input.Placeholder = "123456"
	}
}

func (m *OtpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *OtpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		return m, handleAuthDone(m.env, result, &m.errMsg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(m.env.services.AuthService.CancelSecondFactor())
		case key.Matches(keyMsg, keys.switchOtp):
			if !m.submitting {
				m.setMode(!m.backup)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(strings.TrimSpace(m.input.Value()), m.backup)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *OtpModel) View() string {
	e := m.env
	p := e.palette()

	label, other := e.t(i18n.OtpCode), e.t(i18n.OtpUseBackup)
	if m.backup {
		label, other = e.t(i18n.OtpBackup), e.t(i18n.OtpUseOtp)
	}

	var b strings.Builder
	b.WriteString(e.t(i18n.OtpHint, e.services.Session.PendingEmail()))
	b.WriteString("\n\n")
	b.WriteString(formRow(label, len([]rune(label)), m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(submitButton(e, i18n.OtpSubmit, m.submitting))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.muted.Render("ctrl+b: " + other))
	b.WriteString("\n")
	b.WriteString(p.muted.Render("esc: " + e.t(i18n.OtpCancel)))

	return e.page(e.t(i18n.OtpTitle), b.String(), e.t(i18n.HelpOtp))
}

func (m *OtpModel) cmdVerify(code string, backup bool) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		verify := e.services.AuthService.VerifyOtp
		if backup {
			verify = e.services.AuthService.VerifyBackupCode
		}
		next, err := verify(e.ctx, code)
		return authDoneMsg{next: next, err: err}
	}
}
