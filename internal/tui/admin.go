package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var adminLabels = map[service.AdminAction]string{
	service.AdminRefresh:         i18n.AdminRefresh,
	service.AdminInsert500:       i18n.AdminInsert500,
	service.AdminInsertHabitable: i18n.AdminInsertHabitable,
	service.AdminClearExoplanets: i18n.AdminClearExoplanets,
	service.AdminResetDB:         i18n.AdminResetDB,
	service.AdminResetAll:        i18n.AdminResetAll,
}

// AdminModel lists the data-management actions. Destructive ones wait for a
// y/n confirmation; each action can run once at a time while the others
// stay available.
type AdminModel struct {
	env *env
	idx int

	pending *service.AdminAction
}

func newAdminModel(e *env, _ router.Route) tea.Model {
	return &AdminModel{env: e}
}

func (m *AdminModel) Init() tea.Cmd { return nil }

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pending != nil {
			return m, m.updateConfirm(msg)
		}
		switch {
		case key.Matches(msg, keys.up):
			m.idx = max(m.idx-1, 0)
		case key.Matches(msg, keys.down):
			m.idx = min(m.idx+1, len(service.AdminActions)-1)
		case key.Matches(msg, keys.enter):
			action := service.AdminActions[m.idx]
			if action.Destructive() {
				m.pending = &action
				return m, nil
			}
			return m, m.start(action, false)
		}
	}
	return m, nil
}

func (m *AdminModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	action := *m.pending
	switch {
	case key.Matches(msg, keys.yes):
		m.pending = nil
		return m.start(action, true)
	case key.Matches(msg, keys.no):
		m.pending = nil
	}
	return nil
}

// start claims the action and runs it. A second request for an action that
// is still running is dropped. The claim is released when the request
// returns, whichever page is open by then.
func (m *AdminModel) start(action service.AdminAction, confirmed bool) tea.Cmd {
	e := m.env
	if !e.services.AdminService.TryStart(action) {
		return nil
	}
	return func() tea.Msg {
		defer e.services.AdminService.Finish(action)

		message, err := e.services.AdminService.Run(e.ctx, action, confirmed)
		return adminDoneMsg{issuedBy: issuedBy{m}, action: action, message: message, err: err}
	}
}

func (msg adminDoneMsg) notification(e *env, _ bool) (models.Notification, bool) {
	label := e.t(adminLabels[msg.action])
	switch {
	case msg.err != nil:
		return failure(e.t(i18n.AdminFailed, label) + ": " + e.errorText(msg.err))
	case msg.message != "":
		return success(msg.message)
	default:
		return success(e.t(i18n.AdminDone, label))
	}
}

func (m *AdminModel) View() string {
	e := m.env
	p := e.palette()

	var b strings.Builder
	for i, action := range service.AdminActions {
		selected := i == m.idx
		line := cursor(selected) + " " + e.t(adminLabels[action])
		if action.Destructive() {
			line += " ⚠"
		}
		if selected {
			line = p.selected.Render(line)
		}
		b.WriteString(line)
		if e.services.AdminService.InFlight(action) {
			b.WriteString("  ")
			b.WriteString(p.muted.Render(e.t(i18n.AdminRunning)))
		}
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	if m.pending != nil {
		content += "\n\n" + confirmModel{label: e.t(adminLabels[*m.pending])}.View(e)
	}
	return e.page(e.t(i18n.AdminTitle), content, e.t(i18n.HelpAdmin))
}
