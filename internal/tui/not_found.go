package tui

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var countdownSeq atomic.Int64

// NotFoundModel counts down and then sends the user home. Ticks carry the
// page id so a countdown from an earlier visit cannot drive this one.
type NotFoundModel struct {
	env       *env
	id        int
	remaining int
}

func newNotFoundModel(e *env, _ router.Route) tea.Model {
	seconds := int(e.opts.NotFoundRedirect.Round(time.Second) / time.Second)
	return &NotFoundModel{
		env:       e,
		id:        int(countdownSeq.Add(1)),
		remaining: max(seconds, 1),
	}
}

func (m *NotFoundModel) Init() tea.Cmd {
	return m.tick()
}

func (m *NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		if msg.id != m.id || m.remaining <= 0 {
			return m, nil
		}
		m.remaining--
		if m.remaining == 0 {
			return m, navigate(router.PathHome)
		}
		return m, m.tick()
	case tea.KeyMsg:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.remaining = 0
			return m, navigate(router.PathHome)
		}
	}
	return m, nil
}

func (m *NotFoundModel) View() string {
	e := m.env
	p := e.palette()

	content := e.t(i18n.NotFoundDescription) + "\n\n" +
		p.muted.Render(e.t(i18n.NotFoundRedirect, strconv.Itoa(m.remaining)))
	return e.page("404 "+e.t(i18n.NotFoundTitle), content, e.t(i18n.HelpNotFound))
}

func (m *NotFoundModel) tick() tea.Cmd {
	id := m.id
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{id: id}
	})
}
