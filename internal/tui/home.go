package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel shows the latest discoveries and the way into search.
type HomeModel struct {
	env  *env
	list cardList
}

func newHomeModel(e *env, _ router.Route) tea.Model {
	return &HomeModel{env: e, list: newCardList()}
}

func (m *HomeModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadLatest())
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		if msg.err != nil {
			m.list.setError(m.env.errorText(msg.err))
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.list.move(-1)
		case key.Matches(msg, keys.down):
			m.list.move(1)
		case key.Matches(msg, keys.enter):
			if item, ok := m.list.selected(); ok {
				return m, navigate(router.ExoplanetPath(item.ID))
			}
		case key.Matches(msg, keys.explore):
			return m, navigate(router.PathSearch)
		}
		return m, nil
	}

	return m, m.list.tick(msg)
}

func (m *HomeModel) View() string {
	e := m.env
	p := e.palette()

	var b strings.Builder
	b.WriteString(e.t(i18n.HomeSubtitle))
	b.WriteString("\n\n")
	b.WriteString(p.accent.Render(e.t(i18n.HomeLatest)))
	b.WriteString("\n")
	b.WriteString(m.list.View(e, i18n.SearchNoResults, true))
	b.WriteString("\n\n")
	b.WriteString(p.accent.Render("[s] " + e.t(i18n.HomeStartExploring)))

	return e.page(e.t(i18n.HomeTitle), b.String(), e.t(i18n.HelpHome))
}

func (m *HomeModel) cmdLoadLatest() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		items, err := e.services.CatalogService.Latest(e.ctx, service.LatestDiscoveriesCount)
		return latestLoadedMsg{items: items, err: err}
	}
}
