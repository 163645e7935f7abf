package tui

import (
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FavoritesModel lists the signed-in user's favorites.
type FavoritesModel struct {
	env  *env
	list cardList
}

func newFavoritesModel(e *env, _ router.Route) tea.Model {
	return &FavoritesModel{env: e, list: newCardList()}
}

func (m *FavoritesModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoad())
}

func (m *FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		if msg.err != nil {
			m.list.setError(m.env.errorText(msg.err))
			return m, nil
		}
		items := make([]models.ExoplanetSummary, 0, len(msg.items))
		for _, planet := range msg.items {
			items = append(items, planet.Summary())
		}
		m.list.setItems(items)
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
		}
		return m, nil
	}

	return m, m.list.tick(msg)
}

func (m *FavoritesModel) View() string {
	e := m.env
	return e.page(e.t(i18n.FavoritesTitle), m.list.View(e, i18n.FavoritesEmpty, true), e.t(i18n.HelpList))
}

func (m *FavoritesModel) cmdLoad() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		items, err := e.services.FavoritesService.List(e.ctx)
		return favoritesLoadedMsg{items: items, err: err}
	}
}
