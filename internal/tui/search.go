package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchName = iota
	searchMinTemp
	searchMaxTemp
	searchMinDistance
	searchMaxDistance
	searchMinYear
	searchMaxYear
	searchFieldCount
)

var searchLabels = [searchFieldCount]string{
	i18n.SearchName,
	i18n.SearchMinTemp,
	i18n.SearchMaxTemp,
	i18n.SearchMinDistance,
	i18n.SearchMaxDistance,
	i18n.SearchMinYear,
	i18n.SearchMaxYear,
}

// SearchModel is the filter form plus the paged result list. Focus moves
// through the inputs and then onto the results, where the arrow keys page.
// Every fetch goes through the search coordinator so a slow answer to an
// old query can never replace a newer one.
type SearchModel struct {
	env *env

	inputs []textinput.Model
	focus  int
	errMsg string

	list  cardList
	pages paginator.Model
}

func newSearchModel(e *env, _ router.Route) tea.Model {
	inputs := make([]textinput.Model, searchFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 24
		inputs[i].CharLimit = 100
	}
	inputs[searchName].Focus()

	pages := paginator.New()
	pages.Type = paginator.Dots

	return &SearchModel{
		env:    e,
		inputs: inputs,
		list:   newCardList(),
		pages:  pages,
	}
}

// Init drops whatever filter a previous visit left and loads the first page
// of the unfiltered catalog.
func (m *SearchModel) Init() tea.Cmd {
	m.env.services.Search.Reset()
	ticket := m.env.services.Search.Begin(models.SearchFilter{})
	return tea.Batch(textinput.Blink, m.list.spinner.Tick, m.cmdFetch(ticket))
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		if m.env.services.Search.Apply(msg.result) {
			m.sync()
		}
		return m, nil
	case tea.KeyMsg:
		if m.resultsFocused() {
			return m.updateResults(msg)
		}
		return m.updateForm(msg)
	}

	if cmd := m.list.tick(msg); cmd != nil {
		return m, cmd
	}
	if m.resultsFocused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SearchModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, keys.clear):
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.errMsg = ""
		return m, m.submit()
	case key.Matches(msg, keys.enter):
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SearchModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.env.services.Search.State()

	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus(0)
	case key.Matches(msg, keys.backtab):
		m.setFocus(searchFieldCount - 1)
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.enter):
		if item, ok := m.list.selected(); ok {
			return m, navigate(router.ExoplanetPath(item.ID))
		}
	case key.Matches(msg, keys.left):
		if state.Page > 0 && !state.Loading {
			return m, m.begin(m.env.services.Search.SetPage(state.Page - 1))
		}
	case key.Matches(msg, keys.right):
		if state.Page+1 < state.TotalPages && !state.Loading {
			return m, m.begin(m.env.services.Search.SetPage(state.Page + 1))
		}
	case key.Matches(msg, keys.pageSize):
		return m, m.begin(m.env.services.Search.SetSize(nextPageSize(state.Size)))
	}
	return m, nil
}

// submit validates the bounds and starts a search from the first page.
func (m *SearchModel) submit() tea.Cmd {
	filter := m.filter()
	if err := m.env.services.Validator.Validate(m.env.ctx, filter); err != nil {
		m.errMsg = m.env.errorText(err)
		return nil
	}
	m.errMsg = ""
	return m.begin(m.env.services.Search.SetFilter(filter))
}

func (m *SearchModel) begin(ticket service.SearchTicket) tea.Cmd {
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdFetch(ticket))
}

func (m *SearchModel) filter() models.SearchFilter {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.SearchFilter{
		Name:        v(searchName),
		MinTemp:     v(searchMinTemp),
		MaxTemp:     v(searchMaxTemp),
		MinDistance: v(searchMinDistance),
		MaxDistance: v(searchMaxDistance),
		MinYear:     v(searchMinYear),
		MaxYear:     v(searchMaxYear),
	}
}

// sync copies the coordinator's state into the list and the paginator.
func (m *SearchModel) sync() {
	state := m.env.services.Search.State()
	if state.Err != nil {
		m.list.setError(m.env.errorText(state.Err))
	} else {
		m.list.setItems(state.Items)
	}
	m.pages.SetTotalPages(max(state.TotalPages, 1))
	m.pages.Page = state.Page
}

func (m *SearchModel) resultsFocused() bool {
	return m.focus == searchFieldCount
}

func (m *SearchModel) setFocus(i int) {
	n := searchFieldCount + 1
	i = (i%n + n) % n

	if !m.resultsFocused() {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if !m.resultsFocused() {
		m.inputs[m.focus].Focus()
	}
}

func (m *SearchModel) View() string {
	e := m.env
	p := e.palette()
	state := e.services.Search.State()

	labels := make([]string, searchFieldCount)
	for i, k := range searchLabels {
		labels[i] = e.t(k)
	}
	width := labelWidth(labels...)

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(formRow(labels[i], width, input.View()))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(p.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.accent.Render(e.t(i18n.SearchResults, strconv.FormatInt(state.TotalElements, 10))))
	b.WriteString("  ")
	b.WriteString(p.muted.Render(e.t(i18n.SearchPageSize, strconv.Itoa(state.Size))))
	b.WriteString("\n")
	b.WriteString(m.list.View(e, i18n.SearchNoResults, m.resultsFocused()))
	b.WriteString("\n\n")
	if state.TotalPages > 0 {
		b.WriteString(e.t(i18n.SearchPageOf, strconv.Itoa(state.Page+1), strconv.Itoa(state.TotalPages)))
		b.WriteString("  ")
		b.WriteString(p.muted.Render(m.pages.View()))
	}

	hotKeys := e.t(i18n.HelpSearch)
	if m.resultsFocused() {
		hotKeys = e.t(i18n.HelpResults)
	}
	return e.page(e.t(i18n.SearchTitle), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SearchModel) cmdFetch(ticket service.SearchTicket) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return searchResultMsg{result: e.services.Search.Fetch(e.ctx, ticket)}
	}
}

// nextPageSize cycles through the offered page sizes.
func nextPageSize(current int) int {
	for i, size := range models.PageSizeOptions {
		if size == current {
			return models.PageSizeOptions[(i+1)%len(models.PageSizeOptions)]
		}
	}
	return models.PageSizeOptions[0]
}
