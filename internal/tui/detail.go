package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type detailTab int

const (
	tabOverview detailTab = iota
	tabHabitability
	tabOrbit
	tabCount
)

var tabLabels = [tabCount]string{
	i18n.ExoTabOverview,
	i18n.ExoTabHabitability,
	i18n.ExoTabOrbit,
}

// DetailModel shows one exoplanet in three tabs and owns its favorite flag.
// The flag only changes after the backend confirmed the toggle.
type DetailModel struct {
	env *env
	id  int64

	details  models.ExoplanetDetails
	loading  bool
	errMsg   string
	tab      detailTab
	spinner  spinner.Model
	favorite bool
	toggling bool
}

func newDetailModel(e *env, route router.Route) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DetailModel{env: e, id: route.ExoplanetID, loading: true, spinner: s}
}

func (m *DetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.details = msg.details
		m.favorite = msg.favorite
		return m, nil
	case favoriteToggledMsg:
		m.toggling = false
		return m, m.handleToggled(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateBack{} }
		case key.Matches(msg, keys.left):
			m.tab = (m.tab - 1 + tabCount) % tabCount
		case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
			m.tab = (m.tab + 1) % tabCount
		case key.Matches(msg, keys.favorite):
			if m.loading || m.errMsg != "" || m.toggling {
				return m, nil
			}
			m.toggling = true
			return m, m.cmdToggle()
		}
	}
	return m, nil
}

// handleToggled keeps the flag the service reports, which is the previous
// one when the toggle failed.
func (m *DetailModel) handleToggled(msg favoriteToggledMsg) tea.Cmd {
	if errors.Is(msg.err, service.ErrLoginRequired) {
		return navigate(router.PathLogin)
	}
	m.favorite = msg.favorite
	return nil
}

func (msg favoriteToggledMsg) notification(e *env, attached bool) (models.Notification, bool) {
	switch {
	case errors.Is(msg.err, service.ErrLoginRequired) && attached:
		return models.Notification{}, false
	case msg.err != nil:
		return failure(e.errorText(msg.err))
	case msg.favorite:
		return success(e.t(i18n.ExoAddedFavorite))
	default:
		return success(e.t(i18n.ExoRemovedFavorite))
	}
}

func (m *DetailModel) View() string {
	e := m.env
	p := e.palette()

	if m.loading {
		return e.page(e.t(i18n.ExoDescriptionTitle), m.spinner.View()+" "+e.t(i18n.CommonLoading), e.t(i18n.HelpBack))
	}
	if m.errMsg != "" {
		return e.page(e.t(i18n.ExoDescriptionTitle), p.err.Render(m.errMsg), e.t(i18n.HelpBack))
	}

	var b strings.Builder
	for i, k := range tabLabels {
		style := p.tab
		if detailTab(i) == m.tab {
			style = p.tabActive
		}
		b.WriteString(style.Render(e.t(k)))
	}
	b.WriteString("\n\n")

	switch m.tab {
	case tabOverview:
		b.WriteString(m.overview())
	case tabHabitability:
		b.WriteString(m.habitability())
	case tabOrbit:
		b.WriteString(m.orbit())
	}

	b.WriteString("\n\n")
	b.WriteString(m.favoriteLabel())

	return e.page(m.details.Name, b.String(), e.t(i18n.HelpDetail))
}

func (m *DetailModel) favoriteLabel() string {
	e := m.env
	p := e.palette()

	switch {
	case !e.services.Session.IsAuthenticated():
		return p.muted.Render("[f] " + e.t(i18n.ExoLoginToFavorite))
	case m.toggling:
		return p.muted.Render("[f] " + e.t(i18n.CommonLoading))
	case m.favorite:
		return p.accent.Render("[f] ★ " + e.t(i18n.ExoRemoveFavorite))
	default:
		return p.accent.Render("[f] ☆ " + e.t(i18n.ExoAddFavorite))
	}
}

func (m *DetailModel) overview() string {
	e := m.env
	d := m.details

	rows := [][2]string{
		{e.t(i18n.ExoDistance), e.measure(d.Distance, 2, i18n.ExoLightYears)},
		{e.t(i18n.ExoTemperature), e.measure(d.Temperature, 0, i18n.ExoKelvin)},
		{e.t(i18n.ExoDiscoveryYear), e.year(d.YearDiscovered)},
		{e.t(i18n.ExoMass), e.measure(d.Mass, 2, i18n.ExoEarthMasses)},
		{e.t(i18n.ExoRadius), e.measure(d.Radius, 2, i18n.ExoEarthRadii)},
	}
	return renderRows(rows) + "\n\n" + e.services.CatalogService.Describe(d, e.lang())
}

func (m *DetailModel) habitability() string {
	e := m.env
	p := e.palette()
	d := m.details

	var b strings.Builder
	if d.PotentiallyHabitable {
		b.WriteString(p.success.Render("✓ " + e.t(i18n.ExoHabitable)))
		b.WriteString("\n")
		b.WriteString(renderRows([][2]string{
			{e.t(i18n.ExoTemperature), e.t(i18n.ExoTempDesc)},
			{e.t(i18n.ExoAtmosphere), e.t(i18n.ExoAtmosphereDesc)},
			{e.t(i18n.ExoSurface), e.t(i18n.ExoSurfaceDesc)},
		}))
	} else {
		b.WriteString(p.muted.Render(e.t(i18n.ExoNotHabitable)))
	}

	if d.Temperature != nil {
		temp := e.services.Bundle.Number(e.lang(), *d.Temperature, 0)
		b.WriteString("\n\n")
		switch service.Band(d.Temperature) {
		case service.BandBelow:
			b.WriteString(e.t(i18n.ExoBelowBand, temp))
		case service.BandAbove:
			b.WriteString(e.t(i18n.ExoAboveBand, temp))
		case service.BandWithin:
			b.WriteString(e.t(i18n.ExoWithinBand, temp))
		}
	}

	var comparisons [][2]string
	if d.EarthSizeComparison != "" {
		comparisons = append(comparisons, [2]string{e.t(i18n.ExoSizeComparison), d.EarthSizeComparison})
	}
	if d.EarthMassComparison != "" {
		comparisons = append(comparisons, [2]string{e.t(i18n.ExoMassComparison), d.EarthMassComparison})
	}
	if len(comparisons) > 0 {
		b.WriteString("\n\n")
		b.WriteString(renderRows(comparisons))
	}
	return b.String()
}

func (m *DetailModel) orbit() string {
	e := m.env
	d := m.details

	return renderRows([][2]string{
		{e.t(i18n.ExoOrbitDays), e.measure(d.OrbitalPeriodDays, 2, i18n.ExoDays)},
		{e.t(i18n.ExoOrbitYears), e.measure(d.OrbitalPeriodYear, 2, i18n.ExoYears)},
		{e.t(i18n.ExoSemiMajorAxis), e.measure(d.SemiMajorAxis, 3, i18n.ExoAU)},
		{e.t(i18n.ExoEccentricity), e.measure(d.Eccentricity, 3, "")},
		{e.t(i18n.ExoTravelTime), e.measure(d.TravelTimeYears, 0, i18n.ExoYears)},
	})
}

func (m *DetailModel) cmdLoad() tea.Cmd {
	e := m.env
	id := m.id
	return func() tea.Msg {
		details, err := e.services.CatalogService.Details(e.ctx, id)
		if err != nil {
			return detailsLoadedMsg{err: err}
		}

		var favorite bool
		if e.services.Session.IsAuthenticated() {
			// A failed membership lookup still shows the planet.
			if favorite, err = e.services.FavoritesService.Contains(e.ctx, id); err != nil {
				e.logger.Warn().Err(err).Str("func", "DetailModel.cmdLoad").Int64("id", id).Msg("favorite flag unavailable")
				favorite = false
			}
		}
		return detailsLoadedMsg{details: details, favorite: favorite}
	}
}

func (m *DetailModel) cmdToggle() tea.Cmd {
	e := m.env
	id, current := m.id, m.favorite
	return func() tea.Msg {
		favorite, err := e.services.FavoritesService.Toggle(e.ctx, id, current)
		return favoriteToggledMsg{issuedBy: issuedBy{m}, favorite: favorite, err: err}
	}
}

func renderRows(rows [][2]string) string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r[0]
	}
	width := labelWidth(labels...)

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-*s : %s", width, r[0], r[1]))
	}
	return b.String()
}
