package tui

import (
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pageFactory builds a fresh page for a resolved route. Pages are rebuilt on
// every navigation so no form or filter state survives leaving a view.
type pageFactory func(e *env, route router.Route) tea.Model

// NavigateBack returns to the previous path.
type NavigateBack struct{}

// RootModel is a TUI router:
// 1) resolves NavigateTo paths through the route guards and opens the page
// 2) handles global hotkeys (quit, navbar, theme, language, about window)
// 3) owns the notification modal, which captures keys while visible
// 4) surfaces command results of any page through that modal
// 5) delegates all other messages to the active page
type RootModel struct {
	env     *env
	pages   map[router.View]pageFactory
	current tea.Model
	route   router.Route
	history []string

	startCmd      tea.Cmd
	quitByUser    bool
	showBuildInfo bool
}

func newRootModel(e *env, pages map[router.View]pageFactory, startPath string) RootModel {
	r := RootModel{env: e, pages: pages}
	r.startCmd = r.open(startPath)
	return r
}

// Init returns the start page's Init command, captured when the page was
// opened.
func (r RootModel) Init() tea.Cmd {
	return r.startCmd
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}

		if _, visible := r.env.services.Notifier.Current(); visible {
			if key.Matches(k, keys.enter, keys.esc) {
				r.env.services.Notifier.Dismiss()
			}
			return r, nil
		}

		if key.Matches(k, keys.about) {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(k, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if cmd, handled := r.globalKey(k); handled {
			return r, cmd
		}
	}

	if res, ok := msg.(resultMsg); ok {
		attached := r.current != nil && res.origin() == r.current
		if n, show := res.notification(r.env, attached); show {
			r.env.services.Notifier.Show(n.Message, n.Severity)
		}
		if !attached {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if r.route.Path != "" {
			r.history = append(r.history, r.route.Path)
		}
		return r, r.open(msg.Path)
	case NavigateBack:
		path := router.PathHome
		if n := len(r.history); n > 0 {
			path = r.history[n-1]
			r.history = r.history[:n-1]
		}
		return r, r.open(path)
	case logoutDoneMsg:
		r.history = nil
		return r, r.open(msg.next)
	case preferencesChangedMsg:
		if msg.err != nil {
			r.env.services.Notifier.Error(r.env.errorText(msg.err))
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	body := renderNavbar(r.env, r.route.View) + "\n\n"

	switch {
	case r.showBuildInfo:
		body += renderBuildInfoWindow(r.env, r.env.opts.BuildInfo)
	case r.current != nil:
		body += r.current.View()
	}

	if n, visible := r.env.services.Notifier.Current(); visible {
		body += "\n\n" + renderNotification(r.env, n)
	}

	return appStyle.Render(body)
}

// open resolves path against the current session and installs the page the
// guards allow.
func (r *RootModel) open(path string) tea.Cmd {
	decision := router.Resolve(path, r.env.services.Session.Capabilities())
	if decision.Redirected {
		r.env.logger.Debug().Str("func", "RootModel.open").
			Str("requested", decision.Requested).Str("resolved", decision.Route.Path).
			Msg("navigation redirected by guard")
	}

	factory, ok := r.pages[decision.Route.View]
	if !ok {
		factory = r.pages[router.ViewNotFound]
	}

	r.route = decision.Route
	r.showBuildInfo = false
	r.current = factory(r.env, decision.Route)
	return r.current.Init()
}

func (r RootModel) globalKey(k tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(k, keys.navHome):
		return navigate(router.PathHome), true
	case key.Matches(k, keys.navSearch):
		return navigate(router.PathSearch), true
	case key.Matches(k, keys.navFavorites):
		return navigate(router.PathFavorites), true
	case key.Matches(k, keys.navProfile):
		return navigate(router.PathProfile), true
	case key.Matches(k, keys.navAdmin):
		return navigate(router.PathAdmin), true
	case key.Matches(k, keys.navAuth):
		if r.env.services.Session.IsAuthenticated() {
			return r.cmdLogout(), true
		}
		return navigate(router.PathLogin), true
	case key.Matches(k, keys.navTheme):
		return r.cmdToggleTheme(), true
	case key.Matches(k, keys.navLanguage):
		return r.cmdNextLanguage(), true
	}
	return nil, false
}

func (r RootModel) cmdLogout() tea.Cmd {
	e := r.env
	return func() tea.Msg {
		e.services.Search.Reset()
		return logoutDoneMsg{next: e.services.AuthService.Logout(e.ctx)}
	}
}

func (r RootModel) cmdToggleTheme() tea.Cmd {
	e := r.env
	return func() tea.Msg {
		_, err := e.services.Theme.Toggle(e.ctx)
		return preferencesChangedMsg{err: err}
	}
}

func (r RootModel) cmdNextLanguage() tea.Cmd {
	e := r.env
	next := nextLanguage(e.lang())
	return func() tea.Msg {
		return preferencesChangedMsg{err: e.services.Locale.Set(e.ctx, next)}
	}
}
