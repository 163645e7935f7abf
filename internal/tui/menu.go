package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/router"
)

type navItem struct {
	view  router.View
	label string
}

// renderNavbar draws the top bar. Entries the session cannot open are left
// out; the guards still apply when a hotkey asks for them anyway.
func renderNavbar(e *env, current router.View) string {
	session := e.services.Session
	p := e.palette()

	items := []navItem{
		{router.ViewHome, e.t(i18n.NavHome)},
		{router.ViewSearch, e.t(i18n.NavSearch)},
	}
	if session.IsAuthenticated() {
		items = append(items,
			navItem{router.ViewFavorites, e.t(i18n.NavFavorites)},
			navItem{router.ViewProfile, e.t(i18n.NavProfile)},
		)
	}
	if session.IsAdmin() {
		items = append(items, navItem{router.ViewAdmin, e.t(i18n.NavAdmin)})
	}
	if session.IsAuthenticated() {
		items = append(items, navItem{-1, e.t(i18n.NavLogout)})
	} else {
		items = append(items,
			navItem{router.ViewLogin, e.t(i18n.NavLogin)},
			navItem{router.ViewSignup, e.t(i18n.NavSignup)},
		)
	}

	parts := make([]string, 0, len(items)+2)
	for _, item := range items {
		if item.view == current {
			parts = append(parts, p.navActive.Render("["+item.label+"]"))
			continue
		}
		parts = append(parts, item.label)
	}

	themeKey := i18n.ThemeLight
	if e.services.Theme.Theme().IsDark() {
		themeKey = i18n.ThemeDark
	}
	parts = append(parts, p.muted.Render(e.t(themeKey)), p.muted.Render(strings.ToUpper(e.lang())))

	bar := appName + "  " + strings.Join(parts, " │ ")
	if user, ok := session.User(); ok {
		bar += "  " + p.accent.Render(user.DisplayName())
	}
	return bar + "\n" + helpStyle.Render(e.t(i18n.HelpNavbar))
}
