package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
	favorite  key.Binding
	pageSize  key.Binding
	explore   key.Binding
	clear     key.Binding
	apply     key.Binding
	generate  key.Binding
	copyCodes key.Binding
	switchOtp key.Binding
	toSignup  key.Binding
	toLogin   key.Binding

	navHome      key.Binding
	navSearch    key.Binding
	navFavorites key.Binding
	navProfile   key.Binding
	navAdmin     key.Binding
	navAuth      key.Binding
	navTheme     key.Binding
	navLanguage  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	about:     key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	pageSize:  key.NewBinding(key.WithKeys("s")),
	explore:   key.NewBinding(key.WithKeys("s")),
	clear:     key.NewBinding(key.WithKeys("ctrl+r")),
	apply:     key.NewBinding(key.WithKeys("ctrl+a")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
	copyCodes: key.NewBinding(key.WithKeys("ctrl+y")),
	switchOtp: key.NewBinding(key.WithKeys("ctrl+b")),
	toSignup:  key.NewBinding(key.WithKeys("ctrl+n")),
	toLogin:   key.NewBinding(key.WithKeys("ctrl+l")),

	navHome:      key.NewBinding(key.WithKeys("alt+1")),
	navSearch:    key.NewBinding(key.WithKeys("alt+2")),
	navFavorites: key.NewBinding(key.WithKeys("alt+3")),
	navProfile:   key.NewBinding(key.WithKeys("alt+4")),
	navAdmin:     key.NewBinding(key.WithKeys("alt+5")),
	navAuth:      key.NewBinding(key.WithKeys("alt+6")),
	navTheme:     key.NewBinding(key.WithKeys("alt+t")),
	navLanguage:  key.NewBinding(key.WithKeys("alt+g")),
}
