package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const cardNameWidth = 40

// cardList is a selectable column of exoplanet cards with a loading spinner.
// Home, search and favorites all render their results with it.
type cardList struct {
	items   []models.ExoplanetSummary
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func newCardList() cardList {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return cardList{spinner: s, loading: true}
}

func (l *cardList) setItems(items []models.ExoplanetSummary) {
	l.loading = false
	l.errMsg = ""
	l.items = items
	if l.idx >= len(l.items) {
		l.idx = len(l.items) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l *cardList) setError(msg string) {
	l.loading = false
	l.errMsg = msg
	l.items = nil
	l.idx = 0
}

func (l *cardList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.idx = min(max(l.idx+delta, 0), len(l.items)-1)
}

func (l cardList) selected() (models.ExoplanetSummary, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.ExoplanetSummary{}, false
	}
	return l.items[l.idx], true
}

// tick advances the spinner while loading. Other messages are ignored.
func (l *cardList) tick(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok || !l.loading {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l cardList) View(e *env, emptyKey string, focused bool) string {
	p := e.palette()

	if l.loading {
		return l.spinner.View() + " " + e.t(i18n.CommonLoading)
	}
	if l.errMsg != "" {
		return p.err.Render(l.errMsg)
	}
	if len(l.items) == 0 {
		return p.muted.Render(e.t(emptyKey))
	}

	var b strings.Builder
	for i, item := range l.items {
		selected := focused && i == l.idx
		line := fmt.Sprintf("%s #%-5d %s", cursor(selected), item.ID, fitText(item.Name, cardNameWidth))
		if selected {
			line = p.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
