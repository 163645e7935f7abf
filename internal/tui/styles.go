package tui

import (
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// palette is the set of styles that depend on the active theme.
type palette struct {
	title     lipgloss.Style
	accent    lipgloss.Style
	selected  lipgloss.Style
	success   lipgloss.Style
	err       lipgloss.Style
	muted     lipgloss.Style
	tab       lipgloss.Style
	tabActive lipgloss.Style
	navActive lipgloss.Style
}

type colors struct {
	title, accent, success, err, muted lipgloss.Color
}

func newPalette(c colors) palette {
	return palette{
		title:     lipgloss.NewStyle().Bold(true).Foreground(c.title),
		accent:    lipgloss.NewStyle().Foreground(c.accent),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(c.accent),
		success:   lipgloss.NewStyle().Bold(true).Foreground(c.success),
		err:       lipgloss.NewStyle().Bold(true).Foreground(c.err),
		muted:     lipgloss.NewStyle().Foreground(c.muted),
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(c.muted),
		tabActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(c.title),
		navActive: lipgloss.NewStyle().Bold(true).Foreground(c.accent),
	}
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: newPalette(colors{
		title:   lipgloss.Color("#1F3A93"),
		accent:  lipgloss.Color("#6C3483"),
		success: lipgloss.Color("#1E8449"),
		err:     lipgloss.Color("#C0392B"),
		muted:   lipgloss.Color("#7F8C8D"),
	}),
	models.ThemeDark: newPalette(colors{
		title:   lipgloss.Color("#85C1E9"),
		accent:  lipgloss.Color("#BB8FCE"),
		success: lipgloss.Color("#58D68D"),
		err:     lipgloss.Color("#EC7063"),
		muted:   lipgloss.Color("#95A5A6"),
	}),
}

func paletteFor(theme models.Theme) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[models.ThemeLight]
}
