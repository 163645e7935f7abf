package tui

import (
	"github.com/MKhiriev/exo-explorer/internal/i18n"
)

// confirmModel is the warning shown before a destructive admin action.
type confirmModel struct {
	label string
}

func (m confirmModel) View(e *env) string {
	content := e.palette().err.Render(e.t(i18n.AdminConfirmTitle)) + "\n\n"
	content += e.t(i18n.AdminConfirmWarning, m.label) + "\n\n"
	content += helpStyle.Render(e.t(i18n.HelpConfirm))
	return overlayBoxStyle.Render(content)
}
