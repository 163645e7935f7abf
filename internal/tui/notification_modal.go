package tui

import (
	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/models"
)

// renderNotification draws the shared modal. While it is on screen the root
// model sends every key to it and only the dismiss keys do anything.
func renderNotification(e *env, n models.Notification) string {
	p := e.palette()

	heading := p.success.Render(e.t(i18n.ModalSuccess))
	if n.Severity == models.SeverityError {
		heading = p.err.Render(e.t(i18n.ModalError))
	}

	content := heading + "\n\n" + n.Message + "\n\n" + helpStyle.Render(e.t(i18n.ModalDismiss))
	return overlayBoxStyle.Render(content)
}
