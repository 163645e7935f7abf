package service

import (
	"sync"

	"github.com/MKhiriev/exo-explorer/models"
)

// Notifier is the single notification slot behind the modal. A new
// notification replaces the visible one; nothing expires on its own.
type Notifier struct {
	mu      sync.RWMutex
	current models.Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Show(message string, severity models.Severity) {
	n.mu.Lock()
	n.current = models.Notification{Message: message, Severity: severity}
	n.mu.Unlock()
}

func (n *Notifier) Success(message string) { n.Show(message, models.SeveritySuccess) }

func (n *Notifier) Error(message string) { n.Show(message, models.SeverityError) }

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	n.current = models.Notification{}
	n.mu.Unlock()
}

// Current returns the visible notification and whether there is one.
func (n *Notifier) Current() (models.Notification, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current, !n.current.IsZero()
}
