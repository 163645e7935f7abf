package models

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient message shown in the shared modal.
type Notification struct {
	Message  string
	Severity Severity
}

// IsZero reports whether there is nothing to show.
func (n Notification) IsZero() bool {
	return n.Message == ""
}
