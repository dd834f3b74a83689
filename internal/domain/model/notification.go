package model

// Severity ranks a notification for log sinks.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is an operator or client facing message. Recipient is a phone
// number; an empty recipient only reaches the operator log.
type Notification struct {
	Title     string
	Message   string
	Severity  Severity
	Recipient string
}
