package core

// Logger is the application-wide logging contract; implementations live in
// services/logger.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Feedback severities.
const (
	FeedbackInfo    = "info"
	FeedbackWarning = "warning"
	FeedbackError   = "error"
)

// Feedback is the user-notification collaborator (toast/alert on the far
// side). The core only ever supplies a message and a severity.
type Feedback interface {
	Notify(severity, message string)
}
