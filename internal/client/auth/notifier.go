package auth

// Notifier delivers user-visible feedback for coordinator outcomes. Every
// operation ends in exactly one notification on failure paths, so the caller
// is never left without feedback; the CLI prints these, tests record them.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}
