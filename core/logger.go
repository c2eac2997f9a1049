package core

// Logger is the error-reporting seam; request-scoped failures must be
// reported, never fatal.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
