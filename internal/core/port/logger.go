package port

// Fields is structured data attached to a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract used by use cases and adapters.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)
	// WithFields returns a logger that adds fields to every entry.
	WithFields(fields Fields) LoggerPort
}
