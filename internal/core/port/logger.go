package port

// Fields carries structured log attributes.
type Fields map[string]interface{}

// LoggerPort is the logging abstraction used across the service. Concrete
// adapters live in internal/adapters/logger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	WithFields(fields Fields) LoggerPort
}
