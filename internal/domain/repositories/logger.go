package repositories

// Logger интерфейс для логирования.
// Реализации должны быть безопасны для вызова из нескольких горутин.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	// Success используется для строк статуса Shrunk и MaxedOut
	Success(format string, args ...interface{})
	Close() error
}
