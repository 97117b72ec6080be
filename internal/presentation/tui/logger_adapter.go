package tui

import (
	"fmt"

	"xtinypng/internal/domain/repositories"
)

// LogSink принимает строки для журнала событий
type LogSink interface {
	AddLog(level, message string)
}

// UILogger адаптер логгера для отображения в UI
type UILogger struct {
	fileLogger repositories.Logger
	sink       LogSink
}

// NewUILogger создает новый UI логгер. fileLogger может быть nil.
func NewUILogger(fileLogger repositories.Logger, sink LogSink) *UILogger {
	return &UILogger{
		fileLogger: fileLogger,
		sink:       sink,
	}
}

// Debug логирует отладочное сообщение
func (l *UILogger) Debug(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Debug(format, args...)
	}
	l.toSink("DEBUG", format, args...)
}

// Info логирует информационное сообщение
func (l *UILogger) Info(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Info(format, args...)
	}
	l.toSink("INFO", format, args...)
}

// Warning логирует предупреждение
func (l *UILogger) Warning(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Warning(format, args...)
	}
	l.toSink("WARNING", format, args...)
}

// Error логирует ошибку
func (l *UILogger) Error(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Error(format, args...)
	}
	l.toSink("ERROR", format, args...)
}

// Success логирует строку статуса Shrunk или MaxedOut
func (l *UILogger) Success(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Success(format, args...)
	}
	l.toSink("SUCCESS", format, args...)
}

// Close закрывает логгер
func (l *UILogger) Close() error {
	if l.fileLogger != nil {
		return l.fileLogger.Close()
	}
	return nil
}

func (l *UILogger) toSink(level, format string, args ...interface{}) {
	if l.sink != nil {
		l.sink.AddLog(level, fmt.Sprintf(format, args...))
	}
}
