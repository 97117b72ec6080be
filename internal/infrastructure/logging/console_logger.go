package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ConsoleLogger выводит строки статуса в терминал без временных меток
type ConsoleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	logLevel string
}

// NewConsoleLogger создает логгер, пишущий в out
func NewConsoleLogger(out io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		out:      out,
		logLevel: strings.ToLower(logLevel),
	}
}

func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "debug") {
		l.write("· ", format, args...)
	}
}

func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.write("", format, args...)
	}
}

func (l *ConsoleLogger) Warning(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "warning") {
		l.write("! ", format, args...)
	}
}

func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "error") {
		l.write("✘ ", format, args...)
	}
}

func (l *ConsoleLogger) Success(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.write("✔ ", format, args...)
	}
}

// Close ничего не закрывает: out принадлежит вызывающему коду
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) write(prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}
