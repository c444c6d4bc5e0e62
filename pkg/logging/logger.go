// Package logging provides the small leveled logger used across packwise.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger writes timestamped, leveled log lines to a configurable writer.
// It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	debug  bool
}

// NewLogger creates a Logger that discards output until a writer is set.
func NewLogger() *Logger {
	return &Logger{writer: io.Discard}
}

// SetWriter sets the output destination for the logger.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetDebug enables or disables debug-level logging.
func (l *Logger) SetDebug(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enable
}

// IsDebugEnabled reports whether debug lines are currently emitted.
func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level == LevelDebug && !l.debug {
		return
	}
	line := fmt.Sprintf("%s %-5s %s\n", time.Now().Format("15:04:05.000"), level.String(), fmt.Sprintf(format, v...))
	io.WriteString(l.writer, line)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) { l.logf(LevelInfo, format, v...) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(LevelWarn, format, v...) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

// ---- Global / Default Logger ----

var defaultLogger = NewLogger()

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// IsDebugEnabled reports whether the default logger emits debug lines.
func IsDebugEnabled() bool { return defaultLogger.IsDebugEnabled() }

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) { defaultLogger.Debugf(format, v...) }

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) { defaultLogger.Infof(format, v...) }

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) { defaultLogger.Warnf(format, v...) }

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) { defaultLogger.Errorf(format, v...) }
