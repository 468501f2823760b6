package utils

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled diagnostics. Grids and prompts go to the console
// directly; this is for everything else.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing info to stdout and warnings/errors to stderr
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger with explicit destinations
func NewLoggerTo(out, errOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[LIFE-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(errOut, "[LIFE-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(errOut, "[LIFE-ERROR] ", log.Ldate|log.Ltime),
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}
