// Package logger provides a simple logging interface and implementation
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// logger implements the Logger interface on top of charmbracelet/log
type logger struct {
	backend *log.Logger
}

// New creates a new logger instance writing to stderr, level taken from LOG_LEVEL
func New() Logger {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewWithWriter creates a logger writing to w at the given level
func NewWithWriter(w io.Writer, level Level) Logger {
	backend := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level == LevelDebug,
		CallerOffset:    1,
		TimeFormat:      "2006/01/02 15:04:05",
		Prefix:          prefix(),
	})
	backend.SetLevel(toBackendLevel(level))
	return &logger{backend: backend}
}

// Discard returns a logger that drops everything, handy in tests
func Discard() Logger {
	return NewWithWriter(io.Discard, LevelError)
}

func prefix() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#111827")).
		Background(lipgloss.Color("#EAB308")).
		Bold(true).
		Padding(0, 1)
	return style.Render("cinetro")
}

// ParseLevel converts string log level to Level type
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toBackendLevel(level Level) log.Level {
	switch level {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message
func (l *logger) Debug(v ...interface{}) {
	l.backend.Debug(fmt.Sprint(v...))
}

// Debugf logs a formatted debug message
func (l *logger) Debugf(format string, v ...interface{}) {
	l.backend.Debugf(format, v...)
}

// Info logs an info message
func (l *logger) Info(v ...interface{}) {
	l.backend.Info(fmt.Sprint(v...))
}

// Infof logs a formatted info message
func (l *logger) Infof(format string, v ...interface{}) {
	l.backend.Infof(format, v...)
}

// Warn logs a warning message
func (l *logger) Warn(v ...interface{}) {
	l.backend.Warn(fmt.Sprint(v...))
}

// Warnf logs a formatted warning message
func (l *logger) Warnf(format string, v ...interface{}) {
	l.backend.Warnf(format, v...)
}

// Error logs an error message
func (l *logger) Error(v ...interface{}) {
	l.backend.Error(fmt.Sprint(v...))
}

// Errorf logs a formatted error message
func (l *logger) Errorf(format string, v ...interface{}) {
	l.backend.Errorf(format, v...)
}

// Fatal logs an error message and exits
func (l *logger) Fatal(v ...interface{}) {
	l.backend.Fatal(fmt.Sprint(v...))
}

// Fatalf logs a formatted error message and exits
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.backend.Fatalf(format, v...)
}
