// Package logger provides the pluggable logging interface used across
// DispatchHub. The interface follows the GORM-style design so external
// libraries (zerolog, zap, slog) can be adapted without the core
// depending on any of them directly.
package logger

import (
	"fmt"
	"log"
	"os"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// Silent suppresses all log output.
	Silent LogLevel = iota + 1
	// Error only logs error messages.
	Error
	// Warn logs warnings and errors.
	Warn
	// Info logs informational messages, warnings, and errors.
	Info
	// Debug logs all messages including debug information.
	Debug
)

// Logger is the interface that wraps the basic logging methods.
// Arguments after msg are alternating key-value pairs.
type Logger interface {
	// LogMode sets the log level and returns a new logger instance.
	LogMode(level LogLevel) Logger
	// Debug logs a debug message with structured key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an informational message with structured key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning message with structured key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error message with structured key-value pairs.
	Error(msg string, args ...any)
}

// StandardLogger is the default Logger implementation backed by the
// standard library log package.
type StandardLogger struct {
	logger *log.Logger
	level  LogLevel
	prefix string
}

// NewStandardLogger creates a logger writing through the given log.Logger.
func NewStandardLogger(writer *log.Logger, level LogLevel, prefix string) Logger {
	return &StandardLogger{
		logger: writer,
		level:  level,
		prefix: prefix,
	}
}

// LogMode returns a copy of the logger at the given level.
func (l *StandardLogger) LogMode(level LogLevel) Logger {
	clone := *l
	clone.level = level
	return &clone
}

// Debug logs a debug message.
func (l *StandardLogger) Debug(msg string, args ...any) {
	if l.level >= Debug {
		l.logger.Print(l.format("DEBUG", msg, args...))
	}
}

// Info logs an informational message.
func (l *StandardLogger) Info(msg string, args ...any) {
	if l.level >= Info {
		l.logger.Print(l.format("INFO", msg, args...))
	}
}

// Warn logs a warning message.
func (l *StandardLogger) Warn(msg string, args ...any) {
	if l.level >= Warn {
		l.logger.Print(l.format("WARN", msg, args...))
	}
}

// Error logs an error message.
func (l *StandardLogger) Error(msg string, args ...any) {
	if l.level >= Error {
		l.logger.Print(l.format("ERROR", msg, args...))
	}
}

func (l *StandardLogger) format(level, msg string, args ...any) string {
	out := fmt.Sprintf("%s [%s] %s", l.prefix, level, msg)
	for i := 0; i < len(args); i += 2 {
		key := args[i]
		var val any = "(no value)"
		if i+1 < len(args) {
			val = args[i+1]
		}
		out += fmt.Sprintf(" %v=%v", key, val)
	}
	return out
}

// discardLogger drops all output.
type discardLogger struct{}

func (d *discardLogger) LogMode(LogLevel) Logger { return d }
func (d *discardLogger) Debug(string, ...any)    {}
func (d *discardLogger) Info(string, ...any)     {}
func (d *discardLogger) Warn(string, ...any)     {}
func (d *discardLogger) Error(string, ...any)    {}

// Discard is a logger that discards all output.
var Discard Logger = &discardLogger{}

// New returns a default logger writing to stdout at Warn level.
func New() Logger {
	return NewStandardLogger(log.New(os.Stdout, "", log.LstdFlags), Warn, "[dispatchhub]")
}
