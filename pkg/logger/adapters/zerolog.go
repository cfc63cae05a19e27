// Package adapters provides Logger adapters for external logging libraries.
package adapters

import (
	"github.com/rs/zerolog"

	"github.com/kart-io/dispatchhub/pkg/logger"
)

// ZerologAdapter adapts a zerolog.Logger to the dispatchhub Logger interface.
type ZerologAdapter struct {
	zl    zerolog.Logger
	level logger.LogLevel
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger, level logger.LogLevel) logger.Logger {
	return &ZerologAdapter{zl: zl, level: level}
}

// LogMode returns a copy of the adapter at the given level.
func (a *ZerologAdapter) LogMode(level logger.LogLevel) logger.Logger {
	return &ZerologAdapter{zl: a.zl, level: level}
}

// Debug logs a debug message.
func (a *ZerologAdapter) Debug(msg string, args ...any) {
	if a.level >= logger.Debug {
		a.event(a.zl.Debug(), msg, args)
	}
}

// Info logs an informational message.
func (a *ZerologAdapter) Info(msg string, args ...any) {
	if a.level >= logger.Info {
		a.event(a.zl.Info(), msg, args)
	}
}

// Warn logs a warning message.
func (a *ZerologAdapter) Warn(msg string, args ...any) {
	if a.level >= logger.Warn {
		a.event(a.zl.Warn(), msg, args)
	}
}

// Error logs an error message.
func (a *ZerologAdapter) Error(msg string, args ...any) {
	if a.level >= logger.Error {
		a.event(a.zl.Error(), msg, args)
	}
}

func (a *ZerologAdapter) event(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		var val any = "(no value)"
		if i+1 < len(args) {
			val = args[i+1]
		}
		ev = ev.Interface(key, val)
	}
	ev.Msg(msg)
}
