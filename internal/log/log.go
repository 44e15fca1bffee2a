// Package log is a thin module-tagged wrapper over log/slog.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

const (
	LevelTrace slog.Level = -8
	LevelDebug            = slog.LevelDebug
	LevelInfo             = slog.LevelInfo
	LevelWarn             = slog.LevelWarn
	LevelError            = slog.LevelError
)

// Module tags attached to every record.
const (
	FusionModule = "fusion"
	HostModule   = "host"
	TraceModule  = "trace"
	ReportModule = "report"
	CLIModule    = "cli"
)

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("log: invalid level: %s", lvl)
	}
}

// Init installs a text handler writing to w at the given level.
func Init(w io.Writer, level slog.Level) {
	SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetDefault replaces the root logger.
func SetDefault(l *slog.Logger) {
	root.Store(l)
}

// Root returns the root logger.
func Root() *slog.Logger {
	return root.Load()
}

// Module returns a logger that tags records with module.
func Module(module string) *slog.Logger {
	return Root().With("module", module)
}

func write(level slog.Level, module, msg string, ctx ...any) {
	l := Root()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, append([]any{"module", module}, ctx...)...)
}

func Trace(module, msg string, ctx ...any) { write(LevelTrace, module, msg, ctx...) }
func Debug(module, msg string, ctx ...any) { write(LevelDebug, module, msg, ctx...) }
func Info(module, msg string, ctx ...any)  { write(LevelInfo, module, msg, ctx...) }
func Warn(module, msg string, ctx ...any)  { write(LevelWarn, module, msg, ctx...) }
func Error(module, msg string, ctx ...any) { write(LevelError, module, msg, ctx...) }
