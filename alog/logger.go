// Package alog is the structured logger of devbelt.
//
// It is a thin layer on top of log/slog that correlates every log line with
// the active OpenTelemetry span and can write to multiple slog.Handlers at once.
package alog

import (
	"context"
	"log/slog"
	"os"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that tracing information can be correlated.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	With(args ...any) *slog.Logger
	WithGroup(name string) *slog.Logger
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside devbelt itself, e.g. the container starting up.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by devbelt developers, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(h *handler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *handler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use Unwrap(logger).SetLevel.
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *handler) {
		l.level.Set(level)
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own handlers.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newHandler(opts...))
}

// NewDevelopment returns a logger for running devbelt on a workstation.
// It prints human-readable text to Stderr. If lokiURL is not empty,
// the lines are additionally shipped to a local loki instance.
func NewDevelopment(lokiURL string) *slog.Logger {
	opts := []LoggerOpt{
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	}

	if lokiURL != "" {
		opts = append(opts, WithHandler(NewLokiHandler(&LokiHandlerOptions{PushURL: lokiURL})))
	}

	return New(opts...)
}

// NewNoop returns an implementation of Logger that performs no operations.
// Ideal as dependency in tests.
func NewNoop() *slog.Logger {
	return slog.New(noopHandler{})
}

// ParseLevel maps the configuration value of a level to a slog.Level.
// Next to the slog names, the devbelt levels "devbelt:info" and "devbelt:debug" are understood.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "devbelt:info", "DEVBELT:INFO":
		return LevelInfo, nil
	case "devbelt:debug", "DEVBELT:DEBUG":
		return LevelDebug, nil
	}

	var level slog.Level

	err := level.UnmarshalText([]byte(s))

	return level, err //nolint:wrapcheck // the slog error is descriptive
}

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name for the devbelt levels.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := levelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

func levelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "DEVBELT:INFO",
		LevelDebug: "DEVBELT:DEBUG",
	}
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       LevelDebug, // the handler's own level decides, so let everything through here.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions keeps the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}

type noopHandler struct{}

var _ slog.Handler = (*noopHandler)(nil)

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool   { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }
