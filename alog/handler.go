package alog

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// newHandler implements the devbelt specific logging logic.
// It does not output anything directly and relies on other slog.Handlers to do so.
// If no handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newHandler(opts ...LoggerOpt) *handler {
	h := &handler{
		level:    &slog.LevelVar{},
		handlers: []slog.Handler{},
	}
	h.level.Set(slog.LevelInfo)

	for _, opt := range opts {
		opt(h)
	}

	if len(h.handlers) == 0 {
		h.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return h
}

// handler fans a record out to all handlers and enriches it with
// tracing information and the attributes stored in the context.
type handler struct {
	// level is shared by all handlers derived via WithAttrs and WithGroup.
	// The levels of individual handlers set via WithHandler are ignored.
	level *slog.LevelVar

	handlers []slog.Handler
}

var (
	_ slog.Handler = (*handler)(nil)
	_ Leveler      = (*handler)(nil)
)

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDs(span, record)

	if attrs := FromContext(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	if span.IsRecording() {
		addRecordToSpan(span, record)
	}

	var retErr error

	for _, next := range h.handlers {
		if err := next.Handle(ctx, record.Clone()); err != nil {
			retErr = errors.Join(retErr, err)
		}
	}

	return retErr
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i, next := range h.handlers {
		handlers[i] = next.WithAttrs(attrs)
	}

	return &handler{level: h.level, handlers: handlers}
}

func (h *handler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))

	for i, next := range h.handlers {
		handlers[i] = next.WithGroup(name)
	}

	return &handler{level: h.level, handlers: handlers}
}

// SetLevel changes the level for all handlers, including the ones derived via any WithX method.
func (h *handler) SetLevel(level slog.Level) {
	h.level.Set(level)
}

// Level returns the current minimum level.
func (h *handler) Level() slog.Level {
	return h.level.Level()
}

func addTraceAndSpanIDs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()

	if sCtx.HasTraceID() {
		record.AddAttrs(slog.String("traceID", sCtx.TraceID().String()))
	}

	if sCtx.HasSpanID() {
		record.AddAttrs(slog.String("spanID", sCtx.SpanID().String()))
	}

	return record
}

func addRecordToSpan(span trace.Span, record slog.Record) {
	attrs := []attribute.KeyValue{
		attribute.String("log.severity", record.Level.String()),
		attribute.String("log.message", record.Message),
	}

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, attribute.String(a.Key, a.Value.String()))

		return true
	})

	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

// Leveler offers control over the level of a logger at run time.
// Unwrap a logger to get access to it.
type Leveler interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap returns the Leveler of a logger created by this package.
// For any other implementation of Logger it returns nil.
func Unwrap(logger Logger) Leveler { //nolint:ireturn // TestLogger and handler both need to be returned
	switch l := logger.(type) {
	case *TestLogger:
		return l
	case *slog.Logger:
		if h, ok := l.Handler().(*handler); ok {
			return h
		}
	}

	return nil
}
