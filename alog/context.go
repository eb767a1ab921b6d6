package alog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// AddAttr adds a single attribute to ctx. All attributes in ctx are logged
// with every record, as long as the same ctx is passed to the logger.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	return AddAttrs(ctx, attr)
}

// AddAttrs adds multiple attributes to ctx, see AddAttr.
func AddAttrs(ctx context.Context, newAttrs ...slog.Attr) context.Context {
	attrs := FromContext(ctx)

	merged := make([]slog.Attr, 0, len(attrs)+len(newAttrs))
	merged = append(merged, attrs...)
	merged = append(merged, newAttrs...)

	return context.WithValue(ctx, ctxKey{}, merged)
}

// ClearAttrs removes all attributes from ctx.
func ClearAttrs(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, []slog.Attr{})
}

// FromContext returns all attributes stored in ctx. It never returns nil.
func FromContext(ctx context.Context) []slog.Attr {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		return attrs
	}

	return []slog.Attr{}
}

// Error is a convenience to log an error under the key "err".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "<nil>")
	}

	return slog.String("err", err.Error())
}
