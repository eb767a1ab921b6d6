// Package app provides the use-case shape shared by all tools and
// decorators adding cross-cutting concerns to them.
package app

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/iseif/devbelt/alog"
)

// Request takes one input and returns one output or an error.
// Every tool of devbelt is exposed as a Request.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Query does not produce side effects and returns data, e.g. reading from a repository.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// RequestFunc adapts an ordinary function to a Request.
type RequestFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f RequestFunc[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedRequest[Req any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewTracedRequest(traceProvider, NewMeteredRequest(meterProvider, NewLoggedRequest(logger, req)))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewTracedQuery(traceProvider, NewMeteredQuery(meterProvider, NewLoggedQuery(logger, query)))
}

const (
	kindRequest = "request"
	kindQuery   = "query"
)

// requestName extracts a printable name of req.
//
// For requests defined in a context, e.g. github.com/iseif/devbelt/contexts/codec/internal/application,
// the name is prefixed with the context: codec.application.EncodeBase64Request.
// Otherwise, it falls back to packageName.structName.
func requestName(req any) string {
	pkgPath := reflect.TypeOf(req).PkgPath()

	parts := strings.Split(pkgPath, "/contexts/")
	if len(parts) == 2 { //nolint:mnd
		if ctxName, _, found := strings.Cut(parts[1], "/internal/"); found {
			return fmt.Sprintf("%s.%T", ctxName, req)
		}
	}

	return fmt.Sprintf("%T", req)
}
