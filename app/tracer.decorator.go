package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func NewTracedRequest[Req any, Res any](traceProvider trace.TracerProvider, req Request[Req, Res]) Request[Req, Res] {
	return &tracingDecorator[Req, Res]{
		tracer: traceProvider.Tracer("devbelt.application"),
		kind:   kindRequest,
		base:   req,
	}
}

func NewTracedQuery[Q any, Res any](traceProvider trace.TracerProvider, query Query[Q, Res]) Query[Q, Res] {
	return &tracingDecorator[Q, Res]{
		tracer: traceProvider.Tracer("devbelt.application"),
		kind:   kindQuery,
		base:   query,
	}
}

type tracingDecorator[Req any, Res any] struct {
	tracer trace.Tracer
	kind   string
	base   Request[Req, Res]
}

func (d *tracingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	newCtx, span := d.tracer.Start(ctx, "tool",
		trace.WithAttributes(attribute.String(d.kind, requestName(req))),
	)
	defer span.End()

	res, err := d.base.H(newCtx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err //nolint:wrapcheck // decorate but not change anything
}
