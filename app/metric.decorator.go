package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NewMeteredRequest records two metrics per call:
// tool_requests_total counts the calls, tool_request_duration_seconds measures their execution time.
// Both carry the request name and its status (success or failure).
func NewMeteredRequest[Req any, Res any](meterProvider metric.MeterProvider, req Request[Req, Res]) Request[Req, Res] {
	return newMeteringDecorator(meterProvider, kindRequest, req)
}

// NewMeteredQuery records the same metrics as NewMeteredRequest, with the query name.
func NewMeteredQuery[Q any, Res any](meterProvider metric.MeterProvider, query Query[Q, Res]) Query[Q, Res] {
	return newMeteringDecorator[Q, Res](meterProvider, kindQuery, query)
}

func newMeteringDecorator[Req any, Res any](
	meterProvider metric.MeterProvider,
	kind string,
	req Request[Req, Res],
) *meteringDecorator[Req, Res] {
	meter := meterProvider.Meter("devbelt.application")

	counter, _ := meter.Int64Counter("tool_requests_total",
		metric.WithDescription("number of tool requests executed"))
	duration, _ := meter.Float64Histogram("tool_request_duration_seconds",
		metric.WithDescription("execution time of tool requests"), metric.WithUnit("s"))

	return &meteringDecorator[Req, Res]{
		counter:  counter,
		duration: duration,
		kind:     kind,
		base:     req,
	}
}

type meteringDecorator[Req any, Res any] struct {
	counter  metric.Int64Counter
	duration metric.Float64Histogram
	kind     string
	base     Request[Req, Res]
}

func (d *meteringDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	start := time.Now()

	res, err := d.base.H(ctx, req)

	status := "success"
	if err != nil {
		status = "failure"
	}

	opt := metric.WithAttributes(
		attribute.String(d.kind, requestName(req)),
		attribute.String("status", status),
	)

	d.counter.Add(ctx, 1, opt)
	d.duration.Record(ctx, time.Since(start).Seconds(), opt)

	return res, err //nolint:wrapcheck // decorate but not change anything
}
