package app

import (
	"context"
	"log/slog"

	"github.com/iseif/devbelt/alog"
)

func NewLoggedRequest[Req any, Res any](logger alog.Logger, req Request[Req, Res]) Request[Req, Res] {
	return &loggingDecorator[Req, Res]{
		logger: logger,
		kind:   kindRequest,
		base:   req,
	}
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, query Query[Q, Res]) Query[Q, Res] {
	return &loggingDecorator[Q, Res]{
		logger: logger,
		kind:   kindQuery,
		base:   query,
	}
}

type loggingDecorator[Req any, Res any] struct {
	logger alog.Logger
	kind   string
	base   Request[Req, Res]
}

func (d *loggingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	name := requestName(req)

	d.logger.DebugContext(ctx, "executing "+d.kind,
		slog.String(d.kind, name),
	)

	res, err := d.base.H(ctx, req)
	if err != nil {
		d.logger.DebugContext(ctx, "failed to execute "+d.kind,
			slog.String(d.kind, name),
			alog.Error(err),
		)

		return res, err //nolint:wrapcheck // decorate but not change anything
	}

	d.logger.DebugContext(ctx, d.kind+" executed successfully",
		slog.String(d.kind, name),
	)

	return res, nil
}
