// Package init is the context's startup API.
package init

import (
	"context"
	"fmt"
	"time"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/schedule/internal/application"
	"github.com/iseif/devbelt/contexts/schedule/internal/interfaces/web"
)

const contextName = "schedule"

func NewScheduleContext(di *devbelt.Container) (*ScheduleContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise schedule context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	sc := &ScheduleContext{
		app: application.ScheduleApplication{
			ExplainCron: instrument(di, logger, application.NewExplainCronRequestHandler(di.Config.Tools.MaxBatch, time.Now)),
			BuildCron:   instrument(di, logger, application.NewBuildCronRequestHandler()),
		},
		logger: logger,
	}

	sc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(sc.cli())
	di.RegisterTool("cron")

	logger.DebugContext(context.Background(), "schedule context initialised")

	return sc, nil
}

type ScheduleContext struct {
	app    application.ScheduleApplication
	logger alog.Logger
}

func (sc *ScheduleContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewScheduleController(sc.app)

	api := di.APIRouter.Group("/" + contextName)
	api.POST("/cron/explain", controller.ExplainCron())
	api.POST("/cron/build", controller.BuildCron())
}

func instrument[Req any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	req app.Request[Req, Res],
) app.Request[Req, Res] {
	return app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedRequest(di.Validate, req))
}
