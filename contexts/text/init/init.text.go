// Package init is the context's startup API.
package init

import (
	"context"
	"fmt"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/text/internal/application"
	"github.com/iseif/devbelt/contexts/text/internal/interfaces/web"
)

const contextName = "text"

func NewTextContext(di *devbelt.Container) (*TextContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise text context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	tc := &TextContext{
		app: application.TextApplication{
			Slugify:    instrument(di, logger, application.NewSlugifyRequestHandler()),
			Count:      instrument(di, logger, application.NewCountRequestHandler()),
			MatchRegex: instrument(di, logger, application.NewMatchRegexRequestHandler()),
			FormatJSON: instrument(di, logger, application.NewFormatJSONRequestHandler()),
			TreeJSON:   instrument(di, logger, application.NewTreeJSONRequestHandler()),
			JSONToYAML: instrument(di, logger, application.NewJSONToYAMLRequestHandler()),
		},
		logger: logger,
	}

	tc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(tc.cli())
	di.RegisterTool("slug", "count", "regex", "json")

	logger.DebugContext(context.Background(), "text context initialised")

	return tc, nil
}

type TextContext struct {
	app    application.TextApplication
	logger alog.Logger
}

func (tc *TextContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewTextController(tc.app)

	api := di.APIRouter.Group("/" + contextName)
	api.POST("/slug", controller.Slugify())
	api.POST("/count", controller.Count())
	api.POST("/regex", controller.MatchRegex())
	api.POST("/json/format", controller.FormatJSON())
	api.POST("/json/tree", controller.TreeJSON())
	api.POST("/json/yaml", controller.JSONToYAML())
}

func instrument[Req any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	req app.Request[Req, Res],
) app.Request[Req, Res] {
	return app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedRequest(di.Validate, req))
}
