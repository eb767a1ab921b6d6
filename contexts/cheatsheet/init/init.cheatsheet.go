// Package init is the context's startup API.
package init

import (
	"context"
	"fmt"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/application"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/infrastructure"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/interfaces/web"
)

const contextName = "cheatsheet"

func NewCheatsheetContext(di *devbelt.Container) (*CheatsheetContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise cheatsheet context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	repo, err := infrastructure.NewEmbeddedSheetRepository()
	if err != nil {
		return nil, fmt.Errorf("could not initialise cheatsheet context: %w", err)
	}

	cc := &CheatsheetContext{
		app: application.CheatsheetApplication{
			ListSheets: instrument(di, logger, application.NewListSheetsQueryHandler(repo)),
			GetSheet:   instrument(di, logger, application.NewGetSheetQueryHandler(repo)),
		},
		logger: logger,
	}

	cc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(cc.cli())
	di.RegisterTool(contextName)

	logger.DebugContext(context.Background(), "cheatsheet context initialised")

	return cc, nil
}

type CheatsheetContext struct {
	app    application.CheatsheetApplication
	logger alog.Logger
}

func (cc *CheatsheetContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewCheatsheetController(cc.app)

	api := di.APIRouter.Group("/cheatsheets")
	api.GET("", controller.ListSheets())
	api.GET("/", controller.ListSheets())
	api.GET("/:language", controller.GetSheet())
}

func instrument[Q any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	query app.Query[Q, Res],
) app.Query[Q, Res] {
	return app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedQuery(di.Validate, query))
}
