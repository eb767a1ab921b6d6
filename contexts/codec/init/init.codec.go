// Package init is the context's startup API.
//
// It wires the codec tools into the HTTP API and the CLI of devbelt.
package init

import (
	"context"
	"fmt"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/application"
	"github.com/iseif/devbelt/contexts/codec/internal/interfaces/web"
)

const contextName = "codec"

func NewCodecContext(di *devbelt.Container) (*CodecContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise codec context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	cc := &CodecContext{
		app: application.CodecApplication{
			EncodeBase64:  instrument(di, logger, application.NewEncodeBase64RequestHandler()),
			DecodeBase64:  instrument(di, logger, application.NewDecodeBase64RequestHandler()),
			EncodeDataURI: instrument(di, logger, application.NewEncodeDataURIRequestHandler()),
			EncodeBase58:  instrument(di, logger, application.NewEncodeBase58RequestHandler()),
			DecodeBase58:  instrument(di, logger, application.NewDecodeBase58RequestHandler()),
			ConvertBase:   instrument(di, logger, application.NewConvertBaseRequestHandler()),
			Hexdump:       instrument(di, logger, application.NewHexdumpRequestHandler(di.Config.Tools.HexdumpBytesPerRow)),
			Escape:        instrument(di, logger, application.NewEscapeRequestHandler()),
		},
		logger: logger,
	}

	cc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(cc.cli())
	di.RegisterTool("base64", "base58", "numbase", "hexdump", "escape")

	logger.DebugContext(context.Background(), "codec context initialised")

	return cc, nil
}

type CodecContext struct {
	app    application.CodecApplication
	logger alog.Logger
}

func (cc *CodecContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewCodecController(cc.app)

	api := di.APIRouter.Group("/" + contextName)
	api.POST("/base64/encode", controller.EncodeBase64())
	api.POST("/base64/decode", controller.DecodeBase64())
	api.POST("/base64/file", controller.EncodeDataURI())
	api.POST("/base58/encode", controller.EncodeBase58())
	api.POST("/base58/decode", controller.DecodeBase58())
	api.POST("/numbase", controller.ConvertBase())
	api.POST("/hexdump", controller.Hexdump())
	api.POST("/escape", controller.Escape())
}

func instrument[Req any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	req app.Request[Req, Res],
) app.Request[Req, Res] {
	return app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedRequest(di.Validate, req))
}
