// Package init is the context's startup API.
package init

import (
	"context"
	"fmt"
	"time"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/crypto/internal/application"
	"github.com/iseif/devbelt/contexts/crypto/internal/interfaces/web"
)

const contextName = "crypto"

func NewCryptoContext(di *devbelt.Container) (*CryptoContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise crypto context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)
	maxBatch := di.Config.Tools.MaxBatch

	cc := &CryptoContext{
		app: application.CryptoApplication{
			Hash:          instrument(di, logger, application.NewHashRequestHandler()),
			HMAC:          instrument(di, logger, application.NewHMACRequestHandler()),
			BcryptHash:    instrument(di, logger, application.NewBcryptHashRequestHandler()),
			BcryptCompare: instrument(di, logger, application.NewBcryptCompareRequestHandler()),
			GenerateUUID:  instrument(di, logger, application.NewGenerateUUIDRequestHandler(maxBatch)),
			InspectUUID:   instrument(di, logger, application.NewInspectUUIDRequestHandler()),
			GenerateULID:  instrument(di, logger, application.NewGenerateULIDRequestHandler(maxBatch, time.Now)),
			InspectULID:   instrument(di, logger, application.NewInspectULIDRequestHandler()),
			DecodeJWT:     instrument(di, logger, application.NewDecodeJWTRequestHandler(time.Now)),
		},
		logger: logger,
	}

	cc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(cc.cli())
	di.RegisterTool("hash", "hmac", "bcrypt", "uuid", "ulid", "jwt")

	logger.DebugContext(context.Background(), "crypto context initialised")

	return cc, nil
}

type CryptoContext struct {
	app    application.CryptoApplication
	logger alog.Logger
}

func (cc *CryptoContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewCryptoController(cc.app)

	api := di.APIRouter.Group("/" + contextName)
	api.POST("/hash", controller.Hash())
	api.POST("/hmac", controller.HMAC())
	api.POST("/bcrypt/hash", controller.BcryptHash())
	api.POST("/bcrypt/compare", controller.BcryptCompare())
	api.POST("/uuid", controller.GenerateUUID())
	api.POST("/uuid/inspect", controller.InspectUUID())
	api.POST("/ulid", controller.GenerateULID())
	api.POST("/ulid/inspect", controller.InspectULID())
	api.POST("/jwt", controller.DecodeJWT())
}

func instrument[Req any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	req app.Request[Req, Res],
) app.Request[Req, Res] {
	return app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedRequest(di.Validate, req))
}
