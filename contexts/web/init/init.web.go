// Package init is the context's startup API.
package init

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/application"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
	"github.com/iseif/devbelt/contexts/web/internal/infrastructure"
	"github.com/iseif/devbelt/contexts/web/internal/interfaces/web"
)

const contextName = "web"

func NewWebContext(di *devbelt.Container) (*WebContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise web context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)
	conf := di.Config.IPInfo
	client := &http.Client{Timeout: conf.Timeout}

	geo, closer, err := geolocator(conf, client)
	if err != nil {
		return nil, fmt.Errorf("could not initialise web context: %w", err)
	}

	logger.LogAttrs(context.Background(), alog.LevelDebug, "geolocation configured",
		slog.Bool("offline", conf.DatabasePath != ""),
		slog.Int("cache_size", conf.CacheSize),
	)

	wc := &WebContext{
		app: application.WebApplication{
			ParseUserAgent: instrument(di, logger, application.NewParseUserAgentRequestHandler()),
			LookupIP: instrument(di, logger, application.NewLookupIPRequestHandler(
				logger,
				infrastructure.NewIPEchoClient(client, conf.EchoURL, conf.Echo6URL, conf.Retries),
				geo,
			)),
			WhoAmI:         instrument(di, logger, application.NewWhoAmIRequestHandler()),
			Gradient:       instrument(di, logger, application.NewGradientRequestHandler()),
			RandomGradient: instrument(di, logger, application.NewRandomGradientRequestHandler()),
			Minify:         instrument(di, logger, application.NewMinifyRequestHandler(domain.NewMinifier())),
		},
		logger: logger,
		closer: closer,
	}

	wc.registerAPIRoutes(di)
	di.RootCmd.AddCommand(wc.cli())
	di.RegisterTool("useragent", "ip", "gradient", "minify")

	logger.DebugContext(context.Background(), "web context initialised")

	return wc, nil
}

type WebContext struct {
	app    application.WebApplication
	logger alog.Logger
	closer io.Closer
}

// Shutdown releases the offline geolocation database, if one is open.
func (wc *WebContext) Shutdown(_ context.Context) error {
	if wc.closer == nil {
		return nil
	}

	return wc.closer.Close() //nolint:wrapcheck // nothing to add
}

func (wc *WebContext) registerAPIRoutes(di *devbelt.Container) {
	controller := web.NewWebController(wc.app)

	api := di.APIRouter.Group("/" + contextName)
	api.POST("/useragent", controller.ParseUserAgent())
	api.GET("/ip", controller.LookupIP())
	api.GET("/ip/me", controller.WhoAmI())
	api.POST("/gradient", controller.Gradient())
	api.POST("/gradient/random", controller.RandomGradient())
	api.POST("/minify", controller.Minify())
}

// geolocator prefers the offline database over the remote service.
// Both are cached, as locations rarely change.
func geolocator(conf devbelt.IPInfo, client *http.Client) (domain.Geolocator, io.Closer, error) { //nolint:ireturn // the source depends on the configuration
	var (
		source domain.Geolocator
		closer io.Closer
	)

	if conf.DatabasePath != "" {
		db, err := infrastructure.NewIP2Location(conf.DatabasePath)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck // the caller wraps
		}

		source, closer = db, db
	} else {
		source = infrastructure.NewIPAPIClient(client, conf.GeoURL, conf.APIKey, conf.Retries)
	}

	if conf.CacheSize <= 0 {
		return source, closer, nil
	}

	cached, err := infrastructure.NewCachedGeolocator(source, conf.CacheSize)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // the caller wraps
	}

	return cached, closer, nil
}

func instrument[Req any, Res any](
	di *devbelt.Container,
	logger alog.Logger,
	req app.Request[Req, Res],
) app.Request[Req, Res] {
	return app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger, app.NewValidatedRequest(di.Validate, req))
}
