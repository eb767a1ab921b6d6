package devbelt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/cmd"
)

var ErrMissingDependency = errors.New("missing dependency")

// Container holds global dependencies that can be used within each tool Context, to make initialisation easier.
type Container struct {
	Logger        alog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider
	// Registry collects all prometheus metrics of this Container.
	// It is not the global default registry, so multiple Containers can live in one process, e.g. in tests.
	Registry *prometheusSDK.Registry

	Config   *Config
	Validate *validator.Validate

	WebRouter *echo.Echo
	APIRouter *echo.Group

	RootCmd *cobra.Command

	mu              sync.Mutex
	tools           []string
	startedAt       time.Time
	metricsEndpoint *http.Server
}

// New returns a Container with the default configuration of DefaultViper.
func New() (*Container, error) {
	conf := &Config{}
	if err := DefaultViper().Unmarshal(conf); err != nil {
		return nil, err
	}

	conf.InstanceName = getOutboundIP()

	return InitialiseDefaultDependencies(context.Background(), conf)
}

func (c *Container) EnsureAllDependenciesPresent() error {
	if c.Config == nil {
		return fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if c.Logger == nil || c.WebRouter == nil || c.RootCmd == nil {
		return fmt.Errorf("%w: container is not initialised", ErrMissingDependency)
	}

	return nil
}

func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	dc := &Container{
		Config:   conf,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		tools:    []string{},
	}

	{ // observability
		resource := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName(conf)),
			attribute.String("environment", string(conf.Environment)),
		)

		{ // traces
			opts := []trace.TracerProviderOption{trace.WithResource(resource)}

			if conf.OTEL.Host != "" {
				exporterOpts := []otlptracegrpc.Option{
					otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port)),
					otlptracegrpc.WithInsecure(),
				}

				if conf.Environment == TestEnv {
					// while unit testing no otel endpoint is running, so the shutdown would block too long.
					exporterOpts = append(exporterOpts, otlptracegrpc.WithTimeout(10*time.Millisecond))
				}

				traceExporter, err := otlptracegrpc.New(ctx, exporterOpts...)
				if err != nil {
					return nil, fmt.Errorf("could not connect to trace exporter: %w", err)
				}

				opts = append(opts, trace.WithBatcher(traceExporter))
			}

			if conf.Environment == LocalEnv {
				opts = append(opts, trace.WithSampler(trace.AlwaysSample()))
			} else {
				opts = append(opts, trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(0.6)))) //nolint:mnd
			}

			dc.TraceProvider = trace.NewTracerProvider(opts...)
			otel.SetTracerProvider(dc.TraceProvider)
		}

		{ // metrics
			dc.Registry = prometheusSDK.NewRegistry()

			exporter, err := prometheus.New(prometheus.WithRegisterer(dc.Registry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(resource),
				metric.WithReader(exporter),
			)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		logger, err := newLogger(conf)
		if err != nil {
			return nil, err
		}

		dc.Logger = logger
	}

	{ // web routers
		router := echo.New()
		router.HideBanner = true
		router.HidePort = true
		router.Logger.SetOutput(io.Discard)
		router.Validator = &CustomValidator{validator: dc.Validate}
		router.IPExtractor = echo.ExtractIPFromXFFHeader() // see: https://echo.labstack.com/docs/ip-address
		router.HTTPErrorHandler = jsonErrorHandler(dc.Logger)

		router.Use(middleware.Recover())
		router.Use(otelecho.Middleware(serviceName(conf), otelecho.WithTracerProvider(dc.TraceProvider)))
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricSubsystem(conf.ApplicationName),
			Registerer: dc.Registry,
		}))
		router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TargetHeader: echo.HeaderXRequestID,
			RequestIDHandler: func(c echo.Context, rid string) {
				c.SetRequest(c.Request().WithContext(alog.AddAttr(
					c.Request().Context(),
					slog.String("request_id", rid)),
				))
			},
		}))
		router.Use(requestLogger(dc.Logger))

		if conf.Environment == LocalEnv {
			router.Debug = true
		}

		dc.WebRouter = router
		dc.APIRouter = router.Group("/api")
		dc.APIRouter.GET("/tools", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string][]string{"tools": dc.Tools()})
		})
	}

	{ // cli
		dc.RootCmd = cmd.NewRoot(conf.ApplicationName)
		dc.RootCmd.AddCommand(serveCmd(dc))
	}

	return dc, nil
}

// RegisterTool records that a tool is available.
// Each Context registers its tools, so they are listed by GET /api/tools and the status endpoint.
func (c *Container) RegisterTool(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range names {
		if !slices.Contains(c.tools, name) {
			c.tools = append(c.tools, name)
		}
	}

	slices.Sort(c.tools)
}

// Tools returns the names of all registered tools in alphabetical order.
func (c *Container) Tools() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.tools)
}

func (c *Container) Start(ctx context.Context) error {
	if err := c.EnsureAllDependenciesPresent(); err != nil {
		return err
	}

	c.Logger.LogAttrs(ctx, alog.LevelInfo, "starting all servers",
		slog.Int("port", c.Config.HTTP.Port),
		slog.Any("tools", c.Tools()),
	)

	c.startedAt = time.Now()

	if c.Config.HTTP.StatusEndpointEnabled {
		c.metricsEndpoint = serveMetrics(ctx, c)
	}

	go func() {
		err := c.WebRouter.Start(fmt.Sprintf(":%d", c.Config.HTTP.Port))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.InfoContext(ctx, "could not serve http", alog.Error(err))
		}
	}()

	return nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down all servers")

	var errs error

	if err := c.WebRouter.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("could not shutdown web router: %w", err))
	}

	if c.metricsEndpoint != nil {
		if err := c.metricsEndpoint.Shutdown(ctx); err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not shutdown status endpoint: %w", err))
		}
	}

	if err := c.TraceProvider.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("could not shutdown trace provider: %w", err))
	}

	if err := c.MeterProvider.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("could not shutdown meter provider: %w", err))
	}

	return errs
}

func serveCmd(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve all tools as JSON API",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := c.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()

			const shutdownTimeout = 10 * time.Second

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return c.Shutdown(shutdownCtx)
		},
	}
}

func newLogger(conf *Config) (alog.Logger, error) { //nolint:ireturn // the TestEnv returns a different implementation
	var logger *slog.Logger

	switch conf.Environment {
	case LocalEnv:
		logger = alog.NewDevelopment(conf.Log.LokiURL)
	case TestEnv:
		return alog.NewNoop(), nil
	default:
		logger = alog.New()
	}

	if conf.Log.Level != "" {
		level, err := alog.ParseLevel(conf.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid log level: %v", errConfigLoadFailed, err) //nolint:errorlint // prevent err in api
		}

		if leveler := alog.Unwrap(logger); leveler != nil {
			leveler.SetLevel(level)
		}
	}

	logger = logger.With(
		slog.String("organisation_name", conf.OrganisationName),
		slog.String("application_name", conf.ApplicationName),
		slog.String("instance_name", conf.InstanceName),
		slog.String("git_hash", gitHash()),
		slog.String("environment", string(conf.Environment)),
	)

	slog.SetDefault(logger)

	return logger, nil
}

func requestLogger(logger alog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, alog.Error(v.Error))
			}

			logger.LogAttrs(c.Request().Context(), alog.LevelInfo, "http request", attrs...)

			return nil
		},
	})
}

// jsonErrorHandler renders every error as {"error": "..."}.
// Tools report a single line, so internal details of non echo errors are not leaked.
func jsonErrorHandler(logger alog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		} else {
			logger.InfoContext(c.Request().Context(), "unhandled error", alog.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{"error": msg})
		}

		if err != nil {
			logger.DebugContext(c.Request().Context(), "could not write error response", alog.Error(err))
		}
	}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err //nolint:wrapcheck // return the original validate error to not break the API for the caller.
	}

	return nil
}

func serviceName(conf *Config) string {
	if conf.OTEL.Hostname != "" {
		return conf.OTEL.Hostname
	}

	if conf.OrganisationName == "" {
		return conf.ApplicationName
	}

	return conf.OrganisationName + "." + conf.ApplicationName
}

// metricSubsystem turns the application name into a valid prometheus name.
func metricSubsystem(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}

		return '_'
	}, name)
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// Get preferred outbound ip of this machine.
//
// It does not establish any connection and the destination does not need to exist.
// conn.LocalAddr().String() is the local ip and port.
// https://stackoverflow.com/questions/23558425/how-do-i-get-the-local-ip-address-in-go
func getOutboundIP() string {
	conn, err := net.Dial("udp", "5.1.66.255:80")
	if err != nil {
		return "localhost"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}

	return "localhost"
}
