package devbelt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPath = "/metrics"
	statusPath = "/status"
)

type systemStatus struct {
	Status           string      `json:"status"`
	Time             time.Time   `json:"time"`
	Uptime           string      `json:"uptime"`
	GitHash          string      `json:"gitHash"`
	OrganisationName string      `json:"organisationName"`
	ApplicationName  string      `json:"applicationName"`
	InstanceName     string      `json:"instanceName"`
	Environment      Environment `json:"environment"`
	Web              HTTP        `json:"web"`
	Tools            []string    `json:"tools"`
}

func getSystemStatus(di *Container, serverStartedAt time.Time) systemStatus {
	return systemStatus{
		Status:           "online",
		Time:             time.Now(),
		Uptime:           time.Since(serverStartedAt).Round(time.Second).String(),
		GitHash:          gitHash(),
		OrganisationName: di.Config.OrganisationName,
		ApplicationName:  di.Config.ApplicationName,
		InstanceName:     di.Config.InstanceName,
		Environment:      di.Config.Environment,
		Web:              di.Config.HTTP,
		Tools:            di.Tools(),
	}
}

// statusHandler returns the handler for the status endpoint, with the /metrics and /status paths.
func statusHandler(di *Container, serverStartedAt time.Time) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricPath, promhttp.HandlerFor(
		di.Registry,
		promhttp.HandlerOpts{ //nolint:exhaustruct
			EnableOpenMetrics: true, // to enable Examplars in the export format
		},
	))

	mux.HandleFunc(statusPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)

		_ = json.NewEncoder(w).Encode(getSystemStatus(di, serverStartedAt))
	})

	return mux
}

func serveMetrics(ctx context.Context, di *Container) *http.Server {
	srv := &http.Server{ //nolint:exhaustruct
		Addr:              fmt.Sprintf(":%d", di.Config.HTTP.StatusEndpointPort),
		Handler:           statusHandler(di, di.startedAt),
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	di.Logger.InfoContext(ctx, "serving status endpoint",
		slog.String("addr", srv.Addr),
		slog.String("metric_path", metricPath),
		slog.String("status_path", statusPath),
	)

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			di.Logger.DebugContext(ctx, "error serving http", slog.String("err", err.Error()))
		}
	}()

	return srv
}
