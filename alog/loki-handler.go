package alog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/afiskon/promtail-client/promtail"
)

const defaultLokiPushURL = "http://localhost:3100/api/prom/push"

type LokiHandlerOptions struct {
	Labels  map[string]string
	PushURL string
}

// NewLokiHandler use this handler only for local development!
//
// It ships the logs to a local loki instance, so the same grafana setup can be used as in production.
// If loki is not reachable when the handler is created, it keeps trying to connect in the background
// and drops all records until then.
func NewLokiHandler(opt *LokiHandlerOptions) *LokiHandler {
	conf := promtailConfig(opt)

	buf := &bytes.Buffer{}
	handler := &LokiHandler{
		mu: &sync.Mutex{},
		renderer: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       LevelDebug, // the level is controlled by the devbelt handler.
			ReplaceAttr: MapLogLevelsToName,
		}),
		output: buf,
	}

	if client := newPromtailClient(conf); client != nil {
		handler.client = client
	} else {
		go handler.reconnect(conf)
	}

	return handler
}

// LokiHandler renders each record as JSON and pushes it to loki.
type LokiHandler struct {
	// mu is shared with all handlers derived via WithAttrs and WithGroup,
	// as they write to the same output buffer.
	mu     *sync.Mutex
	client promtail.Client

	renderer slog.Handler
	output   *bytes.Buffer
}

var _ slog.Handler = (*LokiHandler)(nil)

func (l *LokiHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (l *LokiHandler) Handle(ctx context.Context, record slog.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client == nil {
		return nil
	}

	defer l.output.Reset()

	if err := l.renderer.Handle(ctx, record); err != nil {
		return fmt.Errorf("could not render loki record: %w", err)
	}

	line := strings.TrimSpace(l.output.String())

	switch {
	case record.Level >= slog.LevelError:
		l.client.Errorf("%s", line)
	case record.Level >= slog.LevelWarn:
		l.client.Warnf("%s", line)
	case record.Level >= slog.LevelInfo:
		l.client.Infof("%s", line)
	default:
		l.client.Debugf("%s", line)
	}

	return nil
}

func (l *LokiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &LokiHandler{mu: l.mu, client: l.client, renderer: l.renderer.WithAttrs(attrs), output: l.output}
}

func (l *LokiHandler) WithGroup(name string) slog.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &LokiHandler{mu: l.mu, client: l.client, renderer: l.renderer.WithGroup(name), output: l.output}
}

func (l *LokiHandler) reconnect(conf promtail.ClientConfig) {
	const retryInterval = 15 * time.Second

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for range ticker.C {
		client := newPromtailClient(conf)
		if client == nil {
			continue
		}

		l.mu.Lock()
		l.client = client
		l.mu.Unlock()

		return
	}
}

func promtailConfig(opt *LokiHandlerOptions) promtail.ClientConfig {
	pushURL := defaultLokiPushURL
	labels := map[string]string{"devbelt": "application", "client": "devbelt-loki"}

	if opt != nil {
		if opt.PushURL != "" {
			pushURL = opt.PushURL
		}

		if len(opt.Labels) != 0 {
			labels = opt.Labels
		}
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, labels[k]))
	}

	return promtail.ClientConfig{
		PushURL:            pushURL,
		Labels:             "{" + strings.Join(pairs, ",") + "}",
		BatchWait:          time.Second,
		BatchEntriesNumber: 1,
		SendLevel:          promtail.DEBUG,
		PrintLevel:         promtail.DISABLE,
	}
}

// newPromtailClient returns nil, if loki can not be reached.
func newPromtailClient(conf promtail.ClientConfig) promtail.Client { //nolint:ireturn // promtail only returns the interface
	const pingTimeout = 2 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, conf.PushURL, nil)
	if err != nil {
		return nil
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}

	_ = res.Body.Close()

	client, _ := promtail.NewClientJson(conf) // the constructor never returns an error

	return client
}
