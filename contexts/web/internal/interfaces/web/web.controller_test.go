package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/application"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
	"github.com/iseif/devbelt/contexts/web/internal/interfaces/web"
)

const firefoxOnLinux = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"

type offlineEcho struct{}

func (offlineEcho) PublicIP(context.Context, bool) (netip.Addr, error) {
	return netip.Addr{}, domain.ErrLookupFailed
}

type staticGeolocator struct{}

func (staticGeolocator) Locate(_ context.Context, ip netip.Addr) (domain.Location, error) {
	return domain.Location{IP: ip.String(), CountryCode: "US"}, nil
}

func serve(handler echo.HandlerFunc, method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", firefoxOnLinux)
	req.Header.Set(echo.HeaderXRealIP, "93.184.216.34")
	rec := httptest.NewRecorder()

	e := echo.New()
	e.Any("/", handler)
	e.ServeHTTP(rec, req)

	return rec
}

func TestWebController(t *testing.T) {
	t.Parallel()

	wc := web.NewWebController(application.WebApplication{
		ParseUserAgent: application.NewParseUserAgentRequestHandler(),
		LookupIP:       application.NewLookupIPRequestHandler(alog.NewNoop(), offlineEcho{}, staticGeolocator{}),
		WhoAmI:         application.NewWhoAmIRequestHandler(),
		Gradient:       application.NewGradientRequestHandler(),
		RandomGradient: application.NewRandomGradientRequestHandler(),
		Minify:         application.NewMinifyRequestHandler(domain.NewMinifier()),
	})

	tests := map[string]struct {
		handler  echo.HandlerFunc
		method   string
		target   string
		body     string
		code     int
		contains string
	}{
		"user agent from header": {
			wc.ParseUserAgent(), http.MethodPost, "/", `{}`,
			http.StatusOK, `"browser":"Firefox"`,
		},
		"user agent from body": {
			wc.ParseUserAgent(), http.MethodPost, "/", `{"userAgent":"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"}`,
			http.StatusOK, `"type":"bot"`,
		},
		"lookup ip": {
			wc.LookupIP(), http.MethodGet, "/?ip=8.8.8.8", "",
			http.StatusOK, `"location":{"ip":"8.8.8.8","countryCode":"US"`,
		},
		"lookup invalid ip": {
			wc.LookupIP(), http.MethodGet, "/?ip=nope", "",
			http.StatusBadRequest, "invalid ip address",
		},
		"lookup own ip offline": {
			wc.LookupIP(), http.MethodGet, "/", "",
			http.StatusBadGateway, "lookup failed",
		},
		"who am i": {
			wc.WhoAmI(), http.MethodGet, "/", "",
			http.StatusOK, `{"ip":"93.184.216.34","version":"IPv4","public":true`,
		},
		"gradient": {
			wc.Gradient(), http.MethodPost, "/", `{"angle":90,"stops":[{"color":"red"},{"color":"blue"}],"steps":2}`,
			http.StatusOK, `"css":"linear-gradient(90deg, #ff0000 0%, #0000ff 100%)"`,
		},
		"gradient invalid color": {
			wc.Gradient(), http.MethodPost, "/", `{"stops":[{"color":"red"},{"color":"#12"}]}`,
			http.StatusBadRequest, "invalid color",
		},
		"random gradient": {
			wc.RandomGradient(), http.MethodPost, "/", `{"angle":180}`,
			http.StatusOK, `linear-gradient(180deg, `,
		},
		"minify": {
			wc.Minify(), http.MethodPost, "/", `{"type":"css","source":"a { color : red ; }"}`,
			http.StatusOK, `"result":"a{color:red}"`,
		},
		"minify invalid source": {
			wc.Minify(), http.MethodPost, "/", `{"type":"json","source":"{\"a\" 1}"}`,
			http.StatusUnprocessableEntity, "minify failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := serve(tt.handler, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}

	t.Run("use case fails", func(t *testing.T) {
		t.Parallel()

		wc := web.NewWebController(application.WebApplication{
			WhoAmI: app.TestFailureRequestHandler[application.WhoAmIRequest, application.WhoAmIResponse](),
		})

		rec := serve(wc.WhoAmI(), http.MethodGet, "/", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
