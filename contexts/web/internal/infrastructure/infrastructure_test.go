package infrastructure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
	"github.com/iseif/devbelt/contexts/web/internal/infrastructure"
	"github.com/iseif/devbelt/secret"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var ctx = context.Background()

func TestIPEchoClient_PublicIP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v4":
			_, _ = w.Write([]byte(`{"ip":"93.184.216.34"}`))
		case "/v6":
			_, _ = w.Write([]byte(`{"ip":"2606:2800:220:1:248:1893:25c8:1946"}`))
		case "/v6-fallback":
			_, _ = w.Write([]byte(`{"ip":"93.184.216.34"}`))
		default:
			_, _ = w.Write([]byte(`{"ip":"not-an-ip"}`))
		}
	}))
	t.Cleanup(srv.Close)

	t.Run("v4 and v6", func(t *testing.T) {
		t.Parallel()

		client := infrastructure.NewIPEchoClient(srv.Client(), srv.URL+"/v4", srv.URL+"/v6", 0)

		v4, err := client.PublicIP(ctx, false)
		assert.NoError(t, err)
		assert.Equal(t, "93.184.216.34", v4.String())

		v6, err := client.PublicIP(ctx, true)
		assert.NoError(t, err)
		assert.True(t, v6.Is6())
	})

	t.Run("no v6 connectivity", func(t *testing.T) {
		t.Parallel()

		client := infrastructure.NewIPEchoClient(srv.Client(), srv.URL+"/v4", srv.URL+"/v6-fallback", 0)

		_, err := client.PublicIP(ctx, true)
		assert.ErrorIs(t, err, domain.ErrLookupFailed)
	})

	t.Run("invalid answer", func(t *testing.T) {
		t.Parallel()

		client := infrastructure.NewIPEchoClient(srv.Client(), srv.URL+"/garbage", "", 0)

		_, err := client.PublicIP(ctx, false)
		assert.ErrorIs(t, err, domain.ErrLookupFailed)
	})
}

func TestIPAPIClient_Locate(t *testing.T) {
	t.Parallel()

	t.Run("locate", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
			assert.Equal(t, "s3cr3t", r.URL.Query().Get("key"))

			_, _ = w.Write([]byte(`{"ip":"8.8.8.8","city":"Mountain View","region":"California","country_name":"United States",
				"country_code":"US","latitude":37.42301,"longitude":-122.083352,"timezone":"America/Los_Angeles","org":"GOOGLE"}`))
		}))
		defer srv.Close()

		client := infrastructure.NewIPAPIClient(srv.Client(), srv.URL+"/%s/json/", secret.New("s3cr3t"), 0)

		loc, err := client.Locate(ctx, netip.MustParseAddr("8.8.8.8"))
		assert.NoError(t, err)
		assert.Equal(t, domain.Location{
			IP:          "8.8.8.8",
			City:        "Mountain View",
			Region:      "California",
			Country:     "United States",
			CountryCode: "US",
			Latitude:    37.42301,
			Longitude:   -122.083352,
			Timezone:    "America/Los_Angeles",
			Org:         "GOOGLE",
		}, loc)
	})

	t.Run("reserved address", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"10.0.0.1","error":true,"reason":"Reserved IP Address"}`))
		}))
		defer srv.Close()

		client := infrastructure.NewIPAPIClient(srv.Client(), srv.URL+"/%s/json/", secret.New(""), 0)

		_, err := client.Locate(ctx, netip.MustParseAddr("10.0.0.1"))
		assert.ErrorIs(t, err, domain.ErrLookupFailed)
		assert.ErrorContains(t, err, "Reserved IP Address")
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			_, _ = w.Write([]byte(`{"ip":"1.1.1.1","city":"Sydney"}`))
		}))
		defer srv.Close()

		client := infrastructure.NewIPAPIClient(srv.Client(), srv.URL+"/%s/json/", secret.New(""), 2)

		loc, err := client.Locate(ctx, netip.MustParseAddr("1.1.1.1"))
		assert.NoError(t, err)
		assert.Equal(t, "Sydney", loc.City)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := infrastructure.NewIPAPIClient(srv.Client(), srv.URL+"/%s/json/", secret.New(""), 3)

		_, err := client.Locate(ctx, netip.MustParseAddr("1.1.1.1"))
		assert.ErrorIs(t, err, domain.ErrLookupFailed)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		client := infrastructure.NewIPAPIClient(srv.Client(), srv.URL+"/%s/json/", secret.New(""), 5)

		_, err := client.Locate(canceled, netip.MustParseAddr("1.1.1.1"))
		assert.ErrorIs(t, err, domain.ErrLookupFailed)
	})
}

type countingGeolocator struct {
	calls atomic.Int32
	err   error
}

func (g *countingGeolocator) Locate(_ context.Context, ip netip.Addr) (domain.Location, error) {
	g.calls.Add(1)

	if g.err != nil {
		return domain.Location{}, g.err
	}

	return domain.Location{IP: ip.String()}, nil
}

func TestCachedGeolocator(t *testing.T) {
	t.Parallel()

	t.Run("cache hits", func(t *testing.T) {
		t.Parallel()

		next := &countingGeolocator{}
		cached, err := infrastructure.NewCachedGeolocator(next, 1)
		require.NoError(t, err)

		a, b := netip.MustParseAddr("1.1.1.1"), netip.MustParseAddr("8.8.8.8")

		for _, ip := range []netip.Addr{a, a, b, b, a} {
			loc, err := cached.Locate(ctx, ip)
			assert.NoError(t, err)
			assert.Equal(t, ip.String(), loc.IP)
		}

		assert.Equal(t, int32(3), next.calls.Load(), "size one evicts a, when b is added")
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		next := &countingGeolocator{err: domain.ErrLookupFailed}
		cached, err := infrastructure.NewCachedGeolocator(next, 10)
		require.NoError(t, err)

		for range 2 {
			_, err := cached.Locate(ctx, netip.MustParseAddr("1.1.1.1"))
			assert.ErrorIs(t, err, domain.ErrLookupFailed)
		}

		assert.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("invalid size", func(t *testing.T) {
		t.Parallel()

		_, err := infrastructure.NewCachedGeolocator(&countingGeolocator{}, 0)
		assert.Error(t, err)
	})
}

func TestNewIP2Location(t *testing.T) {
	t.Parallel()

	_, err := infrastructure.NewIP2Location("testdata/does-not-exist.BIN")
	assert.Error(t, err)
}
