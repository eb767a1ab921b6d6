package application_test

import (
	"context"
	"net/netip"
	"sync/atomic"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

var ctx = context.Background()

const chromeOnWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36" //nolint:lll // real user agent

// fakeEcho returns the configured address per family, an invalid one fails the call.
type fakeEcho struct {
	v4, v6 netip.Addr
}

func (e fakeEcho) PublicIP(_ context.Context, v6 bool) (netip.Addr, error) {
	addr := e.v4
	if v6 {
		addr = e.v6
	}

	if !addr.IsValid() {
		return netip.Addr{}, domain.ErrLookupFailed
	}

	return addr, nil
}

type fakeGeolocator struct {
	calls atomic.Int32
	last  atomic.Value
	err   error
}

func (g *fakeGeolocator) Locate(_ context.Context, ip netip.Addr) (domain.Location, error) {
	g.calls.Add(1)
	g.last.Store(ip)

	if g.err != nil {
		return domain.Location{}, g.err
	}

	return domain.Location{IP: ip.String(), City: "Berlin", CountryCode: "DE"}, nil
}
