package domain

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

var (
	ErrInvalidIP    = errors.New("invalid ip address")
	ErrLookupFailed = errors.New("lookup failed")
)

// Location is the geolocation of an ip address. Fields unknown to the source are empty.
type Location struct {
	IP          string
	City        string
	Region      string
	Country     string
	CountryCode string
	Postal      string
	Latitude    float64
	Longitude   float64
	Timezone    string
	Org         string
}

// AddressEcho returns the public address of the machine running devbelt.
type AddressEcho interface {
	PublicIP(ctx context.Context, v6 bool) (netip.Addr, error)
}

// Geolocator resolves an ip address to its location.
type Geolocator interface {
	Locate(ctx context.Context, ip netip.Addr) (Location, error)
}

// ParseIP accepts IPv4 and IPv6 addresses, IPv4 mapped IPv6 addresses are unmapped.
func ParseIP(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidIP, s)
	}

	return addr.Unmap(), nil
}

// reserved are special purpose ranges that are never routed on the internet.
var reserved = []netip.Prefix{ //nolint:gochecknoglobals
	netip.MustParsePrefix("0.0.0.0/8"),       // this network
	netip.MustParsePrefix("100.64.0.0/10"),   // shared address space, carrier grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // documentation
	netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
	netip.MustParsePrefix("198.51.100.0/24"), // documentation
	netip.MustParsePrefix("203.0.113.0/24"),  // documentation
	netip.MustParsePrefix("240.0.0.0/4"),     // future use
	netip.MustParsePrefix("100::/64"),        // discard only
	netip.MustParsePrefix("2001:db8::/32"),   // documentation
}

// IsPublic reports if addr is routed on the internet, so that it can have a location.
func IsPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range reserved {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
