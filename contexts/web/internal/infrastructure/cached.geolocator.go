package infrastructure

import (
	"context"
	"fmt"
	"net/netip"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

// NewCachedGeolocator keeps the last size locations of next in memory.
// Failed lookups are not cached.
func NewCachedGeolocator(next domain.Geolocator, size int) (*CachedGeolocator, error) {
	cache, err := lru.New[netip.Addr, domain.Location](size)
	if err != nil {
		return nil, fmt.Errorf("could not create location cache: %w", err)
	}

	return &CachedGeolocator{next: next, cache: cache}, nil
}

type CachedGeolocator struct {
	next  domain.Geolocator
	cache *lru.Cache[netip.Addr, domain.Location]
}

var _ domain.Geolocator = (*CachedGeolocator)(nil)

func (c *CachedGeolocator) Locate(ctx context.Context, ip netip.Addr) (domain.Location, error) {
	if loc, ok := c.cache.Get(ip); ok {
		return loc, nil
	}

	loc, err := c.next.Locate(ctx, ip)
	if err != nil {
		return domain.Location{}, err //nolint:wrapcheck // decorator is transparent
	}

	c.cache.Add(ip, loc)

	return loc, nil
}
