package infrastructure

import (
	"context"
	"fmt"
	"net/netip"
	"strings"
	"sync"

	"github.com/ip2location/ip2location-go/v9"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

// NewIP2Location returns a Geolocator reading an offline ip2location database, e.g. IP-COUNTRY-REGION-CITY.BIN.
//
// This site or product includes IP2Location LITE data available from
// <a href="https://lite.ip2location.com">https://lite.ip2location.com</a>.
func NewIP2Location(dbPath string) (*IP2Location, error) {
	db, err := ip2location.OpenDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ip2location database: %w", err)
	}

	return &IP2Location{db: db}, nil
}

type IP2Location struct {
	// mu guards db, its reader is not safe for concurrent use.
	mu sync.Mutex
	db *ip2location.DB
}

var _ domain.Geolocator = (*IP2Location)(nil)

func (s *IP2Location) Locate(_ context.Context, ip netip.Addr) (domain.Location, error) {
	s.mu.Lock()
	results, err := s.db.Get_all(ip.String())
	s.mu.Unlock()

	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err) //nolint:errorlint // prevent err in api
	}

	return domain.Location{
		IP:          ip.String(),
		City:        supported(results.City),
		Region:      supported(results.Region),
		Country:     supported(results.Country_long),
		CountryCode: supported(results.Country_short),
		Postal:      supported(results.Zipcode),
		Latitude:    float64(results.Latitude),
		Longitude:   float64(results.Longitude),
		Timezone:    supported(results.Timezone),
	}, nil
}

// supported drops the placeholder the database returns for fields it does not contain.
func supported(field string) string {
	if strings.HasPrefix(field, "This parameter is unavailable") || strings.HasPrefix(field, "Invalid") {
		return ""
	}

	return field
}

func (s *IP2Location) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.Close()

	return nil
}
