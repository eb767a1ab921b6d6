package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
	"github.com/iseif/devbelt/secret"
)

// NewIPAPIClient returns a Geolocator using the ipapi.co API.
// urlTemplate contains a single %s for the ip address, e.g. https://ipapi.co/%s/json/.
// The key is optional, without one the free tier is used.
func NewIPAPIClient(client *http.Client, urlTemplate string, key secret.Secret, retries int) *IPAPIClient {
	return &IPAPIClient{client: client, urlTemplate: urlTemplate, key: key, retries: retries}
}

type IPAPIClient struct {
	client      *http.Client
	urlTemplate string
	key         secret.Secret
	retries     int
}

var _ domain.Geolocator = (*IPAPIClient)(nil)

type ipapiResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Postal      string  `json:"postal"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Org         string  `json:"org"`

	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (c *IPAPIClient) Locate(ctx context.Context, ip netip.Addr) (domain.Location, error) {
	u := fmt.Sprintf(c.urlTemplate, url.PathEscape(ip.String()))
	if !c.key.IsEmpty() {
		u += "?key=" + url.QueryEscape(c.key.Secret())
	}

	var res ipapiResponse
	if err := getJSON(ctx, c.client, u, c.retries, &res); err != nil {
		return domain.Location{}, err
	}

	if res.Error {
		return domain.Location{}, fmt.Errorf("%w: %s", domain.ErrLookupFailed, res.Reason)
	}

	return domain.Location{
		IP:          res.IP,
		City:        res.City,
		Region:      res.Region,
		Country:     res.Country,
		CountryCode: res.CountryCode,
		Postal:      res.Postal,
		Latitude:    res.Latitude,
		Longitude:   res.Longitude,
		Timezone:    res.Timezone,
		Org:         res.Org,
	}, nil
}
