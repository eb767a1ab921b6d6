package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

// NewIPEchoClient returns an AddressEcho for services answering with {"ip": "..."},
// like https://api.ipify.org?format=json. v6URL is queried for the IPv6 address.
func NewIPEchoClient(client *http.Client, v4URL string, v6URL string, retries int) *IPEchoClient {
	return &IPEchoClient{client: client, v4URL: v4URL, v6URL: v6URL, retries: retries}
}

type IPEchoClient struct {
	client  *http.Client
	v4URL   string
	v6URL   string
	retries int
}

var _ domain.AddressEcho = (*IPEchoClient)(nil)

func (c *IPEchoClient) PublicIP(ctx context.Context, v6 bool) (netip.Addr, error) {
	url := c.v4URL
	if v6 {
		url = c.v6URL
	}

	var res struct {
		IP string `json:"ip"`
	}

	if err := getJSON(ctx, c.client, url, c.retries, &res); err != nil {
		return netip.Addr{}, err
	}

	addr, err := domain.ParseIP(res.IP)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: echo service returned %q", domain.ErrLookupFailed, res.IP)
	}

	// the v6 service answers with the v4 address, if the network has no v6 connectivity.
	if v6 != addr.Is6() {
		family := "IPv4"
		if v6 {
			family = "IPv6"
		}

		return netip.Addr{}, fmt.Errorf("%w: no public %s address", domain.ErrLookupFailed, family)
	}

	return addr, nil
}
