package application

import (
	"context"
	"errors"
	"net/netip"

	"golang.org/x/sync/errgroup"

	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

type (
	LookupIPRequest struct {
		// IP to look up. If empty, the public address of devbelt itself is used.
		IP string `json:"ip" query:"ip"`
	}
	LookupIPResponse struct {
		IPv4     string    `json:"ipv4,omitempty"`
		IPv6     string    `json:"ipv6,omitempty"`
		Location *Location `json:"location,omitempty"`
	}

	Location struct {
		IP          string  `json:"ip"`
		City        string  `json:"city,omitempty"`
		Region      string  `json:"region,omitempty"`
		Country     string  `json:"country,omitempty"`
		CountryCode string  `json:"countryCode,omitempty"`
		Postal      string  `json:"postal,omitempty"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Timezone    string  `json:"timezone,omitempty"`
		Org         string  `json:"org,omitempty"`
	}
)

func NewLookupIPRequestHandler(
	logger alog.Logger,
	echo domain.AddressEcho,
	geo domain.Geolocator,
) app.Request[LookupIPRequest, LookupIPResponse] {
	return &lookupIPRequestHandler{logger: logger, echo: echo, geo: geo}
}

type lookupIPRequestHandler struct {
	logger alog.Logger
	echo   domain.AddressEcho
	geo    domain.Geolocator
}

func (h *lookupIPRequestHandler) H(ctx context.Context, req LookupIPRequest) (LookupIPResponse, error) {
	var (
		res    LookupIPResponse
		locate netip.Addr
	)

	if req.IP != "" {
		addr, err := domain.ParseIP(req.IP)
		if err != nil {
			return LookupIPResponse{}, err //nolint:wrapcheck // domain errors are the api
		}

		setAddr(&res, addr)

		if !domain.IsPublic(addr) {
			return res, nil
		}

		locate = addr
	} else {
		v4, v6, err := h.publicAddresses(ctx)
		if err != nil {
			return LookupIPResponse{}, err
		}

		if v4.IsValid() {
			setAddr(&res, v4)
			locate = v4
		}

		if v6.IsValid() {
			setAddr(&res, v6)

			if !locate.IsValid() {
				locate = v6
			}
		}
	}

	loc, err := h.geo.Locate(ctx, locate)
	if err != nil {
		return LookupIPResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	res.Location = &Location{
		IP:          loc.IP,
		City:        loc.City,
		Region:      loc.Region,
		Country:     loc.Country,
		CountryCode: loc.CountryCode,
		Postal:      loc.Postal,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Timezone:    loc.Timezone,
		Org:         loc.Org,
	}

	return res, nil
}

// publicAddresses asks the echo services for both address families at once.
// Missing IPv6 connectivity is common, so only a failure of both is an error.
func (h *lookupIPRequestHandler) publicAddresses(ctx context.Context) (netip.Addr, netip.Addr, error) {
	var (
		g            errgroup.Group
		v4, v6       netip.Addr
		errV4, errV6 error
	)

	g.Go(func() error {
		v4, errV4 = h.echo.PublicIP(ctx, false)

		return nil
	})

	g.Go(func() error {
		v6, errV6 = h.echo.PublicIP(ctx, true)

		return nil
	})

	_ = g.Wait()

	if errV4 != nil && errV6 != nil {
		return netip.Addr{}, netip.Addr{}, errors.Join(errV4, errV6)
	}

	if errV4 != nil {
		h.logger.InfoContext(ctx, "no public IPv4 address", alog.Error(errV4))
	}

	if errV6 != nil {
		h.logger.DebugContext(ctx, "no public IPv6 address", alog.Error(errV6))
	}

	return v4, v6, nil
}

func setAddr(res *LookupIPResponse, addr netip.Addr) {
	if addr.Is4() {
		res.IPv4 = addr.String()
	} else {
		res.IPv6 = addr.String()
	}
}

type (
	WhoAmIRequest struct {
		IP        string `json:"ip"        validate:"required"`
		UserAgent string `json:"userAgent"`
	}
	WhoAmIResponse struct {
		IP        string                 `json:"ip"`
		Version   string                 `json:"version"`
		Public    bool                   `json:"public"`
		UserAgent ParseUserAgentResponse `json:"userAgent"`
	}
)

// NewWhoAmIRequestHandler describes the caller of a request, as seen by the server.
func NewWhoAmIRequestHandler() app.Request[WhoAmIRequest, WhoAmIResponse] {
	return app.RequestFunc[WhoAmIRequest, WhoAmIResponse](
		func(_ context.Context, req WhoAmIRequest) (WhoAmIResponse, error) {
			addr, err := domain.ParseIP(req.IP)
			if err != nil {
				return WhoAmIResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			version := "IPv6"
			if addr.Is4() {
				version = "IPv4"
			}

			return WhoAmIResponse{
				IP:        addr.String(),
				Version:   version,
				Public:    domain.IsPublic(addr),
				UserAgent: userAgentResponse(domain.ParseUserAgent(req.UserAgent)),
			}, nil
		},
	)
}
