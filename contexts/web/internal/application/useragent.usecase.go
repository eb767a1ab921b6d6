package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

type (
	ParseUserAgentRequest struct {
		// UserAgent defaults to the User-Agent header of the request.
		UserAgent string `json:"userAgent" header:"User-Agent" validate:"required"`
	}
	ParseUserAgentResponse struct {
		UserAgent      string `json:"userAgent"`
		Browser        string `json:"browser"`
		BrowserVersion string `json:"browserVersion"`
		OS             string `json:"os"`
		OSVersion      string `json:"osVersion"`
		Device         string `json:"device"`
		Type           string `json:"type"`
		URL            string `json:"url,omitempty"`
		Summary        string `json:"summary"`
	}
)

func NewParseUserAgentRequestHandler() app.Request[ParseUserAgentRequest, ParseUserAgentResponse] {
	return app.RequestFunc[ParseUserAgentRequest, ParseUserAgentResponse](
		func(_ context.Context, req ParseUserAgentRequest) (ParseUserAgentResponse, error) {
			return userAgentResponse(domain.ParseUserAgent(req.UserAgent)), nil
		},
	)
}

func userAgentResponse(ua domain.UserAgent) ParseUserAgentResponse {
	return ParseUserAgentResponse{
		UserAgent:      ua.Raw,
		Browser:        ua.Browser,
		BrowserVersion: ua.BrowserVersion,
		OS:             ua.OS,
		OSVersion:      ua.OSVersion,
		Device:         ua.Device,
		Type:           string(ua.Type),
		URL:            ua.URL,
		Summary:        ua.String(),
	}
}
