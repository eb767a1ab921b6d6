package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

type (
	MinifyRequest struct {
		Type   string `json:"type"   validate:"required,oneof=css js svg html json xml"`
		Source string `json:"source"`
	}
	MinifyResponse struct {
		Result       string  `json:"result"`
		OriginalSize int     `json:"originalSize"`
		MinifiedSize int     `json:"minifiedSize"`
		SavedPercent float64 `json:"savedPercent"`
	}
)

func NewMinifyRequestHandler(minifier *domain.Minifier) app.Request[MinifyRequest, MinifyResponse] {
	return &minifyRequestHandler{minifier: minifier}
}

type minifyRequestHandler struct {
	minifier *domain.Minifier
}

func (h *minifyRequestHandler) H(_ context.Context, req MinifyRequest) (MinifyResponse, error) {
	m, err := h.minifier.Minify(domain.SourceType(req.Type), req.Source)
	if err != nil {
		return MinifyResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	return MinifyResponse(m), nil
}
