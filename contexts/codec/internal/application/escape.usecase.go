package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

type (
	EscapeRequest struct {
		Text     string `json:"text"`
		Mode     string `json:"mode"     validate:"required,oneof=html url urlpath json unicode"`
		Unescape bool   `json:"unescape"`
	}
	EscapeResponse struct {
		Result string `json:"result"`
	}
)

func NewEscapeRequestHandler() app.Request[EscapeRequest, EscapeResponse] {
	return app.RequestFunc[EscapeRequest, EscapeResponse](
		func(_ context.Context, req EscapeRequest) (EscapeResponse, error) {
			res, err := domain.Escape(req.Text, domain.EscapeMode(req.Mode), req.Unescape)
			if err != nil {
				return EscapeResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return EscapeResponse{Result: res}, nil
		},
	)
}
