package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

type (
	ConvertBaseRequest struct {
		Value string `json:"value" validate:"required"`
		From  int    `json:"from"  validate:"gte=0,lte=36"`
		To    int    `json:"to"    validate:"gte=0,lte=36"`
	}
	ConvertBaseResponse struct {
		Result      string `json:"result"`
		Binary      string `json:"binary"`
		Octal       string `json:"octal"`
		Decimal     string `json:"decimal"`
		Hexadecimal string `json:"hexadecimal"`
	}
)

// NewConvertBaseRequestHandler converts between number bases.
// A missing target base defaults to 10.
func NewConvertBaseRequestHandler() app.Request[ConvertBaseRequest, ConvertBaseResponse] {
	return app.RequestFunc[ConvertBaseRequest, ConvertBaseResponse](
		func(_ context.Context, req ConvertBaseRequest) (ConvertBaseResponse, error) {
			to := req.To
			if to == 0 {
				to = 10
			}

			conv, err := domain.ConvertBase(req.Value, req.From, to)
			if err != nil {
				return ConvertBaseResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return ConvertBaseResponse{
				Result:      conv.Result,
				Binary:      conv.Binary,
				Octal:       conv.Octal,
				Decimal:     conv.Decimal,
				Hexadecimal: conv.Hexadecimal,
			}, nil
		},
	)
}
