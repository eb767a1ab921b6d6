package application

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

type (
	EncodeBase58Request struct {
		Text string `json:"text"`
	}
	EncodeBase58Response struct {
		Result string `json:"result"`
	}
)

func NewEncodeBase58RequestHandler() app.Request[EncodeBase58Request, EncodeBase58Response] {
	return app.RequestFunc[EncodeBase58Request, EncodeBase58Response](
		func(_ context.Context, req EncodeBase58Request) (EncodeBase58Response, error) {
			return EncodeBase58Response{Result: domain.EncodeBase58(req.Text)}, nil
		},
	)
}

type (
	DecodeBase58Request struct {
		Text string `json:"text"`
	}
	DecodeBase58Response struct {
		Result string `json:"result"`
		IsUTF8 bool   `json:"isUTF8"`
		Hex    string `json:"hex"`
	}
)

func NewDecodeBase58RequestHandler() app.Request[DecodeBase58Request, DecodeBase58Response] {
	return app.RequestFunc[DecodeBase58Request, DecodeBase58Response](
		func(_ context.Context, req DecodeBase58Request) (DecodeBase58Response, error) {
			data, err := domain.DecodeBase58(req.Text)
			if err != nil {
				return DecodeBase58Response{}, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
			}

			return DecodeBase58Response{
				Result: string(data),
				IsUTF8: domain.IsText(data),
				Hex:    hex.EncodeToString(data),
			}, nil
		},
	)
}
