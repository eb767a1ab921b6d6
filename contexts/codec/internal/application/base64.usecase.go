package application

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

var ErrDecodeFailed = errors.New("decode failed")

type (
	EncodeBase64Request struct {
		Text      string `json:"text"`
		URLSafe   bool   `json:"urlSafe"`
		NoPadding bool   `json:"noPadding"`
	}
	EncodeBase64Response struct {
		Result string `json:"result"`
	}
)

func NewEncodeBase64RequestHandler() app.Request[EncodeBase64Request, EncodeBase64Response] {
	return app.RequestFunc[EncodeBase64Request, EncodeBase64Response](
		func(_ context.Context, req EncodeBase64Request) (EncodeBase64Response, error) {
			return EncodeBase64Response{Result: domain.EncodeBase64(req.Text, req.URLSafe, req.NoPadding)}, nil
		},
	)
}

type (
	DecodeBase64Request struct {
		Text string `json:"text"`
	}
	DecodeBase64Response struct {
		Result string `json:"result"`
		IsUTF8 bool   `json:"isUTF8"`
		Hex    string `json:"hex"`
	}
)

func NewDecodeBase64RequestHandler() app.Request[DecodeBase64Request, DecodeBase64Response] {
	return app.RequestFunc[DecodeBase64Request, DecodeBase64Response](
		func(_ context.Context, req DecodeBase64Request) (DecodeBase64Response, error) {
			data, err := domain.DecodeBase64(req.Text)
			if err != nil {
				return DecodeBase64Response{}, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
			}

			return DecodeBase64Response{
				Result: string(data),
				IsUTF8: domain.IsText(data),
				Hex:    hex.EncodeToString(data),
			}, nil
		},
	)
}

type (
	EncodeDataURIRequest struct {
		Data []byte `json:"data" validate:"required"`
	}
	EncodeDataURIResponse struct {
		DataURI string `json:"dataURI"`
		MIME    string `json:"mime"`
		Size    int    `json:"size"`
	}
)

func NewEncodeDataURIRequestHandler() app.Request[EncodeDataURIRequest, EncodeDataURIResponse] {
	return app.RequestFunc[EncodeDataURIRequest, EncodeDataURIResponse](
		func(_ context.Context, req EncodeDataURIRequest) (EncodeDataURIResponse, error) {
			uri := domain.EncodeDataURI(req.Data)

			return EncodeDataURIResponse{DataURI: uri.URI, MIME: uri.MIME, Size: uri.Size}, nil
		},
	)
}
