package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

var ErrAmbiguousInput = errors.New("ambiguous input")

func NewHexdumpRequestHandler(defaultBytesPerRow int) app.Request[HexdumpRequest, HexdumpResponse] {
	if defaultBytesPerRow <= 0 {
		defaultBytesPerRow = domain.DefaultBytesPerRow
	}

	return &hexdumpRequestHandler{defaultBytesPerRow: defaultBytesPerRow}
}

type hexdumpRequestHandler struct {
	defaultBytesPerRow int
}

type (
	// HexdumpRequest takes the input as one of Text, Hex or Base64.
	HexdumpRequest struct {
		Text        string `json:"text"`
		Hex         string `json:"hex"`
		Base64      string `json:"base64"`
		BytesPerRow int    `json:"bytesPerRow" validate:"gte=0,lte=64"`
		Uppercase   bool   `json:"uppercase"`
	}
	HexdumpResponse struct {
		Rows  []HexdumpRow `json:"rows"`
		Dump  string       `json:"dump"`
		Bytes int          `json:"bytes"`
	}
	HexdumpRow struct {
		Offset string `json:"offset"`
		Hex    string `json:"hex"`
		ASCII  string `json:"ascii"`
	}
)

func (h *hexdumpRequestHandler) H(_ context.Context, req HexdumpRequest) (HexdumpResponse, error) {
	data, err := hexdumpInput(req)
	if err != nil {
		return HexdumpResponse{}, err
	}

	bytesPerRow := req.BytesPerRow
	if bytesPerRow == 0 {
		bytesPerRow = h.defaultBytesPerRow
	}

	rows, err := domain.Hexdump(data, bytesPerRow, req.Uppercase)
	if err != nil {
		return HexdumpResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	res := HexdumpResponse{
		Rows:  make([]HexdumpRow, 0, len(rows)),
		Dump:  domain.Dump(rows),
		Bytes: len(data),
	}

	for _, row := range rows {
		res.Rows = append(res.Rows, HexdumpRow{Offset: row.Offset, Hex: row.Hex, ASCII: row.ASCII})
	}

	return res, nil
}

func hexdumpInput(req HexdumpRequest) ([]byte, error) {
	given := 0
	for _, in := range []string{req.Text, req.Hex, req.Base64} {
		if in != "" {
			given++
		}
	}

	if given > 1 {
		return nil, fmt.Errorf("%w: set only one of text, hex or base64", ErrAmbiguousInput)
	}

	switch {
	case req.Hex != "":
		return domain.ParseHex(req.Hex) //nolint:wrapcheck // domain errors are the api
	case req.Base64 != "":
		return domain.DecodeBase64(req.Base64) //nolint:wrapcheck // domain errors are the api
	default:
		return []byte(req.Text), nil
	}
}
