package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/codec/internal/application"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

func TestBase64RequestHandlers(t *testing.T) {
	t.Parallel()

	t.Run("encode", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewEncodeBase64RequestHandler().H(ctx, application.EncodeBase64Request{
			Text:    "hello?",
			URLSafe: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "aGVsbG8_", res.Result)
	})

	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewDecodeBase64RequestHandler().H(ctx, application.DecodeBase64Request{Text: "aGVsbG8_"})
		assert.NoError(t, err)
		assert.Equal(t, application.DecodeBase64Response{
			Result: "hello?",
			IsUTF8: true,
			Hex:    "68656c6c6f3f",
		}, res)
	})

	t.Run("decode binary", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewDecodeBase64RequestHandler().H(ctx, application.DecodeBase64Request{Text: "//4="})
		assert.NoError(t, err)
		assert.False(t, res.IsUTF8)
		assert.Equal(t, "fffe", res.Hex)
	})

	t.Run("decode invalid", func(t *testing.T) {
		t.Parallel()

		_, err := application.NewDecodeBase64RequestHandler().H(ctx, application.DecodeBase64Request{Text: "!!"})
		assert.ErrorIs(t, err, application.ErrDecodeFailed)
		assert.ErrorIs(t, err, domain.ErrInvalidBase64)
	})

	t.Run("data uri", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewEncodeDataURIRequestHandler().H(ctx, application.EncodeDataURIRequest{
			Data: []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "image/svg+xml", res.MIME)
		assert.Contains(t, res.DataURI, "data:image/svg+xml;base64,")
	})
}

func TestBase58RequestHandlers(t *testing.T) {
	t.Parallel()

	enc, err := application.NewEncodeBase58RequestHandler().H(ctx, application.EncodeBase58Request{Text: "devbelt"})
	assert.NoError(t, err)

	dec, err := application.NewDecodeBase58RequestHandler().H(ctx, application.DecodeBase58Request{Text: enc.Result})
	assert.NoError(t, err)
	assert.Equal(t, "devbelt", dec.Result)

	_, err = application.NewDecodeBase58RequestHandler().H(ctx, application.DecodeBase58Request{Text: "0"})
	assert.ErrorIs(t, err, application.ErrDecodeFailed)
}

func TestConvertBaseRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("default target base", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewConvertBaseRequestHandler().H(ctx, application.ConvertBaseRequest{Value: "0xff"})
		assert.NoError(t, err)
		assert.Equal(t, "255", res.Result)
		assert.Equal(t, "11111111", res.Binary)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		_, err := application.NewConvertBaseRequestHandler().H(ctx, application.ConvertBaseRequest{
			Value: "9",
			From:  8,
			To:    2,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	})
}

func TestHexdumpRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("default bytes per row", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewHexdumpRequestHandler(8).H(ctx, application.HexdumpRequest{Text: "0123456789"})
		assert.NoError(t, err)
		assert.Len(t, res.Rows, 2)
		assert.Equal(t, 10, res.Bytes)
		assert.Equal(t, "00000008", res.Rows[1].Offset)
	})

	t.Run("fallback default", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewHexdumpRequestHandler(0).H(ctx, application.HexdumpRequest{Text: "0123456789abcdefX"})
		assert.NoError(t, err)
		assert.Len(t, res.Rows, 2)
	})

	t.Run("hex input", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewHexdumpRequestHandler(16).H(ctx, application.HexdumpRequest{
			Hex:         "de ad be ef",
			BytesPerRow: 2,
			Uppercase:   true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "00000000  DE  AD  |..|\n00000002  BE  EF  |..|", res.Dump)
	})

	t.Run("base64 input", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewHexdumpRequestHandler(16).H(ctx, application.HexdumpRequest{Base64: "aGk="})
		assert.NoError(t, err)
		assert.Equal(t, "hi", res.Rows[0].ASCII)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewHexdumpRequestHandler(16).H(ctx, application.HexdumpRequest{})
		assert.NoError(t, err)
		assert.Empty(t, res.Rows)
		assert.Equal(t, "", res.Dump)
	})

	t.Run("invalid hex", func(t *testing.T) {
		t.Parallel()

		_, err := application.NewHexdumpRequestHandler(16).H(ctx, application.HexdumpRequest{Hex: "abc"})
		assert.ErrorIs(t, err, domain.ErrInvalidHex)
	})

	t.Run("multiple inputs", func(t *testing.T) {
		t.Parallel()

		_, err := application.NewHexdumpRequestHandler(16).H(ctx, application.HexdumpRequest{Text: "a", Hex: "61"})
		assert.ErrorIs(t, err, application.ErrAmbiguousInput)
	})
}

func TestEscapeRequestHandler_H(t *testing.T) {
	t.Parallel()

	res, err := application.NewEscapeRequestHandler().H(ctx, application.EscapeRequest{Text: "a&b", Mode: "html"})
	assert.NoError(t, err)
	assert.Equal(t, "a&amp;b", res.Result)

	res, err = application.NewEscapeRequestHandler().H(ctx, application.EscapeRequest{
		Text:     "a%26b",
		Mode:     "url",
		Unescape: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "a&b", res.Result)
}
