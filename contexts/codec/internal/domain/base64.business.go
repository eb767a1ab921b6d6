// Package domain contains the encoders and decoders of the codec tools.
// All functions are pure and safe for concurrent use.
package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

var ErrInvalidBase64 = errors.New("invalid base64")

// EncodeBase64 encodes the UTF-8 bytes of text.
func EncodeBase64(text string, urlSafe bool, noPadding bool) string {
	var enc *base64.Encoding

	switch {
	case urlSafe && noPadding:
		enc = base64.RawURLEncoding
	case urlSafe:
		enc = base64.URLEncoding
	case noPadding:
		enc = base64.RawStdEncoding
	default:
		enc = base64.StdEncoding
	}

	return enc.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard and URL-safe input, with or without padding.
// Whitespace anywhere in the input is ignored.
func DecodeBase64(text string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text)

	unpadded := strings.TrimRight(cleaned, "=")
	if len(cleaned)-len(unpadded) > 2 { //nolint:mnd // base64 has at most two padding characters
		return nil, fmt.Errorf("%w: too much padding", ErrInvalidBase64)
	}

	enc := base64.RawStdEncoding
	if strings.ContainsAny(unpadded, "-_") {
		enc = base64.RawURLEncoding
	}

	data, err := enc.DecodeString(unpadded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err) //nolint:errorlint // prevent err in api
	}

	return data, nil
}

// IsText reports if data can be shown as text.
func IsText(data []byte) bool {
	return utf8.Valid(data)
}

// DataURI is the content of a file, embeddable into HTML or CSS.
type DataURI struct {
	URI  string
	MIME string
	Size int
}

// EncodeDataURI sniffs the MIME type of data and returns it as a base64 data URI.
func EncodeDataURI(data []byte) DataURI {
	mime := mimetype.Detect(data).String()

	return DataURI{
		URI:  "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME: mime,
		Size: len(data),
	}
}
