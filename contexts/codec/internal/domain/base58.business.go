package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

var ErrInvalidBase58 = errors.New("invalid base58")

// EncodeBase58 encodes text with the bitcoin alphabet.
func EncodeBase58(text string) string {
	return base58.Encode([]byte(text))
}

func DecodeBase58(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []byte{}, nil
	}

	data, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase58, err) //nolint:errorlint // prevent err in api
	}

	return data, nil
}
