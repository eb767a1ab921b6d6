package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/net/html"
)

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrInvalidEscape = errors.New("invalid escape sequence")
)

type EscapeMode string

const (
	EscapeHTML    EscapeMode = "html"
	EscapeURL     EscapeMode = "url"
	EscapeURLPath EscapeMode = "urlpath"
	EscapeJSON    EscapeMode = "json"
	EscapeUnicode EscapeMode = "unicode"
)

func EscapeModes() []EscapeMode {
	return []EscapeMode{EscapeHTML, EscapeURL, EscapeURLPath, EscapeJSON, EscapeUnicode}
}

// Escape escapes text for the given mode, or reverts it if unescape is set.
func Escape(text string, mode EscapeMode, unescape bool) (string, error) {
	var (
		res string
		err error
	)

	switch mode {
	case EscapeHTML:
		if unescape {
			return html.UnescapeString(text), nil
		}

		return html.EscapeString(text), nil
	case EscapeURL:
		if !unescape {
			return url.QueryEscape(text), nil
		}

		res, err = url.QueryUnescape(text)
	case EscapeURLPath:
		if !unescape {
			return url.PathEscape(text), nil
		}

		res, err = url.PathUnescape(text)
	case EscapeJSON:
		if !unescape {
			return escapeJSON(text), nil
		}

		err = json.Unmarshal([]byte(`"`+text+`"`), &res)
	case EscapeUnicode:
		if !unescape {
			return escapeUnicode(text), nil
		}

		res, err = unescapeUnicode(text)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEscape, err) //nolint:errorlint // prevent err in api
	}

	return res, nil
}

func escapeJSON(text string) string {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(text) // a string always encodes

	return strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(buf.String()), `"`), `"`)
}

// escapeUnicode replaces every non ASCII rune with \uXXXX, using surrogate pairs above the BMP.
func escapeUnicode(text string) string {
	var sb strings.Builder

	for _, r := range text {
		switch {
		case r < 0x80:
			sb.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&sb, `\u%04x`, r)
		}
	}

	return sb.String()
}

func unescapeUnicode(text string) (string, error) {
	var sb strings.Builder

	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], `\u`) {
			sb.WriteByte(text[i])
			i++

			continue
		}

		r, n, err := readUnicodeEscape(text[i:])
		if err != nil {
			return "", err
		}

		if utf16.IsSurrogate(r) {
			r2, n2, err := readUnicodeEscape(text[i+n:])
			if err != nil {
				return "", fmt.Errorf("unpaired surrogate at %d", i)
			}

			r = utf16.DecodeRune(r, r2)
			n += n2
		}

		sb.WriteRune(r)
		i += n
	}

	return sb.String(), nil
}

func readUnicodeEscape(text string) (rune, int, error) {
	const length = 6 // \uXXXX

	if len(text) < length || !strings.HasPrefix(text, `\u`) {
		return 0, 0, fmt.Errorf("expected \\uXXXX")
	}

	v, err := strconv.ParseUint(text[2:length], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hex digits %q", text[2:length])
	}

	return rune(v), length, nil
}
