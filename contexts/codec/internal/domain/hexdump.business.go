package domain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidHex         = errors.New("invalid hex")
	ErrInvalidBytesPerRow = errors.New("invalid bytes per row")
)

const (
	DefaultBytesPerRow = 16
	MaxBytesPerRow     = 64
)

// Row is one line of a hex dump.
type Row struct {
	Offset string
	Hex    string
	ASCII  string
}

func (r Row) String() string {
	return r.Offset + "  " + r.Hex + "  |" + r.ASCII + "|"
}

// Hexdump splits data into rows of bytesPerRow bytes.
// N bytes produce ceil(N/bytesPerRow) rows, no bytes produce no rows.
func Hexdump(data []byte, bytesPerRow int, uppercase bool) ([]Row, error) {
	if bytesPerRow < 1 || bytesPerRow > MaxBytesPerRow {
		return nil, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidBytesPerRow, MaxBytesPerRow)
	}

	byteFormat := "%02x"
	if uppercase {
		byteFormat = "%02X"
	}

	rows := make([]Row, 0, (len(data)+bytesPerRow-1)/bytesPerRow)

	for offset := 0; offset < len(data); offset += bytesPerRow {
		end := min(offset+bytesPerRow, len(data))
		chunk := data[offset:end]

		rows = append(rows, Row{
			Offset: fmt.Sprintf("%08x", offset),
			Hex:    hexColumn(chunk, bytesPerRow, byteFormat),
			ASCII:  asciiColumn(chunk),
		})
	}

	return rows, nil
}

// Dump renders rows as one text block.
func Dump(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.String())
	}

	return strings.Join(lines, "\n")
}

// hexColumn renders the bytes with an extra gap after half the row.
// Short rows are padded, so the ASCII columns of all rows align.
func hexColumn(chunk []byte, bytesPerRow int, byteFormat string) string {
	half := bytesPerRow / 2 //nolint:mnd

	var col strings.Builder

	for i := range bytesPerRow {
		if i > 0 {
			col.WriteByte(' ')

			if i == half {
				col.WriteByte(' ')
			}
		}

		if i < len(chunk) {
			fmt.Fprintf(&col, byteFormat, chunk[i])
		} else {
			col.WriteString("  ")
		}
	}

	return col.String()
}

func asciiColumn(chunk []byte) string {
	col := make([]byte, len(chunk))

	for i, b := range chunk {
		if b >= 0x20 && b <= 0x7e {
			col[i] = b
		} else {
			col[i] = '.'
		}
	}

	return string(col)
}

// ParseHex decodes hex digits. Whitespace and 0x prefixes are ignored.
func ParseHex(text string) ([]byte, error) {
	var digits strings.Builder

	for _, field := range strings.Fields(text) {
		field = strings.TrimPrefix(field, "0x")
		field = strings.TrimPrefix(field, "0X")
		digits.WriteString(field)
	}

	if digits.Len()%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of digits", ErrInvalidHex)
	}

	data, err := hex.DecodeString(digits.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err) //nolint:errorlint // prevent err in api
	}

	return data, nil
}
