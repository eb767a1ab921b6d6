package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidBase   = errors.New("invalid base")
)

const (
	MinBase = 2
	MaxBase = 36
)

// Conversion is a number shown in the target base and the common bases.
type Conversion struct {
	Result      string
	Binary      string
	Octal       string
	Decimal     string
	Hexadecimal string
}

// ConvertBase converts value from one base into another.
// Numbers have arbitrary precision and an optional sign. Underscores are ignored.
// A 0b, 0o or 0x prefix is accepted, if it matches the base from;
// with from = 0 the base is detected from the prefix, defaulting to 10.
func ConvertBase(value string, from int, to int) (Conversion, error) {
	if from != 0 && (from < MinBase || from > MaxBase) {
		return Conversion{}, fmt.Errorf("%w: from must be between %d and %d", ErrInvalidBase, MinBase, MaxBase)
	}

	if to < MinBase || to > MaxBase {
		return Conversion{}, fmt.Errorf("%w: to must be between %d and %d", ErrInvalidBase, MinBase, MaxBase)
	}

	num, err := ParseNumber(value, from)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		Result:      num.Text(to),
		Binary:      num.Text(2),  //nolint:mnd
		Octal:       num.Text(8),  //nolint:mnd
		Decimal:     num.Text(10), //nolint:mnd
		Hexadecimal: num.Text(16), //nolint:mnd
	}, nil
}

// ParseNumber parses value in the given base, see ConvertBase.
func ParseNumber(value string, base int) (*big.Int, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(value), "_", "")

	negative := false
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	prefixBase, rest := splitPrefix(digits)
	if prefixBase != 0 && (base == 0 || base == prefixBase) {
		base = prefixBase
		digits = rest
	}

	if base == 0 {
		base = 10
	}

	if digits == "" {
		return nil, fmt.Errorf("%w: no digits", ErrInvalidNumber)
	}

	// big.Int accepts a sign of its own, only one sign in front of the prefix is allowed.
	if digits[0] == '-' || digits[0] == '+' {
		return nil, fmt.Errorf("%w: %q has a misplaced sign", ErrInvalidNumber, value)
	}

	num, ok := new(big.Int).SetString(strings.ToLower(digits), base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base %d number", ErrInvalidNumber, value, base)
	}

	if negative {
		num.Neg(num)
	}

	return num, nil
}

func splitPrefix(digits string) (int, string) {
	if len(digits) < 2 || digits[0] != '0' { //nolint:mnd
		return 0, digits
	}

	switch digits[1] {
	case 'b', 'B':
		return 2, digits[2:] //nolint:mnd
	case 'o', 'O':
		return 8, digits[2:] //nolint:mnd
	case 'x', 'X':
		return 16, digits[2:] //nolint:mnd
	}

	return 0, digits
}
