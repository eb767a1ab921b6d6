// Package domain contains the text tools: slugs, counters, the regex tester and the JSON helpers.
package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultSeparator = "-"

var ErrInvalidSuffix = errors.New("invalid suffix length")

type SlugOptions struct {
	Separator string
	// MaxLength limits the slug to a number of characters, without the suffix. Zero means no limit.
	MaxLength  int
	KeepCase   bool
	SplitCamel bool
}

// ligatures are letters that do not decompose into a base letter and a mark.
var ligatures = strings.NewReplacer( //nolint:gochecknoglobals
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "đ", "d", "Đ", "D", "ł", "l", "Ł", "L", "þ", "th", "Þ", "TH",
)

// Fold removes diacritics, so that "Crème Brûlée" becomes "Creme Brulee".
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, ligatures.Replace(text))
	if err != nil {
		return text
	}

	return folded
}

// Slugify turns text into a URL friendly slug.
// Every run of characters that are not letters or digits becomes a single separator.
func Slugify(text string, opts SlugOptions) string {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	text = Fold(text)

	if opts.SplitCamel {
		words := strings.Fields(text)
		for i, w := range words {
			words[i] = strings.Join(camelcase.Split(w), " ")
		}

		text = strings.Join(words, " ")
	}

	if !opts.KeepCase {
		text = strings.ToLower(text)
	}

	var (
		b       strings.Builder
		pending bool
	)

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = true

			continue
		}

		if pending && b.Len() > 0 {
			b.WriteString(sep)
		}

		pending = false

		b.WriteRune(r)
	}

	return truncate(b.String(), sep, opts.MaxLength)
}

// truncate cuts slug to at most maxLength characters at a separator.
// If the first word is already too long, it is cut inside the word.
func truncate(slug string, sep string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(slug) <= maxLength {
		return slug
	}

	words := strings.Split(slug, sep)
	if first := []rune(words[0]); len(first) >= maxLength {
		return string(first[:maxLength])
	}

	cut := words[0]
	for _, w := range words[1:] {
		next := cut + sep + w
		if utf8.RuneCountInString(next) > maxLength {
			break
		}

		cut = next
	}

	return cut
}

const base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const MaxSuffixLength = 32

// RandomSuffix returns n random base62 characters.
func RandomSuffix(n int) (string, error) {
	if n < 0 || n > MaxSuffixLength {
		return "", fmt.Errorf("%w: use 0 to %d", ErrInvalidSuffix, MaxSuffixLength)
	}

	limit := big.NewInt(int64(len(base62)))
	b := make([]byte, n)

	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("could not read random: %w", err)
		}

		b[i] = base62[idx.Int64()]
	}

	return string(b), nil
}
