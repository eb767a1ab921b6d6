package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrUnknownFlavor  = errors.New("unknown flavor")
	ErrMatchTimeout   = errors.New("match timeout")
)

type Flavor string

const (
	// FlavorRE2 guarantees linear time matching, but has no lookarounds or backreferences.
	FlavorRE2 Flavor = "re2"
	// FlavorExtended is a backtracking engine with the syntax of .NET and Perl.
	FlavorExtended Flavor = "extended"
)

const (
	// MaxMatches limits the matches reported for a single test.
	MaxMatches = 10_000

	extendedTimeout = 2 * time.Second
)

type RegexOptions struct {
	// Flags is any combination of g (global), i (ignore case), m (multiline) and s (dot matches newline).
	Flags   string
	Flavor  Flavor
	Replace *string
}

// All offsets are counted in characters (runes), not bytes.
type (
	Group struct {
		Name    string
		Index   int
		Length  int
		Text    string
		Matched bool
	}

	Match struct {
		Index  int
		Length int
		Text   string
		Groups []Group
	}

	// Segment is a piece of the input. The segments of a result concatenate back to the input.
	Segment struct {
		Text  string
		Match bool
	}

	RegexResult struct {
		Matches  []Match
		Segments []Segment
		Replaced *string
	}
)

// MatchRegex matches pattern against text.
func MatchRegex(pattern string, text string, opts RegexOptions) (RegexResult, error) {
	flags, err := parseFlags(opts.Flags)
	if err != nil {
		return RegexResult{}, err
	}

	var res RegexResult

	switch opts.Flavor {
	case FlavorRE2, "":
		res, err = matchRE2(pattern, text, flags, opts.Replace)
	case FlavorExtended:
		res, err = matchExtended(pattern, text, flags, opts.Replace)
	default:
		return RegexResult{}, fmt.Errorf("%w: %s", ErrUnknownFlavor, opts.Flavor)
	}

	if err != nil {
		return RegexResult{}, err
	}

	res.Segments = segments(text, res.Matches)

	return res, nil
}

type regexFlags struct {
	global, ignoreCase, multiline, dotAll bool
}

func parseFlags(s string) (regexFlags, error) {
	var f regexFlags

	for _, r := range s {
		switch r {
		case 'g':
			f.global = true
		case 'i':
			f.ignoreCase = true
		case 'm':
			f.multiline = true
		case 's':
			f.dotAll = true
		default:
			return regexFlags{}, fmt.Errorf("%w: %q, use any of g, i, m, s", ErrInvalidFlags, r)
		}
	}

	return f, nil
}

func matchRE2(pattern string, text string, flags regexFlags, replace *string) (RegexResult, error) {
	prefix := ""
	if flags.ignoreCase {
		prefix += "i"
	}

	if flags.multiline {
		prefix += "m"
	}

	if flags.dotAll {
		prefix += "s"
	}

	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return RegexResult{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err) //nolint:errorlint // prevent err in api
	}

	n := 1
	if flags.global {
		n = MaxMatches
	}

	names := re.SubexpNames()
	runeAt := runeOffsets(text)
	locs := re.FindAllStringSubmatchIndex(text, n)

	res := RegexResult{Matches: make([]Match, 0, len(locs))}

	for _, loc := range locs {
		m := Match{
			Index:  runeAt[loc[0]],
			Length: runeAt[loc[1]] - runeAt[loc[0]],
			Text:   text[loc[0]:loc[1]],
			Groups: make([]Group, 0, len(names)-1),
		}

		for g := 1; g < len(names); g++ {
			start, end := loc[2*g], loc[2*g+1]
			if start < 0 {
				m.Groups = append(m.Groups, Group{Name: names[g]})

				continue
			}

			m.Groups = append(m.Groups, Group{
				Name:    names[g],
				Index:   runeAt[start],
				Length:  runeAt[end] - runeAt[start],
				Text:    text[start:end],
				Matched: true,
			})
		}

		res.Matches = append(res.Matches, m)
	}

	if replace != nil {
		replaced := replaceRE2(re, text, *replace, flags.global)
		res.Replaced = &replaced
	}

	return res, nil
}

func replaceRE2(re *regexp.Regexp, text string, replacement string, global bool) string {
	if global {
		return re.ReplaceAllString(text, replacement)
	}

	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}

	return text[:loc[0]] + string(re.ExpandString(nil, replacement, text, loc)) + text[loc[1]:]
}

// runeOffsets maps every byte offset of text, including len(text), to its rune offset.
func runeOffsets(text string) []int {
	offsets := make([]int, len(text)+1)
	runeIdx := 0

	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		for j := range size {
			offsets[i+j] = runeIdx
		}

		i += size
		runeIdx++
	}

	offsets[len(text)] = runeIdx

	return offsets
}

func matchExtended(pattern string, text string, flags regexFlags, replace *string) (RegexResult, error) {
	var opts regexp2.RegexOptions
	if flags.ignoreCase {
		opts |= regexp2.IgnoreCase
	}

	if flags.multiline {
		opts |= regexp2.Multiline
	}

	if flags.dotAll {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return RegexResult{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err) //nolint:errorlint // prevent err in api
	}

	re.MatchTimeout = extendedTimeout

	res := RegexResult{Matches: []Match{}}

	m, err := re.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = re.FindNextMatch(m) {
		res.Matches = append(res.Matches, extendedMatch(m))

		if !flags.global || len(res.Matches) == MaxMatches {
			break
		}
	}

	if err != nil {
		return RegexResult{}, fmt.Errorf("%w: %v", ErrMatchTimeout, err) //nolint:errorlint // prevent err in api
	}

	if replace != nil {
		count := 1
		if flags.global {
			count = -1
		}

		replaced, err := re.Replace(text, *replace, -1, count)
		if err != nil {
			return RegexResult{}, fmt.Errorf("%w: %v", ErrMatchTimeout, err) //nolint:errorlint // prevent err in api
		}

		res.Replaced = &replaced
	}

	return res, nil
}

func extendedMatch(m *regexp2.Match) Match {
	groups := m.Groups()

	match := Match{
		Index:  m.Index,
		Length: m.Length,
		Text:   m.String(),
		Groups: make([]Group, 0, len(groups)-1),
	}

	for _, g := range groups[1:] {
		group := Group{Name: g.Name, Matched: len(g.Captures) > 0}
		if group.Matched {
			group.Index, group.Length, group.Text = g.Index, g.Length, g.String()
		}

		// regexp2 names unnamed groups by their number.
		if _, err := strconv.Atoi(g.Name); err == nil {
			group.Name = ""
		}

		match.Groups = append(match.Groups, group)
	}

	return match
}

// segments splits text into the matched and unmatched pieces, in order.
// Zero length matches do not create a segment.
// The pieces are cut from text itself, so invalid UTF-8 survives unchanged.
func segments(text string, matches []Match) []Segment {
	byteAt := byteOffsets(text)
	runes := len(byteAt) - 1

	segs := []Segment{}
	cursor := 0

	for _, m := range matches {
		if m.Length == 0 || m.Index < cursor || m.Index+m.Length > runes {
			continue
		}

		if m.Index > cursor {
			segs = append(segs, Segment{Text: text[byteAt[cursor]:byteAt[m.Index]]})
		}

		segs = append(segs, Segment{Text: text[byteAt[m.Index]:byteAt[m.Index+m.Length]], Match: true})
		cursor = m.Index + m.Length
	}

	if cursor < runes {
		segs = append(segs, Segment{Text: text[byteAt[cursor]:]})
	}

	return segs
}

// byteOffsets maps every rune offset of text, including the end, to its byte offset.
// An invalid UTF-8 byte counts as one rune, the same as in a []rune conversion.
func byteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)

	for i := 0; i < len(text); {
		offsets = append(offsets, i)

		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}

	return append(offsets, len(text))
}

// JoinSegments returns the text the segments were created from.
func JoinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}

	return b.String()
}
