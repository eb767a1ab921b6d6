package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

func ptr(s string) *string { return &s }

func TestMatchRegex(t *testing.T) {
	t.Parallel()

	t.Run("first match only", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`\d+`, "a1 b22 c333", domain.RegexOptions{})
		require.NoError(t, err)

		assert.Len(t, res.Matches, 1)
		assert.Equal(t, domain.Match{Index: 1, Length: 1, Text: "1", Groups: []domain.Group{}}, res.Matches[0])
	})

	t.Run("global with groups", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`(?P<letter>[a-z])(\d+)`, "a1 b22", domain.RegexOptions{Flags: "g"})
		require.NoError(t, err)

		require.Len(t, res.Matches, 2)
		assert.Equal(t, []domain.Group{
			{Name: "letter", Index: 3, Length: 1, Text: "b", Matched: true},
			{Name: "", Index: 4, Length: 2, Text: "22", Matched: true},
		}, res.Matches[1].Groups)
		assert.Equal(t, []domain.Segment{
			{Text: "a1", Match: true},
			{Text: " "},
			{Text: "b22", Match: true},
		}, res.Segments)
	})

	t.Run("offsets in characters", func(t *testing.T) {
		t.Parallel()

		for _, flavor := range []domain.Flavor{domain.FlavorRE2, domain.FlavorExtended} {
			res, err := domain.MatchRegex(`b`, "äöb", domain.RegexOptions{Flavor: flavor})
			require.NoError(t, err)

			assert.Equal(t, 2, res.Matches[0].Index, flavor)
		}
	})

	t.Run("adjacent matches", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`a`, "aab", domain.RegexOptions{Flags: "g"})
		require.NoError(t, err)

		assert.Equal(t, []domain.Segment{{Text: "a", Match: true}, {Text: "a", Match: true}, {Text: "b"}}, res.Segments)
	})

	t.Run("zero width matches", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`x*`, "ab", domain.RegexOptions{Flags: "g"})
		require.NoError(t, err)

		assert.Len(t, res.Matches, 3)
		assert.Equal(t, []domain.Segment{{Text: "ab"}}, res.Segments)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`^b.c$`, "A\nB\nC", domain.RegexOptions{Flags: "gims"})
		require.NoError(t, err)
		assert.Equal(t, "B\nC", res.Matches[0].Text)

		res, err = domain.MatchRegex(`^b$`, "a\nB\nc", domain.RegexOptions{Flags: "im"})
		require.NoError(t, err)
		assert.Equal(t, "B", res.Matches[0].Text)

		_, err = domain.MatchRegex(`a`, "a", domain.RegexOptions{Flags: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidFlags)
	})

	t.Run("replace", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`(\w+)@(\w+)`, "a@b c@d", domain.RegexOptions{Replace: ptr("$2@$1")})
		require.NoError(t, err)
		assert.Equal(t, "b@a c@d", *res.Replaced)

		res, err = domain.MatchRegex(`(\w+)@(\w+)`, "a@b c@d", domain.RegexOptions{Flags: "g", Replace: ptr("${2}@${1}")})
		require.NoError(t, err)
		assert.Equal(t, "b@a d@c", *res.Replaced)

		res, err = domain.MatchRegex(`(\w+)@(\w+)`, "a@b c@d", domain.RegexOptions{
			Flags:   "g",
			Flavor:  domain.FlavorExtended,
			Replace: ptr("$2@$1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "b@a d@c", *res.Replaced)
	})

	t.Run("extended features", func(t *testing.T) {
		t.Parallel()

		res, err := domain.MatchRegex(`(\w)\1(?=!)`, "aa bb!", domain.RegexOptions{Flavor: domain.FlavorExtended, Flags: "g"})
		require.NoError(t, err)

		require.Len(t, res.Matches, 1)
		assert.Equal(t, 3, res.Matches[0].Index)
		assert.Equal(t, []domain.Group{{Index: 3, Length: 1, Text: "b", Matched: true}}, res.Matches[0].Groups)

		_, err = domain.MatchRegex(`(\w)\1`, "aa", domain.RegexOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidPattern, "re2 has no backreferences")
	})

	t.Run("optional group", func(t *testing.T) {
		t.Parallel()

		for _, flavor := range []domain.Flavor{domain.FlavorRE2, domain.FlavorExtended} {
			res, err := domain.MatchRegex(`a(x)?`, "a", domain.RegexOptions{Flavor: flavor})
			require.NoError(t, err)

			assert.Equal(t, []domain.Group{{}}, res.Matches[0].Groups, flavor)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := domain.MatchRegex(`(`, "", domain.RegexOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidPattern)

		_, err = domain.MatchRegex(`(`, "", domain.RegexOptions{Flavor: domain.FlavorExtended})
		assert.ErrorIs(t, err, domain.ErrInvalidPattern)

		_, err = domain.MatchRegex(`a`, "", domain.RegexOptions{Flavor: "pcre"})
		assert.ErrorIs(t, err, domain.ErrUnknownFlavor)
	})

	t.Run("segments rebuild the input", func(t *testing.T) {
		t.Parallel()

		for range 20 {
			text := gofakeit.Sentence(10)

			res, err := domain.MatchRegex(`[aeiouäö]+`, text, domain.RegexOptions{Flags: "gi"})
			require.NoError(t, err)

			assert.Equal(t, text, domain.JoinSegments(res.Segments))
		}
	})

	t.Run("segments keep invalid utf-8", func(t *testing.T) {
		t.Parallel()

		text := "a\xffb\xfe\xfdab"

		for _, flavor := range []domain.Flavor{domain.FlavorRE2, domain.FlavorExtended} {
			res, err := domain.MatchRegex(`b`, text, domain.RegexOptions{Flags: "g", Flavor: flavor})
			require.NoError(t, err)

			require.Len(t, res.Matches, 2, flavor)
			assert.Equal(t, 2, res.Matches[0].Index, flavor)
			assert.Equal(t, 6, res.Matches[1].Index, flavor)
			assert.Equal(t, text, domain.JoinSegments(res.Segments), flavor)
			assert.Equal(t, []domain.Segment{
				{Text: "a\xff"},
				{Text: "b", Match: true},
				{Text: "\xfe\xfda"},
				{Text: "b", Match: true},
			}, res.Segments, flavor)
		}
	})
}
