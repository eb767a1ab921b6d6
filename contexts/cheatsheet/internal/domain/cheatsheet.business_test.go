package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

var sheet = domain.Sheet{
	Language: "go",
	Title:    "Go",
	Syntax:   "go",
	Aliases:  []string{"golang"},
	Sections: []domain.Section{
		{
			Title: "Basics",
			Items: []domain.Item{
				{Description: "Declare a variable", Code: "var count int\n"},
				{Description: "Short declaration", Code: "name := \"devbelt\"\n"},
			},
		},
		{
			Title: "Errors",
			Items: []domain.Item{
				{Description: "Wrap an error", Code: `fmt.Errorf("open: %w", err)`},
			},
		},
	},
}

func TestSheet_Matches(t *testing.T) {
	t.Parallel()

	assert.True(t, sheet.Matches("go"))
	assert.True(t, sheet.Matches("GoLang"))
	assert.False(t, sheet.Matches("gopher"))
}

func TestSheet_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, sheet.Len())
	assert.Equal(t, 0, domain.Sheet{}.Len())
}

func TestSheet_Filter(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		query    string
		sections []string
		items    int
	}{
		"empty":           {" ", []string{"Basics", "Errors"}, 3},
		"description":     {"VARIABLE", []string{"Basics"}, 1},
		"code":            {"%w", []string{"Errors"}, 1},
		"section title":   {"basics", []string{"Basics"}, 2},
		"across sections": {"declar", []string{"Basics"}, 2},
		"no match":        {"goroutine", []string{}, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			filtered := sheet.Filter(tt.query)

			titles := []string{}
			for _, sec := range filtered.Sections {
				titles = append(titles, sec.Title)
			}

			assert.Equal(t, tt.sections, titles)
			assert.Equal(t, tt.items, filtered.Len())
		})
	}

	t.Run("does not change the sheet", func(t *testing.T) {
		t.Parallel()

		_ = sheet.Filter("wrap")
		assert.Equal(t, 3, sheet.Len())
	})
}

func TestSheet_Markdown(t *testing.T) {
	t.Parallel()

	expected := "# Go\n" +
		"\n## Errors\n" +
		"\nWrap an error\n\n```go\nfmt.Errorf(\"open: %w\", err)\n```\n"

	assert.Equal(t, expected, sheet.Filter("wrap").Markdown())
}
