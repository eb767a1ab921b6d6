// Package domain contains the cheat sheets of programming languages and tools.
package domain

import (
	"context"
	"errors"
	"strings"
)

var ErrUnknownLanguage = errors.New("unknown language")

type Item struct {
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
}

type Section struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type Sheet struct {
	Language string `yaml:"language"`
	Title    string `yaml:"title"`
	// Syntax is the name used to highlight code blocks, e.g. in markdown fences.
	Syntax   string    `yaml:"syntax"`
	Aliases  []string  `yaml:"aliases"`
	Sections []Section `yaml:"sections"`
}

// SheetRepository gives access to all known cheat sheets.
type SheetRepository interface {
	// All returns the sheets ordered by language.
	All(ctx context.Context) ([]Sheet, error)
	// FindByLanguage matches the language or one of its aliases, case-insensitive.
	// It returns ErrUnknownLanguage, if no sheet matches.
	FindByLanguage(ctx context.Context, language string) (Sheet, error)
}

// Matches reports if name is the language of the sheet or one of its aliases.
func (s Sheet) Matches(name string) bool {
	if strings.EqualFold(s.Language, name) {
		return true
	}

	for _, alias := range s.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}

	return false
}

// Len returns the number of items in all sections.
func (s Sheet) Len() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Items)
	}

	return n
}

// Filter returns a copy of the sheet with only the items containing query,
// in their description or code, case-insensitive. Sections without items are removed.
// A section with a matching title keeps all its items.
func (s Sheet) Filter(query string) Sheet {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s
	}

	filtered := s
	filtered.Sections = []Section{}

	for _, sec := range s.Sections {
		if strings.Contains(strings.ToLower(sec.Title), query) {
			filtered.Sections = append(filtered.Sections, sec)

			continue
		}

		var items []Item

		for _, item := range sec.Items {
			if strings.Contains(strings.ToLower(item.Description), query) || strings.Contains(strings.ToLower(item.Code), query) {
				items = append(items, item)
			}
		}

		if len(items) > 0 {
			filtered.Sections = append(filtered.Sections, Section{Title: sec.Title, Items: items})
		}
	}

	return filtered
}

// Markdown renders the sheet as a markdown document, with one fenced code block per item.
func (s Sheet) Markdown() string {
	var b strings.Builder

	b.WriteString("# " + s.Title + "\n")

	for _, sec := range s.Sections {
		b.WriteString("\n## " + sec.Title + "\n")

		for _, item := range sec.Items {
			b.WriteString("\n" + item.Description + "\n\n")
			b.WriteString("```" + s.Syntax + "\n")
			b.WriteString(strings.TrimRight(item.Code, "\n") + "\n")
			b.WriteString("```\n")
		}
	}

	return b.String()
}
