package application_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

var (
	ctx = context.Background()

	errRepoFailed = errors.New("repo failed")
)

var sheets = []domain.Sheet{ //nolint:gochecknoglobals
	{
		Language: "git",
		Title:    "Git",
		Syntax:   "bash",
		Sections: []domain.Section{{
			Title: "Everyday",
			Items: []domain.Item{
				{Description: "Status", Code: "git status -sb"},
				{Description: "Stage parts of a file", Code: "git add -p"},
			},
		}},
	},
	{
		Language: "go",
		Title:    "Go",
		Syntax:   "go",
		Aliases:  []string{"golang"},
		Sections: []domain.Section{{
			Title: "Basics",
			Items: []domain.Item{{Description: "Declare a variable", Code: "var count int"}},
		}},
	},
}

type fakeRepository struct {
	err error
}

func (r fakeRepository) All(_ context.Context) ([]domain.Sheet, error) {
	return sheets, r.err
}

func (r fakeRepository) FindByLanguage(_ context.Context, language string) (domain.Sheet, error) {
	for _, s := range sheets {
		if s.Matches(language) {
			return s, nil
		}
	}

	return domain.Sheet{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, language)
}
