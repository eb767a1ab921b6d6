package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/aassert"
	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/application"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

func TestListSheetsQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewListSheetsQueryHandler(fakeRepository{}).H(ctx, application.ListSheetsRequest{})
		assert.NoError(t, err)
		assert.Equal(t, []application.SheetSummary{
			{Language: "git", Title: "Git", Items: 2},
			{Language: "go", Title: "Go", Aliases: []string{"golang"}, Items: 1},
		}, res.Sheets)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewListSheetsQueryHandler(fakeRepository{}).H(ctx, application.ListSheetsRequest{Query: "stage"})
		assert.NoError(t, err)
		assert.Equal(t, []application.SheetSummary{{Language: "git", Title: "Git", Items: 1}}, res.Sheets)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		res, err := application.NewListSheetsQueryHandler(fakeRepository{}).H(ctx, application.ListSheetsRequest{Query: "nothing"})
		assert.NoError(t, err)
		assert.NotNil(t, res.Sheets)
		assert.Empty(t, res.Sheets)
	})

	t.Run("repository fails", func(t *testing.T) {
		t.Parallel()

		_, err := application.NewListSheetsQueryHandler(fakeRepository{err: errRepoFailed}).H(ctx, application.ListSheetsRequest{})
		assert.ErrorIs(t, err, errRepoFailed)
	})
}

func TestGetSheetQueryHandler_H(t *testing.T) {
	t.Parallel()

	handler := app.NewValidatedQuery(nil, application.NewGetSheetQueryHandler(fakeRepository{}))

	t.Run("alias", func(t *testing.T) {
		t.Parallel()

		res, err := handler.H(ctx, application.GetSheetRequest{Language: "golang"})
		assert.NoError(t, err)
		assert.Equal(t, application.GetSheetResponse{
			Language: "go",
			Title:    "Go",
			Sections: []application.Section{{
				Title: "Basics",
				Items: []application.Item{{Description: "Declare a variable", Code: "var count int"}},
			}},
			Markdown: "# Go\n\n## Basics\n\nDeclare a variable\n\n```go\nvar count int\n```\n",
		}, res)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()

		res, err := handler.H(ctx, application.GetSheetRequest{Language: "git", Query: "STATUS"})
		assert.NoError(t, err)
		assert.Len(t, res.Sections, 1)
		assert.Len(t, res.Sections[0].Items, 1)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		_, err := handler.H(ctx, application.GetSheetRequest{Language: "cobol"})
		assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	})

	t.Run("missing language", func(t *testing.T) {
		t.Parallel()

		_, err := handler.H(ctx, application.GetSheetRequest{})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}

func TestGetSheetResponse_mapping(t *testing.T) {
	t.Parallel()

	// the response mirrors the domain sections one to one
	aassert.NumFields(t, 4, domain.Section{})
	aassert.NumFields(t, 4, application.Section{})
	aassert.NumFields(t, 9, domain.Sheet{})
}
