package infrastructure

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

//go:embed sheets/*.yaml
var embeddedSheets embed.FS

// NewEmbeddedSheetRepository returns the cheat sheets shipped with devbelt.
func NewEmbeddedSheetRepository() (*SheetRepository, error) {
	sub, err := fs.Sub(embeddedSheets, "sheets")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded sheets: %w", err)
	}

	return NewSheetRepository(sub)
}

// NewSheetRepository loads every *.yaml file in fsys as a domain.Sheet.
// All sheets are read once, so that broken files are reported at startup.
func NewSheetRepository(fsys fs.FS) (*SheetRepository, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("could not list sheets: %w", err)
	}

	sheets := make([]domain.Sheet, 0, len(files))

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %s: %w", file, err)
		}

		var sheet domain.Sheet
		if err := yaml.Unmarshal(data, &sheet); err != nil {
			return nil, fmt.Errorf("could not parse sheet %s: %w", file, err)
		}

		if sheet.Language == "" {
			sheet.Language = strings.TrimSuffix(path.Base(file), path.Ext(file))
		}

		if sheet.Title == "" {
			sheet.Title = sheet.Language
		}

		sheets = append(sheets, sheet)
	}

	slices.SortFunc(sheets, func(a, b domain.Sheet) int {
		return strings.Compare(a.Language, b.Language)
	})

	return &SheetRepository{sheets: sheets}, nil
}

// SheetRepository is read only, so it is safe for concurrent use.
type SheetRepository struct {
	sheets []domain.Sheet
}

var _ domain.SheetRepository = (*SheetRepository)(nil)

func (r *SheetRepository) All(_ context.Context) ([]domain.Sheet, error) {
	return slices.Clone(r.sheets), nil
}

func (r *SheetRepository) FindByLanguage(_ context.Context, language string) (domain.Sheet, error) {
	language = strings.TrimSpace(language)

	for _, sheet := range r.sheets {
		if sheet.Matches(language) {
			return sheet, nil
		}
	}

	return domain.Sheet{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, language)
}
