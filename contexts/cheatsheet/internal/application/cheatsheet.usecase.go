package application

import (
	"context"
	"fmt"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

type (
	ListSheetsRequest struct {
		// Query only lists the sheets with matching items.
		Query string `json:"q" query:"q"`
	}
	ListSheetsResponse struct {
		Sheets []SheetSummary `json:"sheets"`
	}
	SheetSummary struct {
		Language string   `json:"language"`
		Title    string   `json:"title"`
		Aliases  []string `json:"aliases,omitempty"`
		Items    int      `json:"items"`
	}
)

func NewListSheetsQueryHandler(repo domain.SheetRepository) app.Query[ListSheetsRequest, ListSheetsResponse] {
	return &listSheetsQueryHandler{repo: repo}
}

type listSheetsQueryHandler struct {
	repo domain.SheetRepository
}

func (h *listSheetsQueryHandler) H(ctx context.Context, req ListSheetsRequest) (ListSheetsResponse, error) {
	sheets, err := h.repo.All(ctx)
	if err != nil {
		return ListSheetsResponse{}, fmt.Errorf("could not load cheat sheets: %w", err)
	}

	summaries := make([]SheetSummary, 0, len(sheets))

	for _, s := range sheets {
		filtered := s.Filter(req.Query)
		if filtered.Len() == 0 {
			continue
		}

		summaries = append(summaries, SheetSummary{
			Language: s.Language,
			Title:    s.Title,
			Aliases:  s.Aliases,
			Items:    filtered.Len(),
		})
	}

	return ListSheetsResponse{Sheets: summaries}, nil
}

type (
	GetSheetRequest struct {
		Language string `json:"language" param:"language" validate:"required"`
		Query    string `json:"q"        query:"q"`
	}
	GetSheetResponse struct {
		Language string    `json:"language"`
		Title    string    `json:"title"`
		Sections []Section `json:"sections"`
		Markdown string    `json:"markdown"`
	}

	Section struct {
		Title string `json:"title"`
		Items []Item `json:"items"`
	}
	Item struct {
		Description string `json:"description"`
		Code        string `json:"code"`
	}
)

func NewGetSheetQueryHandler(repo domain.SheetRepository) app.Query[GetSheetRequest, GetSheetResponse] {
	return &getSheetQueryHandler{repo: repo}
}

type getSheetQueryHandler struct {
	repo domain.SheetRepository
}

func (h *getSheetQueryHandler) H(ctx context.Context, req GetSheetRequest) (GetSheetResponse, error) {
	sheet, err := h.repo.FindByLanguage(ctx, req.Language)
	if err != nil {
		return GetSheetResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	sheet = sheet.Filter(req.Query)

	sections := make([]Section, 0, len(sheet.Sections))
	for _, sec := range sheet.Sections {
		items := make([]Item, 0, len(sec.Items))
		for _, item := range sec.Items {
			items = append(items, Item(item))
		}

		sections = append(sections, Section{Title: sec.Title, Items: items})
	}

	return GetSheetResponse{
		Language: sheet.Language,
		Title:    sheet.Title,
		Sections: sections,
		Markdown: sheet.Markdown(),
	}, nil
}
