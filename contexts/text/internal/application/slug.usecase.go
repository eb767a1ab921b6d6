package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

type (
	SlugifyRequest struct {
		Text       string `json:"text"`
		Separator  string `json:"separator"    validate:"omitempty,oneof=- _ ."`
		MaxLength  int    `json:"maxLength"    validate:"gte=0"`
		KeepCase   bool   `json:"keepCase"`
		SplitCamel bool   `json:"splitCamel"`
		// SuffixLength appends a random base62 suffix, to make the slug unique.
		SuffixLength int `json:"suffixLength" validate:"gte=0,lte=32"`
	}
	SlugifyResponse struct {
		Slug string `json:"slug"`
	}
)

func NewSlugifyRequestHandler() app.Request[SlugifyRequest, SlugifyResponse] {
	return app.RequestFunc[SlugifyRequest, SlugifyResponse](
		func(_ context.Context, req SlugifyRequest) (SlugifyResponse, error) {
			slug := domain.Slugify(req.Text, domain.SlugOptions{
				Separator:  req.Separator,
				MaxLength:  req.MaxLength,
				KeepCase:   req.KeepCase,
				SplitCamel: req.SplitCamel,
			})

			if req.SuffixLength > 0 {
				suffix, err := domain.RandomSuffix(req.SuffixLength)
				if err != nil {
					return SlugifyResponse{}, err //nolint:wrapcheck // domain errors are the api
				}

				sep := req.Separator
				if sep == "" {
					sep = domain.DefaultSeparator
				}

				if slug != "" {
					slug += sep
				}

				slug += suffix
			}

			return SlugifyResponse{Slug: slug}, nil
		},
	)
}
