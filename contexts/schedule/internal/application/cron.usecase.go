package application

import (
	"context"
	"fmt"
	"time"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/schedule/internal/domain"
)

const defaultRuns = 5

type (
	ExplainCronRequest struct {
		Expression string `json:"expression" validate:"required"`
		// Count of the next runs, defaults to 5.
		Count int `json:"count" validate:"gte=0"`
		// From is the time to calculate the next runs from, defaults to now.
		From     *time.Time `json:"from"`
		Timezone string     `json:"timezone"`
		Seconds  bool       `json:"seconds"`
	}
	ExplainCronResponse struct {
		Expression  string      `json:"expression"`
		Description string      `json:"description"`
		Fields      []Field     `json:"fields,omitempty"`
		Every       string      `json:"every,omitempty"`
		Timezone    string      `json:"timezone"`
		Next        []time.Time `json:"next"`
	}

	Field struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
)

func NewExplainCronRequestHandler(maxRuns int, now func() time.Time) app.Request[ExplainCronRequest, ExplainCronResponse] {
	return &explainCronRequestHandler{maxRuns: maxRuns, now: now}
}

type explainCronRequestHandler struct {
	maxRuns int
	now     func() time.Time
}

func (h *explainCronRequestHandler) H(_ context.Context, req ExplainCronRequest) (ExplainCronResponse, error) {
	count := req.Count
	if count == 0 {
		count = defaultRuns
	}

	if h.maxRuns > 0 && count > h.maxRuns {
		return ExplainCronResponse{}, fmt.Errorf("%w: at most %d per request", ErrTooManyRuns, h.maxRuns)
	}

	loc, err := domain.LoadLocation(req.Timezone)
	if err != nil {
		return ExplainCronResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	e, err := domain.ParseExpression(req.Expression, req.Seconds)
	if err != nil {
		return ExplainCronResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	from := h.now()
	if req.From != nil {
		from = *req.From
	}

	res := ExplainCronResponse{
		Expression:  e.Raw,
		Description: e.Describe(),
		Timezone:    loc.String(),
		Next:        e.Next(from.In(loc), count),
	}

	for _, f := range e.Fields {
		res.Fields = append(res.Fields, Field(f))
	}

	if e.Every > 0 {
		res.Every = e.Every.String()
	}

	return res, nil
}

type (
	// BuildCronRequest has one entry per field, an empty field matches every value.
	// The seconds field is only part of the expression, if it is set.
	BuildCronRequest struct {
		Second     string `json:"second"`
		Minute     string `json:"minute"`
		Hour       string `json:"hour"`
		DayOfMonth string `json:"dayOfMonth"`
		Month      string `json:"month"`
		DayOfWeek  string `json:"dayOfWeek"`
	}
	BuildCronResponse struct {
		Expression  string `json:"expression"`
		Description string `json:"description"`
	}
)

func NewBuildCronRequestHandler() app.Request[BuildCronRequest, BuildCronResponse] {
	return app.RequestFunc[BuildCronRequest, BuildCronResponse](
		func(_ context.Context, req BuildCronRequest) (BuildCronResponse, error) {
			expr := domain.Build(domain.BuildFields(req))

			e, err := domain.ParseExpression(expr, req.Second != "")
			if err != nil {
				return BuildCronResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return BuildCronResponse{Expression: e.Raw, Description: e.Describe()}, nil
		},
	)
}
