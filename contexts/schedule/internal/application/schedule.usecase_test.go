package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/schedule/internal/application"
	"github.com/iseif/devbelt/contexts/schedule/internal/domain"
)

func TestExplainCronRequestHandler_H(t *testing.T) {
	t.Parallel()

	handler := app.NewValidatedRequest(nil, application.NewExplainCronRequestHandler(10, clock))

	t.Run("explain", func(t *testing.T) {
		t.Parallel()

		res, err := handler.H(ctx, application.ExplainCronRequest{Expression: "30 9 * * 1-5", Count: 2})
		assert.NoError(t, err)
		assert.Equal(t, application.ExplainCronResponse{
			Expression:  "30 9 * * 1-5",
			Description: "At 09:30, Monday through Friday",
			Fields: []application.Field{
				{Name: "minute", Value: "30"},
				{Name: "hour", Value: "9"},
				{Name: "dayOfMonth", Value: "*"},
				{Name: "month", Value: "*"},
				{Name: "dayOfWeek", Value: "1-5"},
			},
			Timezone: "UTC",
			Next: []time.Time{
				time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC),
				time.Date(2024, 1, 9, 9, 30, 0, 0, time.UTC),
			},
		}, res)
	})

	t.Run("default count", func(t *testing.T) {
		t.Parallel()

		res, err := handler.H(ctx, application.ExplainCronRequest{Expression: "@hourly"})
		assert.NoError(t, err)
		assert.Len(t, res.Next, 5)
		assert.Equal(t, time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC), res.Next[0])
	})

	t.Run("timezone and from", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		res, err := handler.H(ctx, application.ExplainCronRequest{
			Expression: "0 0 9 * * *",
			Seconds:    true,
			Timezone:   "America/New_York",
			From:       &from,
			Count:      1,
		})
		assert.NoError(t, err)
		assert.Equal(t, "America/New_York", res.Timezone)
		assert.Equal(t, time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC), res.Next[0].UTC())
	})

	t.Run("every", func(t *testing.T) {
		t.Parallel()

		res, err := handler.H(ctx, application.ExplainCronRequest{Expression: "@every 15m", Count: 1})
		assert.NoError(t, err)
		assert.Equal(t, "15m0s", res.Every)
		assert.Empty(t, res.Fields)
		assert.Equal(t, []time.Time{fixedNow.Add(15 * time.Minute)}, res.Next)
	})

	t.Run("too many runs", func(t *testing.T) {
		t.Parallel()

		_, err := handler.H(ctx, application.ExplainCronRequest{Expression: "* * * * *", Count: 11})
		assert.ErrorIs(t, err, application.ErrTooManyRuns)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := handler.H(ctx, application.ExplainCronRequest{Expression: "61 * * * *"})
		assert.ErrorIs(t, err, domain.ErrInvalidExpression)

		_, err = handler.H(ctx, application.ExplainCronRequest{Expression: "* * * * *", Timezone: "Nowhere"})
		assert.ErrorIs(t, err, domain.ErrInvalidTimezone)

		_, err = handler.H(ctx, application.ExplainCronRequest{})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}

func TestBuildCronRequestHandler_H(t *testing.T) {
	t.Parallel()

	handler := application.NewBuildCronRequestHandler()

	res, err := handler.H(ctx, application.BuildCronRequest{Minute: "0", Hour: "9,17"})
	assert.NoError(t, err)
	assert.Equal(t, "0 9,17 * * *", res.Expression)
	assert.Contains(t, res.Description, "09:00")
	assert.Contains(t, res.Description, "17:00")

	res, err = handler.H(ctx, application.BuildCronRequest{Second: "*/30"})
	assert.NoError(t, err)
	assert.Equal(t, "*/30 * * * * *", res.Expression)

	_, err = handler.H(ctx, application.BuildCronRequest{Hour: "25"})
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
}
