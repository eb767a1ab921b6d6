package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

type (
	CountRequest struct {
		Text string `json:"text"`
	}
	CountResponse struct {
		Characters      int    `json:"characters"`
		Runes           int    `json:"runes"`
		Bytes           int    `json:"bytes"`
		Words           int    `json:"words"`
		Lines           int    `json:"lines"`
		Sentences       int    `json:"sentences"`
		Paragraphs      int    `json:"paragraphs"`
		Spaces          int    `json:"spaces"`
		ReadingTime     string `json:"readingTime"`
		ReadingSeconds  int    `json:"readingSeconds"`
		SpeakingTime    string `json:"speakingTime"`
		SpeakingSeconds int    `json:"speakingSeconds"`
	}
)

func NewCountRequestHandler() app.Request[CountRequest, CountResponse] {
	return app.RequestFunc[CountRequest, CountResponse](
		func(_ context.Context, req CountRequest) (CountResponse, error) {
			stats := domain.Count(req.Text)

			return CountResponse{
				Characters:      stats.Characters,
				Runes:           stats.Runes,
				Bytes:           stats.Bytes,
				Words:           stats.Words,
				Lines:           stats.Lines,
				Sentences:       stats.Sentences,
				Paragraphs:      stats.Paragraphs,
				Spaces:          stats.Spaces,
				ReadingTime:     stats.ReadingTime.String(),
				ReadingSeconds:  int(stats.ReadingTime.Seconds()),
				SpeakingTime:    stats.SpeakingTime.String(),
				SpeakingSeconds: int(stats.SpeakingTime.Seconds()),
			}, nil
		},
	)
}
