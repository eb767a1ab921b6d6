package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

type (
	MatchRegexRequest struct {
		Pattern string `json:"pattern" validate:"required"`
		Flags   string `json:"flags"   validate:"omitempty,max=4"`
		Text    string `json:"text"`
		Flavor  string `json:"flavor"  validate:"omitempty,oneof=re2 extended"`
		// Replace is optional, an empty string replaces the matches with nothing.
		Replace *string `json:"replace"`
	}
	MatchRegexResponse struct {
		Matches  []Match   `json:"matches"`
		Segments []Segment `json:"segments"`
		Replaced *string   `json:"replaced,omitempty"`
	}

	Match struct {
		Index  int     `json:"index"`
		Length int     `json:"length"`
		Text   string  `json:"text"`
		Groups []Group `json:"groups"`
	}
	Group struct {
		Name    string `json:"name,omitempty"`
		Index   int    `json:"index"`
		Length  int    `json:"length"`
		Text    string `json:"text"`
		Matched bool   `json:"matched"`
	}
	Segment struct {
		Text  string `json:"text"`
		Match bool   `json:"match"`
	}
)

func NewMatchRegexRequestHandler() app.Request[MatchRegexRequest, MatchRegexResponse] {
	return app.RequestFunc[MatchRegexRequest, MatchRegexResponse](
		func(_ context.Context, req MatchRegexRequest) (MatchRegexResponse, error) {
			res, err := domain.MatchRegex(req.Pattern, req.Text, domain.RegexOptions{
				Flags:   req.Flags,
				Flavor:  domain.Flavor(req.Flavor),
				Replace: req.Replace,
			})
			if err != nil {
				return MatchRegexResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			resp := MatchRegexResponse{
				Matches:  make([]Match, 0, len(res.Matches)),
				Segments: make([]Segment, 0, len(res.Segments)),
				Replaced: res.Replaced,
			}

			for _, m := range res.Matches {
				groups := make([]Group, 0, len(m.Groups))
				for _, g := range m.Groups {
					groups = append(groups, Group(g))
				}

				resp.Matches = append(resp.Matches, Match{Index: m.Index, Length: m.Length, Text: m.Text, Groups: groups})
			}

			for _, s := range res.Segments {
				resp.Segments = append(resp.Segments, Segment(s))
			}

			return resp, nil
		},
	)
}
