package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

const defaultPaletteSteps = 5

type (
	GradientRequest struct {
		Type      string        `json:"type"      validate:"omitempty,oneof=linear radial conic"`
		Angle     float64       `json:"angle"`
		Shape     string        `json:"shape"     validate:"omitempty,oneof=circle ellipse"`
		Stops     []StopRequest `json:"stops"     validate:"min=2,dive"`
		Repeating bool          `json:"repeating"`
		// Steps is the size of the palette, defaults to 5.
		Steps int `json:"steps" validate:"gte=0,lte=100"`
	}
	StopRequest struct {
		Color    string   `json:"color"    validate:"required"`
		Position *float64 `json:"position" validate:"omitempty,gte=0,lte=100"`
	}

	GradientResponse struct {
		CSS        string    `json:"css"`
		Background string    `json:"background"`
		Colors     []string  `json:"colors"`
		Positions  []float64 `json:"positions"`
		Palette    []string  `json:"palette"`
	}
)

func NewGradientRequestHandler() app.Request[GradientRequest, GradientResponse] {
	return app.RequestFunc[GradientRequest, GradientResponse](
		func(_ context.Context, req GradientRequest) (GradientResponse, error) {
			typ := domain.GradientType(req.Type)
			if typ == "" {
				typ = domain.GradientLinear
			}

			g := domain.Gradient{
				Type:      typ,
				Angle:     req.Angle,
				Shape:     req.Shape,
				Stops:     make([]domain.Stop, 0, len(req.Stops)),
				Repeating: req.Repeating,
			}

			for _, s := range req.Stops {
				c, err := domain.ParseColor(s.Color)
				if err != nil {
					return GradientResponse{}, err //nolint:wrapcheck // domain errors are the api
				}

				g.Stops = append(g.Stops, domain.Stop{Color: c, Position: s.Position})
			}

			if err := g.Validate(); err != nil {
				return GradientResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return gradientResponse(g, req.Steps), nil
		},
	)
}

type RandomGradientRequest struct {
	Angle *float64 `json:"angle" validate:"omitempty,gte=0,lte=360"`
	Steps int      `json:"steps" validate:"gte=0,lte=100"`
}

func NewRandomGradientRequestHandler() app.Request[RandomGradientRequest, GradientResponse] {
	return app.RequestFunc[RandomGradientRequest, GradientResponse](
		func(_ context.Context, req RandomGradientRequest) (GradientResponse, error) {
			angle := 90.0
			if req.Angle != nil {
				angle = *req.Angle
			}

			return gradientResponse(domain.RandomGradient(angle), req.Steps), nil
		},
	)
}

func gradientResponse(g domain.Gradient, steps int) GradientResponse {
	if steps == 0 {
		steps = defaultPaletteSteps
	}

	colors := make([]string, 0, len(g.Stops))
	for _, s := range g.Stops {
		colors = append(colors, s.Color.Hex())
	}

	return GradientResponse{
		CSS:        g.CSS(),
		Background: g.Background(),
		Colors:     colors,
		Positions:  g.Positions(),
		Palette:    g.Palette(steps),
	}
}
