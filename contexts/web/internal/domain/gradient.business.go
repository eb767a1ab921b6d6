package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidGradient = errors.New("invalid gradient")
)

type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
	GradientConic  GradientType = "conic"
)

const (
	MinStops = 2
	MaxSteps = 100
)

// namedColors is the subset of the CSS color keywords accepted in stops.
var namedColors = map[string]string{ //nolint:gochecknoglobals
	"black":         "#000000",
	"white":         "#ffffff",
	"red":           "#ff0000",
	"green":         "#008000",
	"lime":          "#00ff00",
	"blue":          "#0000ff",
	"yellow":        "#ffff00",
	"cyan":          "#00ffff",
	"aqua":          "#00ffff",
	"magenta":       "#ff00ff",
	"fuchsia":       "#ff00ff",
	"gray":          "#808080",
	"grey":          "#808080",
	"silver":        "#c0c0c0",
	"maroon":        "#800000",
	"olive":         "#808000",
	"navy":          "#000080",
	"purple":        "#800080",
	"teal":          "#008080",
	"orange":        "#ffa500",
	"pink":          "#ffc0cb",
	"gold":          "#ffd700",
	"indigo":        "#4b0082",
	"violet":        "#ee82ee",
	"brown":         "#a52a2a",
	"coral":         "#ff7f50",
	"tomato":        "#ff6347",
	"turquoise":     "#40e0d0",
	"skyblue":       "#87ceeb",
	"rebeccapurple": "#663399",
}

// ParseColor accepts #rgb, #rrggbb, rgb(r, g, b) and the common named colors.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}

		return c, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"))
	}

	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseRGB(s string) (colorful.Color, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 3 { //nolint:mnd // r, g and b
		return colorful.Color{}, fmt.Errorf("%w: rgb needs three channels", ErrInvalidColor)
	}

	var channels [3]uint8

	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: channel %q is not 0 to 255", ErrInvalidColor, p)
		}

		channels[i] = uint8(v)
	}

	return colorful.Color{
		R: float64(channels[0]) / 255, //nolint:mnd // 8 bit channels
		G: float64(channels[1]) / 255, //nolint:mnd
		B: float64(channels[2]) / 255, //nolint:mnd
	}, nil
}

// Stop is a color of a gradient. Without a position it is placed between its neighbours.
type Stop struct {
	Color    colorful.Color
	Position *float64
}

type Gradient struct {
	Type GradientType
	// Angle in degrees, used by linear and conic gradients.
	Angle float64
	// Shape is circle or ellipse, used by radial gradients.
	Shape     string
	Stops     []Stop
	Repeating bool
}

func (g Gradient) Validate() error {
	switch g.Type {
	case GradientLinear, GradientRadial, GradientConic:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidGradient, g.Type)
	}

	if g.Type == GradientRadial && g.Shape != "" && g.Shape != "circle" && g.Shape != "ellipse" {
		return fmt.Errorf("%w: shape must be circle or ellipse", ErrInvalidGradient)
	}

	if len(g.Stops) < MinStops {
		return fmt.Errorf("%w: at least %d stops are required", ErrInvalidGradient, MinStops)
	}

	for _, s := range g.Stops {
		if s.Position != nil && (*s.Position < 0 || *s.Position > 100) {
			return fmt.Errorf("%w: positions must be between 0 and 100", ErrInvalidGradient)
		}
	}

	return nil
}

// Positions returns the position of every stop, following the CSS rules:
// the first stop defaults to 0, the last to 100, missing ones are spread evenly
// between their neighbours and a position is never smaller than the one before.
func (g Gradient) Positions() []float64 {
	n := len(g.Stops)
	pos := make([]float64, n)
	known := make([]bool, n)

	for i, s := range g.Stops {
		if s.Position != nil {
			pos[i], known[i] = *s.Position, true
		}
	}

	if !known[0] {
		pos[0], known[0] = 0, true
	}

	if !known[n-1] {
		pos[n-1], known[n-1] = 100, true
	}

	for i := 1; i < n; i++ {
		if known[i] {
			pos[i] = math.Max(pos[i], pos[i-1])
		}
	}

	for i := 1; i < n; i++ {
		if known[i] {
			continue
		}

		next := i
		for !known[next] {
			next++
		}

		prev := i - 1
		step := (pos[next] - pos[prev]) / float64(next-prev)

		for j := i; j < next; j++ {
			pos[j], known[j] = pos[prev]+step*float64(j-prev), true
		}
	}

	return pos
}

// CSS returns the gradient function, e.g. linear-gradient(90deg, #ff0000 0%, #0000ff 100%).
func (g Gradient) CSS() string {
	positions := g.Positions()

	stops := make([]string, 0, len(g.Stops))
	for i, s := range g.Stops {
		stops = append(stops, s.Color.Hex()+" "+formatNumber(positions[i])+"%")
	}

	var prefix string

	switch g.Type {
	case GradientRadial:
		shape := g.Shape
		if shape == "" {
			shape = "ellipse"
		}

		prefix = shape
	case GradientConic:
		prefix = "from " + formatNumber(g.Angle) + "deg"
	default:
		prefix = formatNumber(g.Angle) + "deg"
	}

	name := string(g.Type) + "-gradient"
	if g.Repeating {
		name = "repeating-" + name
	}

	return name + "(" + prefix + ", " + strings.Join(stops, ", ") + ")"
}

// Background returns the declarations with a solid fallback for old browsers.
func (g Gradient) Background() string {
	return "background: " + g.Stops[0].Color.Hex() + ";\nbackground: " + g.CSS() + ";"
}

// Palette returns steps colors sampled evenly along the gradient, blended in Lab space.
func (g Gradient) Palette(steps int) []string {
	if steps <= 0 {
		return []string{}
	}

	positions := g.Positions()
	palette := make([]string, 0, steps)

	for i := range steps {
		at := 0.0
		if steps > 1 {
			at = 100 * float64(i) / float64(steps-1)
		}

		palette = append(palette, g.colorAt(at, positions).Clamped().Hex())
	}

	return palette
}

func (g Gradient) colorAt(at float64, positions []float64) colorful.Color {
	last := len(positions) - 1

	if at <= positions[0] {
		return g.Stops[0].Color
	}

	for i := 1; i <= last; i++ {
		if at > positions[i] {
			continue
		}

		span := positions[i] - positions[i-1]
		if span == 0 {
			return g.Stops[i].Color
		}

		t := (at - positions[i-1]) / span

		return g.Stops[i-1].Color.BlendLab(g.Stops[i].Color, t)
	}

	return g.Stops[last].Color
}

// RandomGradient returns a linear gradient between two random, pleasant colors.
func RandomGradient(angle float64) Gradient {
	start, end := 0.0, 100.0

	return Gradient{
		Type:  GradientLinear,
		Angle: angle,
		Stops: []Stop{
			{Color: colorful.HappyColor(), Position: &start},
			{Color: colorful.HappyColor(), Position: &end},
		},
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64) //nolint:mnd // two decimals
}
