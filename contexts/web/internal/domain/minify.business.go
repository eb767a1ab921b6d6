package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/minify/v2/xml"
)

var (
	ErrUnknownType  = errors.New("unknown type")
	ErrMinifyFailed = errors.New("minify failed")
)

type SourceType string

const (
	SourceCSS  SourceType = "css"
	SourceJS   SourceType = "js"
	SourceSVG  SourceType = "svg"
	SourceHTML SourceType = "html"
	SourceJSON SourceType = "json"
	SourceXML  SourceType = "xml"
)

var mediaTypes = map[SourceType]string{ //nolint:gochecknoglobals
	SourceCSS:  "text/css",
	SourceJS:   "application/javascript",
	SourceSVG:  "image/svg+xml",
	SourceHTML: "text/html",
	SourceJSON: "application/json",
	SourceXML:  "text/xml",
}

// NewMinifier returns a minifier for all SourceTypes. It is safe for concurrent use.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/json", json.Minify)
	m.AddFunc("text/xml", xml.Minify)

	return &Minifier{m: m}
}

type Minifier struct {
	m *minify.M
}

type Minified struct {
	Result       string
	OriginalSize int
	MinifiedSize int
	// SavedPercent is rounded to one decimal.
	SavedPercent float64
}

func (m *Minifier) Minify(typ SourceType, source string) (Minified, error) {
	mediaType, ok := mediaTypes[typ]
	if !ok {
		return Minified{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	res, err := m.m.String(mediaType, source)
	if err != nil {
		return Minified{}, fmt.Errorf("%w: %v", ErrMinifyFailed, err) //nolint:errorlint // prevent err in api
	}

	minified := Minified{
		Result:       res,
		OriginalSize: len(source),
		MinifiedSize: len(res),
	}

	if minified.OriginalSize > 0 {
		saved := 100 * float64(minified.OriginalSize-minified.MinifiedSize) / float64(minified.OriginalSize)
		minified.SavedPercent = math.Round(saved*10) / 10 //nolint:mnd // one decimal
	}

	return minified, nil
}
