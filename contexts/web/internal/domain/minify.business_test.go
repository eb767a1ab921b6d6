package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

func TestMinifier_Minify(t *testing.T) {
	t.Parallel()

	m := domain.NewMinifier()

	t.Run("css", func(t *testing.T) {
		t.Parallel()

		res, err := m.Minify(domain.SourceCSS, "body { color : red ; }")
		assert.NoError(t, err)
		assert.Equal(t, domain.Minified{
			Result:       "body{color:red}",
			OriginalSize: 22,
			MinifiedSize: 15,
			SavedPercent: 31.8,
		}, res)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		res, err := m.Minify(domain.SourceJSON, `{ "a" : [1, 2] }`)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":[1,2]}`, res.Result)
	})

	t.Run("smaller", func(t *testing.T) {
		t.Parallel()

		sources := map[domain.SourceType]string{
			domain.SourceJS:   "function add ( a, b ) {\n  // sum\n  return a + b ;\n}\n",
			domain.SourceSVG:  `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">  <!-- dot -->  <rect x="0" y="0" width="10" height="10" />  </svg>`,
			domain.SourceHTML: "<html>\n  <body>\n    <p>  hello   world  </p>\n  </body>\n</html>",
			domain.SourceXML:  "<root>\n  <item  id=\"1\" />\n</root>",
		}

		for typ, src := range sources {
			res, err := m.Minify(typ, src)
			assert.NoError(t, err, typ)
			assert.Less(t, res.MinifiedSize, res.OriginalSize, typ)
			assert.Positive(t, res.SavedPercent, typ)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		res, err := m.Minify(domain.SourceCSS, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.Minified{}, res)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := m.Minify("yaml", "a: 1")
		assert.ErrorIs(t, err, domain.ErrUnknownType)

		_, err = m.Minify(domain.SourceJSON, `{"a" 1}`)
		assert.ErrorIs(t, err, domain.ErrMinifyFailed)
	})
}
