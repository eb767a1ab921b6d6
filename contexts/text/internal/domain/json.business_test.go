package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

func TestValidateJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src    string
		line   int
		column int
	}{
		"missing value":   {"{\n  \"a\": \n}", 3, 1},
		"trailing comma":  {`[1,2,]`, 1, 6},
		"unexpected end":  {`{"a":`, 1, 6},
		"empty":           {``, 1, 1},
		"multiple values": {"{} {}", 1, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := domain.ValidateJSON(tt.src)
			assert.ErrorIs(t, err, domain.ErrInvalidJSON)

			var syntaxErr *domain.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.line, syntaxErr.Line)
			assert.Equal(t, tt.column, syntaxErr.Column)
		})
	}

	assert.NoError(t, domain.ValidateJSON(`{"a":[1,true,null]}`))
}

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	src := `{"b":1,"a":{"y":"<x>","x":[1.50,2]}}`

	tests := map[string]struct {
		opts     domain.FormatOptions
		expected string
	}{
		"keep order": {domain.FormatOptions{}, "{\n  \"b\": 1,\n  \"a\": {\n    \"y\": \"<x>\",\n    \"x\": [\n      1.50,\n      2\n    ]\n  }\n}"},
		"sort keys":  {domain.FormatOptions{SortKeys: true, Indent: "\t"}, "{\n\t\"a\": {\n\t\t\"x\": [\n\t\t\t1.50,\n\t\t\t2\n\t\t],\n\t\t\"y\": \"<x>\"\n\t},\n\t\"b\": 1\n}"},
		"minify":     {domain.FormatOptions{Minify: true}, src},
		"minify sorted": {
			domain.FormatOptions{Minify: true, SortKeys: true},
			`{"a":{"x":[1.50,2],"y":"<x>"},"b":1}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			formatted, err := domain.FormatJSON(src, tt.opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, formatted)
		})
	}

	_, err := domain.FormatJSON(`{`, domain.FormatOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidJSON)
}

func TestTreeJSON(t *testing.T) {
	t.Parallel()

	nodes, err := domain.TreeJSON(`{"a":[1,"x"],"b c":null,"d":{"e":false}}`)
	require.NoError(t, err)

	assert.Equal(t, []domain.Node{
		{Path: "$", Type: domain.NodeObject, Size: 3},
		{Path: "$.a", Key: "a", Type: domain.NodeArray, Depth: 1, Size: 2},
		{Path: "$.a[0]", Key: "0", Type: domain.NodeNumber, Value: "1", Depth: 2},
		{Path: "$.a[1]", Key: "1", Type: domain.NodeString, Value: "x", Depth: 2},
		{Path: `$["b c"]`, Key: "b c", Type: domain.NodeNull, Value: "null", Depth: 1},
		{Path: "$.d", Key: "d", Type: domain.NodeObject, Depth: 1, Size: 1},
		{Path: "$.d.e", Key: "e", Type: domain.NodeBoolean, Value: "false", Depth: 2},
	}, nodes)

	nodes, err = domain.TreeJSON(`"scalar"`)
	require.NoError(t, err)
	assert.Equal(t, []domain.Node{{Path: "$", Type: domain.NodeString, Value: "scalar"}}, nodes)

	_, err = domain.TreeJSON(`[1,]`)
	assert.ErrorIs(t, err, domain.ErrInvalidJSON)
}

func TestJSONToYAML(t *testing.T) {
	t.Parallel()

	y, err := domain.JSONToYAML(`{"name":"devbelt","tags":["a","b"],"flag":"true","n":1.5,"empty":{},"nil":null}`)
	require.NoError(t, err)

	assert.Equal(t, `name: devbelt
tags:
  - a
  - b
flag: "true"
n: 1.5
empty: {}
nil: null
`, y)

	_, err = domain.JSONToYAML(`{a: 1}`)
	assert.ErrorIs(t, err, domain.ErrInvalidJSON, "valid yaml, but not json")
}
