package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var ErrInvalidJSON = errors.New("invalid json")

// SyntaxError reports where a JSON document is broken. Line and column start at 1.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d, column %d: %s", ErrInvalidJSON, e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidJSON
}

// ValidateJSON returns a *SyntaxError, if src is not exactly one JSON value.
func ValidateJSON(src string) error {
	if json.Valid([]byte(src)) {
		return nil
	}

	var v any

	err := json.Unmarshal([]byte(src), &v)

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		// the offset is behind the offending character, unless the input ended early.
		offset := int(syntaxErr.Offset)
		if offset > 0 && !strings.HasPrefix(syntaxErr.Error(), "unexpected end") {
			offset--
		}

		line, col := position(src, offset)

		return &SyntaxError{Line: line, Column: col, Msg: syntaxErr.Error()}
	}

	line, col := position(src, len(src))

	return &SyntaxError{Line: line, Column: col, Msg: "unexpected end of JSON input"}
}

// position converts a byte offset into a line and a column in characters.
func position(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}

	before := src[:offset]
	line := strings.Count(before, "\n") + 1

	if i := strings.LastIndex(before, "\n"); i >= 0 {
		before = before[i+1:]
	}

	return line, len([]rune(before)) + 1
}

type FormatOptions struct {
	// Indent is the string used for one level of indentation, empty defaults to two spaces.
	Indent   string
	SortKeys bool
	Minify   bool
}

// FormatJSON pretty prints or minifies src. The order of keys is kept, unless SortKeys is set.
func FormatJSON(src string, opts FormatOptions) (string, error) {
	if err := ValidateJSON(src); err != nil {
		return "", err
	}

	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	data := []byte(src)

	if opts.SortKeys {
		sorted, err := sortKeys(data)
		if err != nil {
			return "", err
		}

		data = sorted
	}

	var buf bytes.Buffer

	var err error
	if opts.Minify {
		err = json.Compact(&buf, data)
	} else {
		err = json.Indent(&buf, data, "", indent)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err) //nolint:errorlint // prevent err in api
	}

	return buf.String(), nil
}

// sortKeys relies on encoding/json writing map keys in sorted order.
func sortKeys(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err) //nolint:errorlint // prevent err in api
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("could not encode json: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

type NodeType string

const (
	NodeObject  NodeType = "object"
	NodeArray   NodeType = "array"
	NodeString  NodeType = "string"
	NodeNumber  NodeType = "number"
	NodeBoolean NodeType = "boolean"
	NodeNull    NodeType = "null"
)

// Node is one value of a JSON document. Objects and arrays report the number of children as Size.
type Node struct {
	Path  string
	Key   string
	Type  NodeType
	Value string
	Depth int
	Size  int
}

// TreeJSON flattens src into its nodes in document order, starting with the root "$".
func TreeJSON(src string) ([]Node, error) {
	if err := ValidateJSON(src); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()

	nodes := []Node{}
	if err := walk(dec, "$", "", 0, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err) //nolint:errorlint // prevent err in api
	}

	return nodes, nil
}

func walk(dec *json.Decoder, path string, key string, depth int, nodes *[]Node) error {
	tok, err := dec.Token()
	if err != nil {
		return err //nolint:wrapcheck // wrapped by the caller
	}

	node := Node{Path: path, Key: key, Depth: depth}

	switch v := tok.(type) {
	case json.Delim:
		idx := len(*nodes)
		*nodes = append(*nodes, node)

		size, err := walkContainer(dec, v, path, depth, nodes)
		if err != nil {
			return err
		}

		(*nodes)[idx].Size = size
		(*nodes)[idx].Type = NodeArray

		if v == '{' {
			(*nodes)[idx].Type = NodeObject
		}

		return nil
	case string:
		node.Type, node.Value = NodeString, v
	case json.Number:
		node.Type, node.Value = NodeNumber, v.String()
	case bool:
		node.Type, node.Value = NodeBoolean, strconv.FormatBool(v)
	case nil:
		node.Type, node.Value = NodeNull, "null"
	}

	*nodes = append(*nodes, node)

	return nil
}

func walkContainer(dec *json.Decoder, delim json.Delim, path string, depth int, nodes *[]Node) (int, error) {
	size := 0

	for ; dec.More(); size++ {
		if delim == '[' {
			key := strconv.Itoa(size)
			if err := walk(dec, path+"["+key+"]", key, depth+1, nodes); err != nil {
				return 0, err
			}

			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return 0, err //nolint:wrapcheck // wrapped by the caller
		}

		key, _ := tok.(string)
		if err := walk(dec, childPath(path, key), key, depth+1, nodes); err != nil {
			return 0, err
		}
	}

	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return 0, err //nolint:wrapcheck // wrapped by the caller
	}

	return size, nil
}

func childPath(parent string, key string) string {
	if isIdentifier(key) {
		return parent + "." + key
	}

	return parent + "[" + strconv.Quote(key) + "]"
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

// JSONToYAML converts src into a block style YAML document, keeping the order of keys.
func JSONToYAML(src string) (string, error) {
	if err := ValidateJSON(src); err != nil {
		return "", err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err) //nolint:errorlint // prevent err in api
	}

	blockStyle(&doc)

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd // the common YAML indentation

	if err := enc.Encode(&doc); err != nil {
		return "", fmt.Errorf("could not encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("could not encode yaml: %w", err)
	}

	return buf.String(), nil
}

// blockStyle drops the flow style the YAML parser keeps for JSON input.
// Strings that would change their type without quotes are quoted by the encoder.
func blockStyle(n *yaml.Node) {
	n.Style = 0

	for _, c := range n.Content {
		blockStyle(c)
	}
}
