package application

import (
	"context"
	"strings"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

type (
	FormatJSONRequest struct {
		JSON string `json:"json"`
		// Indent is the number of spaces per level, zero defaults to two.
		Indent   int  `json:"indent"   validate:"gte=0,lte=8"`
		Tabs     bool `json:"tabs"`
		SortKeys bool `json:"sortKeys"`
		Minify   bool `json:"minify"`
	}
	FormatJSONResponse struct {
		Result string `json:"result"`
	}
)

func NewFormatJSONRequestHandler() app.Request[FormatJSONRequest, FormatJSONResponse] {
	return app.RequestFunc[FormatJSONRequest, FormatJSONResponse](
		func(_ context.Context, req FormatJSONRequest) (FormatJSONResponse, error) {
			indent := strings.Repeat(" ", req.Indent)
			if req.Tabs {
				indent = "\t"
			}

			res, err := domain.FormatJSON(req.JSON, domain.FormatOptions{
				Indent:   indent,
				SortKeys: req.SortKeys,
				Minify:   req.Minify,
			})
			if err != nil {
				return FormatJSONResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return FormatJSONResponse{Result: res}, nil
		},
	)
}

type (
	TreeJSONRequest struct {
		JSON string `json:"json"`
	}
	TreeJSONResponse struct {
		Nodes []Node `json:"nodes"`
	}
	Node struct {
		Path  string `json:"path"`
		Key   string `json:"key"`
		Type  string `json:"type"`
		Value string `json:"value,omitempty"`
		Depth int    `json:"depth"`
		Size  int    `json:"size,omitempty"`
	}
)

func NewTreeJSONRequestHandler() app.Request[TreeJSONRequest, TreeJSONResponse] {
	return app.RequestFunc[TreeJSONRequest, TreeJSONResponse](
		func(_ context.Context, req TreeJSONRequest) (TreeJSONResponse, error) {
			nodes, err := domain.TreeJSON(req.JSON)
			if err != nil {
				return TreeJSONResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			res := TreeJSONResponse{Nodes: make([]Node, 0, len(nodes))}
			for _, n := range nodes {
				res.Nodes = append(res.Nodes, Node{
					Path:  n.Path,
					Key:   n.Key,
					Type:  string(n.Type),
					Value: n.Value,
					Depth: n.Depth,
					Size:  n.Size,
				})
			}

			return res, nil
		},
	)
}

type (
	JSONToYAMLRequest struct {
		JSON string `json:"json"`
	}
	JSONToYAMLResponse struct {
		Result string `json:"result"`
	}
)

func NewJSONToYAMLRequestHandler() app.Request[JSONToYAMLRequest, JSONToYAMLResponse] {
	return app.RequestFunc[JSONToYAMLRequest, JSONToYAMLResponse](
		func(_ context.Context, req JSONToYAMLRequest) (JSONToYAMLResponse, error) {
			res, err := domain.JSONToYAML(req.JSON)
			if err != nil {
				return JSONToYAMLResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return JSONToYAMLResponse{Result: res}, nil
		},
	)
}
