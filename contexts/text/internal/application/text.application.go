// Package application contains the use cases of the text tools.
package application

import "github.com/iseif/devbelt/app"

type TextApplication struct {
	Slugify    app.Request[SlugifyRequest, SlugifyResponse]
	Count      app.Request[CountRequest, CountResponse]
	MatchRegex app.Request[MatchRegexRequest, MatchRegexResponse]
	FormatJSON app.Request[FormatJSONRequest, FormatJSONResponse]
	TreeJSON   app.Request[TreeJSONRequest, TreeJSONResponse]
	JSONToYAML app.Request[JSONToYAMLRequest, JSONToYAMLResponse]
}
