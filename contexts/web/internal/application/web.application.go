// Package application contains the use cases of the web tools.
package application

import "github.com/iseif/devbelt/app"

type WebApplication struct {
	ParseUserAgent app.Request[ParseUserAgentRequest, ParseUserAgentResponse]
	LookupIP       app.Request[LookupIPRequest, LookupIPResponse]
	WhoAmI         app.Request[WhoAmIRequest, WhoAmIResponse]
	Gradient       app.Request[GradientRequest, GradientResponse]
	RandomGradient app.Request[RandomGradientRequest, GradientResponse]
	Minify         app.Request[MinifyRequest, MinifyResponse]
}
