package web

import (
	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/text/internal/application"
)

func NewTextController(app application.TextApplication) *TextController {
	return &TextController{app: app}
}

type TextController struct {
	app application.TextApplication
}

func (tc *TextController) Slugify() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.Slugify.H)
}

func (tc *TextController) Count() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.Count.H)
}

func (tc *TextController) MatchRegex() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.MatchRegex.H)
}

func (tc *TextController) FormatJSON() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.FormatJSON.H)
}

func (tc *TextController) TreeJSON() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.TreeJSON.H)
}

func (tc *TextController) JSONToYAML() echo.HandlerFunc {
	return devbelt.HandleJSON(tc.app.JSONToYAML.H)
}
