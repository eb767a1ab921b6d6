package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/application"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/domain"
)

func NewCheatsheetController(app application.CheatsheetApplication) *CheatsheetController {
	return &CheatsheetController{app: app}
}

type CheatsheetController struct {
	app application.CheatsheetApplication
}

func (cc *CheatsheetController) ListSheets() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.ListSheets.H)
}

func (cc *CheatsheetController) GetSheet() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.GetSheet.H, devbelt.MapError(domain.ErrUnknownLanguage, http.StatusNotFound))
}
