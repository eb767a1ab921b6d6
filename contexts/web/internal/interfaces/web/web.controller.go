package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/web/internal/application"
	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

func NewWebController(app application.WebApplication) *WebController {
	return &WebController{app: app}
}

type WebController struct {
	app application.WebApplication
}

func (wc *WebController) ParseUserAgent() echo.HandlerFunc {
	return devbelt.HandleJSON(wc.app.ParseUserAgent.H, devbelt.BindHeaders())
}

func (wc *WebController) LookupIP() echo.HandlerFunc {
	return devbelt.HandleJSON(wc.app.LookupIP.H, devbelt.MapError(domain.ErrLookupFailed, http.StatusBadGateway))
}

// WhoAmI describes the caller, so the request is not bound but read directly.
func (wc *WebController) WhoAmI() echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := wc.app.WhoAmI.H(c.Request().Context(), application.WhoAmIRequest{
			IP:        c.RealIP(),
			UserAgent: c.Request().UserAgent(),
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return c.JSON(http.StatusOK, res)
	}
}

func (wc *WebController) Gradient() echo.HandlerFunc {
	return devbelt.HandleJSON(wc.app.Gradient.H)
}

func (wc *WebController) RandomGradient() echo.HandlerFunc {
	return devbelt.HandleJSON(wc.app.RandomGradient.H)
}

func (wc *WebController) Minify() echo.HandlerFunc {
	return devbelt.HandleJSON(wc.app.Minify.H, devbelt.MapError(domain.ErrMinifyFailed, http.StatusUnprocessableEntity))
}
