package web

import (
	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/crypto/internal/application"
)

func NewCryptoController(app application.CryptoApplication) *CryptoController {
	return &CryptoController{app: app}
}

type CryptoController struct {
	app application.CryptoApplication
}

func (cc *CryptoController) Hash() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.Hash.H)
}

func (cc *CryptoController) HMAC() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.HMAC.H)
}

func (cc *CryptoController) BcryptHash() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.BcryptHash.H)
}

func (cc *CryptoController) BcryptCompare() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.BcryptCompare.H)
}

func (cc *CryptoController) GenerateUUID() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.GenerateUUID.H)
}

func (cc *CryptoController) InspectUUID() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.InspectUUID.H)
}

func (cc *CryptoController) GenerateULID() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.GenerateULID.H)
}

func (cc *CryptoController) InspectULID() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.InspectULID.H)
}

func (cc *CryptoController) DecodeJWT() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.DecodeJWT.H)
}
