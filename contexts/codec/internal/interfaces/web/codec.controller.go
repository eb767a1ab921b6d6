package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/codec/internal/application"
)

// MaxFileSize limits the upload of files to be turned into data URIs.
const MaxFileSize = 10 << 20

func NewCodecController(app application.CodecApplication) *CodecController {
	return &CodecController{app: app}
}

type CodecController struct {
	app application.CodecApplication
}

func (cc *CodecController) EncodeBase64() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.EncodeBase64.H)
}

func (cc *CodecController) DecodeBase64() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.DecodeBase64.H)
}

// EncodeDataURI expects a multipart form with the field `file`.
func (cc *CodecController) EncodeDataURI() echo.HandlerFunc {
	return func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "missing file")
		}

		if fh.Size > MaxFileSize {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("file is larger than %d bytes", MaxFileSize))
		}

		file, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, MaxFileSize))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		res, err := cc.app.EncodeDataURI.H(c.Request().Context(), application.EncodeDataURIRequest{Data: data})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return c.JSON(http.StatusOK, res)
	}
}

func (cc *CodecController) EncodeBase58() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.EncodeBase58.H)
}

func (cc *CodecController) DecodeBase58() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.DecodeBase58.H)
}

func (cc *CodecController) ConvertBase() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.ConvertBase.H)
}

func (cc *CodecController) Hexdump() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.Hexdump.H)
}

func (cc *CodecController) Escape() echo.HandlerFunc {
	return devbelt.HandleJSON(cc.app.Escape.H)
}
