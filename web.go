package devbelt

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandlerOpt configures HandleJSON.
type HandlerOpt func(*jsonHandler)

// MapError responds with status, if the error returned by a use case is target.
func MapError(target error, status int) HandlerOpt {
	return func(h *jsonHandler) {
		h.errs = append(h.errs, errorStatus{target: target, status: status})
	}
}

// BindHeaders fills the fields of Req tagged with `header:"..."` before the body is bound,
// so that a value in the body takes precedence.
func BindHeaders() HandlerOpt {
	return func(h *jsonHandler) {
		h.headers = true
	}
}

type errorStatus struct {
	target error
	status int
}

type jsonHandler struct {
	errs    []errorStatus
	headers bool
}

func (h *jsonHandler) status(err error) int {
	for _, e := range h.errs {
		if errors.Is(err, e.target) {
			return e.status
		}
	}

	return http.StatusBadRequest
}

// HandleJSON binds the request (body, query and path params) into Req,
// calls the use case and renders its result as JSON.
// Use case errors are reported as one line with http.StatusBadRequest, unless mapped via MapError.
func HandleJSON[Req any, Res any](usecase func(context.Context, Req) (Res, error), opts ...HandlerOpt) echo.HandlerFunc {
	h := &jsonHandler{}
	for _, opt := range opts {
		opt(h)
	}

	return func(c echo.Context) error {
		var req Req

		if h.headers {
			if err := (&echo.DefaultBinder{}).BindHeaders(c, &req); err != nil {
				return err //nolint:wrapcheck // echo returns a *echo.HTTPError already
			}
		}

		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // echo returns a *echo.HTTPError already
		}

		res, err := usecase(c.Request().Context(), req)
		if err != nil {
			return echo.NewHTTPError(h.status(err), err.Error())
		}

		return c.JSON(http.StatusOK, res)
	}
}
