package web_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/codec/internal/application"
	"github.com/iseif/devbelt/contexts/codec/internal/interfaces/web"
)

func newTestController() *web.CodecController {
	return web.NewCodecController(application.CodecApplication{
		EncodeBase64:  application.NewEncodeBase64RequestHandler(),
		DecodeBase64:  application.NewDecodeBase64RequestHandler(),
		EncodeDataURI: application.NewEncodeDataURIRequestHandler(),
		EncodeBase58:  application.NewEncodeBase58RequestHandler(),
		DecodeBase58:  application.NewDecodeBase58RequestHandler(),
		ConvertBase:   application.NewConvertBaseRequestHandler(),
		Hexdump:       application.NewHexdumpRequestHandler(16),
		Escape:        application.NewEscapeRequestHandler(),
	})
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	e.POST("/", handler)
	e.ServeHTTP(rec, req)

	return rec
}

func TestCodecController(t *testing.T) {
	t.Parallel()

	cc := newTestController()

	tests := map[string]struct {
		handler echo.HandlerFunc
		body    string
		code    int
		resp    string
	}{
		"encode base64": {cc.EncodeBase64(), `{"text":"hello"}`, http.StatusOK, `{"result":"aGVsbG8="}`},
		"decode base64": {
			cc.DecodeBase64(), `{"text":"aGVsbG8"}`,
			http.StatusOK, `{"result":"hello","isUTF8":true,"hex":"68656c6c6f"}`,
		},
		"decode invalid base64": {
			cc.DecodeBase64(), `{"text":"**"}`,
			http.StatusBadRequest, "",
		},
		"encode base58": {cc.EncodeBase58(), `{"text":"Hello World"}`, http.StatusOK, `{"result":"JxF12TrwUP45BMd"}`},
		"convert base": {
			cc.ConvertBase(), `{"value":"ff","from":16,"to":2}`,
			http.StatusOK,
			`{"result":"11111111","binary":"11111111","octal":"377","decimal":"255","hexadecimal":"ff"}`,
		},
		"convert invalid base": {cc.ConvertBase(), `{"value":"1","from":10,"to":37}`, http.StatusBadRequest, ""},
		"escape": {cc.Escape(), `{"text":"<b>","mode":"html"}`, http.StatusOK, `{"result":"&lt;b&gt;"}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := postJSON(t, tt.handler, tt.body)

			assert.Equal(t, tt.code, rec.Code)
			if tt.resp != "" {
				assert.JSONEq(t, tt.resp, rec.Body.String())
			}
		})
	}

	t.Run("hexdump", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, cc.Hexdump(), `{"text":"abc","bytesPerRow":2}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"offset":"00000002"`)
		assert.Contains(t, rec.Body.String(), `"bytes":3`)
	})
}

func TestCodecController_EncodeDataURI(t *testing.T) {
	t.Parallel()

	t.Run("upload file", func(t *testing.T) {
		t.Parallel()

		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		part, _ := form.CreateFormFile("file", "hello.txt")
		_, _ = part.Write([]byte("hello"))
		_ = form.Close()

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
		rec := httptest.NewRecorder()

		c := echo.New().NewContext(req, rec)

		if assert.NoError(t, newTestController().EncodeDataURI()(c)) {
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{
				"dataURI": "data:text/plain; charset=utf-8;base64,aGVsbG8=",
				"mime": "text/plain; charset=utf-8",
				"size": 5
			}`, rec.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := newTestController().EncodeDataURI()(c)
		assert.Error(t, err)

		var he *echo.HTTPError
		if assert.ErrorAs(t, err, &he) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
		}
	})

	t.Run("use case fails", func(t *testing.T) {
		t.Parallel()

		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		part, _ := form.CreateFormFile("file", "a.bin")
		_, _ = part.Write([]byte{0x00})
		_ = form.Close()

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
		c := echo.New().NewContext(req, httptest.NewRecorder())

		cc := web.NewCodecController(application.CodecApplication{
			EncodeDataURI: app.TestFailureRequestHandler[application.EncodeDataURIRequest, application.EncodeDataURIResponse](),
		})

		err := cc.EncodeDataURI()(c)
		assert.ErrorContains(t, err, app.ErrUseCaseFailed.Error())
	})
}
