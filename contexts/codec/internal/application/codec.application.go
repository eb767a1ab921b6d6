// Package application contains the use cases of the codec tools.
package application

import "github.com/iseif/devbelt/app"

type CodecApplication struct {
	EncodeBase64  app.Request[EncodeBase64Request, EncodeBase64Response]
	DecodeBase64  app.Request[DecodeBase64Request, DecodeBase64Response]
	EncodeDataURI app.Request[EncodeDataURIRequest, EncodeDataURIResponse]
	EncodeBase58  app.Request[EncodeBase58Request, EncodeBase58Response]
	DecodeBase58  app.Request[DecodeBase58Request, DecodeBase58Response]
	ConvertBase   app.Request[ConvertBaseRequest, ConvertBaseResponse]
	Hexdump       app.Request[HexdumpRequest, HexdumpResponse]
	Escape        app.Request[EscapeRequest, EscapeResponse]
}
