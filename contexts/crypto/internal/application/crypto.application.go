// Package application contains the use cases of the crypto tools.
package application

import (
	"errors"

	"github.com/iseif/devbelt/app"
)

var ErrBatchTooLarge = errors.New("batch too large")

type CryptoApplication struct {
	Hash          app.Request[HashRequest, HashResponse]
	HMAC          app.Request[HMACRequest, HMACResponse]
	BcryptHash    app.Request[BcryptHashRequest, BcryptHashResponse]
	BcryptCompare app.Request[BcryptCompareRequest, BcryptCompareResponse]
	GenerateUUID  app.Request[GenerateUUIDRequest, GenerateUUIDResponse]
	InspectUUID   app.Request[InspectUUIDRequest, InspectUUIDResponse]
	GenerateULID  app.Request[GenerateULIDRequest, GenerateULIDResponse]
	InspectULID   app.Request[InspectULIDRequest, InspectULIDResponse]
	DecodeJWT     app.Request[DecodeJWTRequest, DecodeJWTResponse]
}
