package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/crypto/internal/domain"
)

type (
	BcryptHashRequest struct {
		Password string `json:"password" validate:"required"`
		Cost     int    `json:"cost"     validate:"omitempty,gte=4,lte=31"`
	}
	BcryptHashResponse struct {
		Hash string `json:"hash"`
		Cost int    `json:"cost"`
	}
)

func NewBcryptHashRequestHandler() app.Request[BcryptHashRequest, BcryptHashResponse] {
	return app.RequestFunc[BcryptHashRequest, BcryptHashResponse](
		func(_ context.Context, req BcryptHashRequest) (BcryptHashResponse, error) {
			hash, err := domain.HashPassword(req.Password, req.Cost)
			if err != nil {
				return BcryptHashResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			cost, err := domain.Cost(hash)
			if err != nil {
				return BcryptHashResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return BcryptHashResponse{Hash: hash, Cost: cost}, nil
		},
	)
}

type (
	BcryptCompareRequest struct {
		Password string `json:"password"`
		Hash     string `json:"hash"     validate:"required"`
	}
	BcryptCompareResponse struct {
		Match bool `json:"match"`
	}
)

func NewBcryptCompareRequestHandler() app.Request[BcryptCompareRequest, BcryptCompareResponse] {
	return app.RequestFunc[BcryptCompareRequest, BcryptCompareResponse](
		func(_ context.Context, req BcryptCompareRequest) (BcryptCompareResponse, error) {
			match, err := domain.ComparePassword(req.Password, req.Hash)
			if err != nil {
				return BcryptCompareResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return BcryptCompareResponse{Match: match}, nil
		},
	)
}
