package application

import (
	"context"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/crypto/internal/domain"
	"github.com/iseif/devbelt/secret"
)

type (
	HashRequest struct {
		Text string `json:"text"`
		// Algorithm is optional, if empty the digests of all algorithms are returned.
		Algorithm string `json:"algorithm"`
		Encoding  string `json:"encoding"  validate:"omitempty,oneof=hex HEX base64"`
	}
	HashResponse struct {
		Digests []Digest `json:"digests"`
	}
	Digest struct {
		Algorithm string `json:"algorithm"`
		Digest    string `json:"digest"`
	}
)

func NewHashRequestHandler() app.Request[HashRequest, HashResponse] {
	return app.RequestFunc[HashRequest, HashResponse](
		func(_ context.Context, req HashRequest) (HashResponse, error) {
			algs := domain.Algorithms()
			if req.Algorithm != "" {
				algs = []domain.Algorithm{domain.Algorithm(req.Algorithm)}
			}

			res := HashResponse{Digests: make([]Digest, 0, len(algs))}

			for _, alg := range algs {
				sum, err := domain.Sum([]byte(req.Text), alg)
				if err != nil {
					return HashResponse{}, err //nolint:wrapcheck // domain errors are the api
				}

				enc, err := domain.Encode(sum, domain.Encoding(req.Encoding))
				if err != nil {
					return HashResponse{}, err //nolint:wrapcheck // domain errors are the api
				}

				res.Digests = append(res.Digests, Digest{Algorithm: string(alg), Digest: enc})
			}

			return res, nil
		},
	)
}

type (
	HMACRequest struct {
		Text      string        `json:"text"`
		Key       secret.Secret `json:"key"       validate:"required"`
		Algorithm string        `json:"algorithm" validate:"required"`
		Encoding  string        `json:"encoding"  validate:"omitempty,oneof=hex HEX base64"`
	}
	HMACResponse struct {
		Digest string `json:"digest"`
	}
)

func NewHMACRequestHandler() app.Request[HMACRequest, HMACResponse] {
	return app.RequestFunc[HMACRequest, HMACResponse](
		func(_ context.Context, req HMACRequest) (HMACResponse, error) {
			mac, err := domain.HMAC([]byte(req.Text), []byte(req.Key.Secret()), domain.Algorithm(req.Algorithm))
			if err != nil {
				return HMACResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			enc, err := domain.Encode(mac, domain.Encoding(req.Encoding))
			if err != nil {
				return HMACResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return HMACResponse{Digest: enc}, nil
		},
	)
}
