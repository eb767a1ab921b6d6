package application

import (
	"context"
	"time"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/crypto/internal/domain"
	"github.com/iseif/devbelt/secret"
)

func NewDecodeJWTRequestHandler(now func() time.Time) app.Request[DecodeJWTRequest, DecodeJWTResponse] {
	return &decodeJWTRequestHandler{now: now}
}

type decodeJWTRequestHandler struct {
	now func() time.Time
}

type (
	DecodeJWTRequest struct {
		Token string `json:"token" validate:"required"`
		// Secret is optional and only used to verify HMAC signed tokens.
		Secret secret.Secret `json:"secret"`
	}
	DecodeJWTResponse struct {
		Header    map[string]any `json:"header"`
		Claims    map[string]any `json:"claims"`
		Signature string         `json:"signature"`
		IssuedAt  *time.Time     `json:"issuedAt,omitempty"`
		NotBefore *time.Time     `json:"notBefore,omitempty"`
		ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
		Expired   bool           `json:"expired"`
		Verified  *bool          `json:"verified,omitempty"`
	}
)

func (h *decodeJWTRequestHandler) H(_ context.Context, req DecodeJWTRequest) (DecodeJWTResponse, error) {
	jwt, err := domain.DecodeJWT(req.Token, req.Secret.Secret(), h.now())
	if err != nil {
		return DecodeJWTResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	return DecodeJWTResponse{
		Header:    jwt.Header,
		Claims:    jwt.Claims,
		Signature: jwt.Signature,
		IssuedAt:  jwt.IssuedAt,
		NotBefore: jwt.NotBefore,
		ExpiresAt: jwt.ExpiresAt,
		Expired:   jwt.Expired,
		Verified:  jwt.Verified,
	}, nil
}
