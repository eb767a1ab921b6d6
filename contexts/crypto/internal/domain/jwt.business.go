package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// DecodedJWT is a token split into its parts.
type DecodedJWT struct {
	Header    map[string]any
	Claims    map[string]any
	Signature string

	IssuedAt  *time.Time
	NotBefore *time.Time
	ExpiresAt *time.Time
	Expired   bool

	// Verified is nil, if the signature was not checked.
	Verified *bool
}

// DecodeJWT decodes token without trusting it.
// If secret is given and the token is signed with HMAC, the signature is verified.
// Times are evaluated against now.
func DecodeJWT(token string, secret string, now time.Time) (DecodedJWT, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))

	parts := strings.Split(token, ".")
	if len(parts) != 3 { //nolint:mnd // header, claims, signature
		return DecodedJWT{}, fmt.Errorf("%w: expected 3 parts separated by dots, got %d", ErrMalformedToken, len(parts))
	}

	claims := jwt.MapClaims{}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return DecodedJWT{}, fmt.Errorf("%w: %v", ErrMalformedToken, err) //nolint:errorlint // prevent err in api
	}

	decoded := DecodedJWT{
		Header:    parsed.Header,
		Claims:    claims,
		Signature: parts[2],
	}

	decoded.IssuedAt = numericDate(claims.GetIssuedAt)
	decoded.NotBefore = numericDate(claims.GetNotBefore)
	decoded.ExpiresAt = numericDate(claims.GetExpirationTime)
	decoded.Expired = decoded.ExpiresAt != nil && !now.Before(*decoded.ExpiresAt)

	alg, _ := parsed.Header["alg"].(string)
	if secret != "" && strings.HasPrefix(alg, "HS") {
		verified := verifyHMAC(token, secret, alg)
		decoded.Verified = &verified
	}

	return decoded, nil
}

func verifyHMAC(token string, secret string, alg string) bool {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{alg}), jwt.WithoutClaimsValidation())

	_, err := parser.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})

	return err == nil
}

func numericDate(get func() (*jwt.NumericDate, error)) *time.Time {
	date, err := get()
	if err != nil || date == nil {
		return nil
	}

	t := date.UTC()

	return &t
}
