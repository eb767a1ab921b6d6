package domain

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCost     = errors.New("invalid cost")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrInvalidBcrypt   = errors.New("invalid bcrypt hash")
)

// HashPassword returns the bcrypt hash of password. A cost of 0 uses bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("%w: must be between %d and %d", ErrInvalidCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}

		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports if password matches the bcrypt hash.
// A mismatch is not an error, a hash that can not be parsed is.
func ComparePassword(password string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %v", ErrInvalidBcrypt, err) //nolint:errorlint // prevent err in api
}

// Cost returns the cost a bcrypt hash was created with.
func Cost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBcrypt, err) //nolint:errorlint // prevent err in api
	}

	return cost, nil
}
