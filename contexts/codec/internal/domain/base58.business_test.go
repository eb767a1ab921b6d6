package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

func TestBase58(t *testing.T) {
	t.Parallel()

	t.Run("encode", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "JxF12TrwUP45BMd", domain.EncodeBase58("Hello World"))
		assert.Equal(t, "", domain.EncodeBase58(""))
	})

	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		data, err := domain.DecodeBase58("JxF12TrwUP45BMd")
		assert.NoError(t, err)
		assert.Equal(t, "Hello World", string(data))

		data, err = domain.DecodeBase58("  ")
		assert.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := domain.DecodeBase58("0OIl")
		assert.ErrorIs(t, err, domain.ErrInvalidBase58)
	})
}
