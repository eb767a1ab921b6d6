package domain_test

import (
	"crypto/rand"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/crypto/internal/domain"
)

var uuidRE = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestGenerateUUIDs(t *testing.T) {
	t.Parallel()

	t.Run("versions", func(t *testing.T) {
		t.Parallel()

		for _, version := range []string{"", "1", "4", "6", "7"} {
			ids, err := domain.GenerateUUIDs(3, domain.UUIDOptions{Version: version})
			assert.NoError(t, err)
			assert.Len(t, ids, 3)

			for _, id := range ids {
				assert.Regexp(t, uuidRE, id)

				info, err := domain.InspectUUID(id)
				assert.NoError(t, err)

				expected := 4
				if version != "" {
					expected = int(version[0] - '0')
				}

				assert.Equal(t, expected, info.Version)
			}

			assert.Len(t, slices.Compact(slices.Clone(ids)), 3, "ids should be unique")
		}
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "nil"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"00000000-0000-0000-0000-000000000000"}, ids)
	})

	t.Run("name based", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateUUIDs(2, domain.UUIDOptions{Version: "5", Namespace: "dns", Name: "example.com"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"cfbff0d1-9375-5685-968c-48ce8b15ae17", "cfbff0d1-9375-5685-968c-48ce8b15ae17"}, ids)

		ids, err = domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "3", Namespace: "dns", Name: "example.com"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"9073926b-929f-31c2-abc9-fad77ae3e8eb"}, ids)
	})

	t.Run("custom namespace", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateUUIDs(1, domain.UUIDOptions{
			Version:   "5",
			Namespace: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", // same as dns
			Name:      "example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"cfbff0d1-9375-5685-968c-48ce8b15ae17"}, ids)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateUUIDs(1, domain.UUIDOptions{
			Version:   "5",
			Namespace: "url",
			Name:      "https://example.com",
			Uppercase: true,
			NoHyphens: true,
		})
		assert.NoError(t, err)
		assert.Regexp(t, `^[0-9A-F]{32}$`, ids[0])
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "2"})
		assert.ErrorIs(t, err, domain.ErrUnknownVersion)

		_, err = domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "5", Name: "x"})
		assert.ErrorIs(t, err, domain.ErrMissingName)

		_, err = domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "3", Namespace: "isbn", Name: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidNamespace)
	})
}

func TestInspectUUID(t *testing.T) {
	t.Parallel()

	t.Run("v1 time", func(t *testing.T) {
		t.Parallel()

		// generated 1998-02-04 22:13:53.151182 UTC
		info, err := domain.InspectUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		assert.NoError(t, err)
		assert.Equal(t, 1, info.Version)
		assert.Equal(t, "RFC4122", info.Variant)
		assert.NotNil(t, info.Time)
		assert.Equal(t, 1998, info.Time.Year())
	})

	t.Run("v7 time", func(t *testing.T) {
		t.Parallel()

		before := time.Now().Add(-time.Second)

		ids, _ := domain.GenerateUUIDs(1, domain.UUIDOptions{Version: "7"})
		info, err := domain.InspectUUID(ids[0])
		assert.NoError(t, err)
		assert.True(t, info.Time.After(before))
	})

	t.Run("v4 has no time", func(t *testing.T) {
		t.Parallel()

		info, err := domain.InspectUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479")
		assert.NoError(t, err)
		assert.Equal(t, 4, info.Version)
		assert.Nil(t, info.Time)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := domain.InspectUUID("f47ac10b")
		assert.ErrorIs(t, err, domain.ErrInvalidUUID)
	})
}

func TestULID(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("monotonic", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateULIDs(100, now, rand.Reader, false)
		assert.NoError(t, err)
		assert.Len(t, ids, 100)
		assert.True(t, slices.IsSorted(ids), "ulids of one batch should sort in generation order")
		assert.Len(t, slices.Compact(slices.Clone(ids)), 100)
	})

	t.Run("inspect", func(t *testing.T) {
		t.Parallel()

		ids, err := domain.GenerateULIDs(1, now, rand.Reader, true)
		assert.NoError(t, err)
		assert.Regexp(t, `^[0-9a-z]{26}$`, ids[0])

		ts, err := domain.InspectULID(ids[0])
		assert.NoError(t, err)
		assert.Equal(t, now, ts)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := domain.InspectULID("not-a-ulid")
		assert.ErrorIs(t, err, domain.ErrInvalidULID)
	})
}
