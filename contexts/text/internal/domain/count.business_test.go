package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/contexts/text/internal/domain"
)

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, domain.Stats{}, domain.Count(""))
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		text := "Hello world. How are you?\n\nI'm fine!"
		stats := domain.Count(text)

		assert.Equal(t, len(text), stats.Bytes)
		assert.Equal(t, len(text), stats.Runes)
		assert.Equal(t, len(text), stats.Characters)
		assert.Equal(t, 7, stats.Words)
		assert.Equal(t, 3, stats.Lines)
		assert.Equal(t, 3, stats.Sentences)
		assert.Equal(t, 2, stats.Paragraphs)
		assert.Equal(t, 7, stats.Spaces)
	})

	t.Run("grapheme clusters", func(t *testing.T) {
		t.Parallel()

		stats := domain.Count("🇩🇪é")

		assert.Equal(t, 2, stats.Characters)
		assert.Equal(t, 3, stats.Runes)
		assert.Equal(t, 10, stats.Bytes)
	})

	t.Run("reading time", func(t *testing.T) {
		t.Parallel()

		words := ""
		for range 400 {
			words += "word "
		}

		stats := domain.Count(words)

		assert.Equal(t, 400, stats.Words)
		assert.Equal(t, 2*time.Minute, stats.ReadingTime)
		assert.Equal(t, 3*time.Minute+5*time.Second, stats.SpeakingTime)
	})
}
