package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/rivo/uniseg"
)

const (
	ReadingWordsPerMinute  = 200
	SpeakingWordsPerMinute = 130
)

// Stats describe a text.
// Characters are user-perceived characters (grapheme clusters), so "🇩🇪" is one character of two runes.
type Stats struct {
	Characters   int
	Runes        int
	Bytes        int
	Words        int
	Lines        int
	Sentences    int
	Paragraphs   int
	Spaces       int
	ReadingTime  time.Duration
	SpeakingTime time.Duration
}

func Count(text string) Stats {
	stats := Stats{
		Characters: uniseg.GraphemeClusterCount(text),
		Runes:      len([]rune(text)),
		Bytes:      len(text),
		Words:      countWords(text),
		Sentences:  countSentences(text),
		Paragraphs: countParagraphs(text),
	}

	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			stats.Spaces++
		}
	}

	stats.ReadingTime = duration(stats.Words, ReadingWordsPerMinute)
	stats.SpeakingTime = duration(stats.Words, SpeakingWordsPerMinute)

	return stats
}

func countWords(text string) int {
	var (
		word  string
		words int
		state = -1
	)

	for text != "" {
		word, text, state = uniseg.FirstWordInString(text, state)
		if hasAlphanumeric(word) {
			words++
		}
	}

	return words
}

func countSentences(text string) int {
	var (
		sentence  string
		sentences int
		state     = -1
	)

	for text != "" {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		if hasAlphanumeric(sentence) {
			sentences++
		}
	}

	return sentences
}

// countParagraphs counts the blocks of text separated by at least one blank line.
func countParagraphs(text string) int {
	paragraphs := 0
	inParagraph := false

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			inParagraph = false

			continue
		}

		if !inParagraph {
			paragraphs++
		}

		inParagraph = true
	}

	return paragraphs
}

func hasAlphanumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

func duration(words int, perMinute int) time.Duration {
	d := time.Duration(float64(words) / float64(perMinute) * float64(time.Minute))

	return d.Round(time.Second)
}
