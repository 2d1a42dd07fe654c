package textproc

import (
	"regexp"
	"strings"
)

var (
	sentencePattern   = regexp.MustCompile(`[^.!?]+[.!?]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeWhitespace collapses all whitespace runs to single spaces and
// trims the ends.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// SplitSentences segments text into sentences on terminal punctuation.
// A trailing fragment without a terminator is kept as its own sentence.
// Returns nil when the text contains nothing segmentable.
func SplitSentences(text string) []string {
	normalized := NormalizeWhitespace(text)
	if normalized == "" {
		return nil
	}

	spans := sentencePattern.FindAllStringIndex(normalized, -1)
	if len(spans) == 0 {
		return []string{normalized}
	}

	sentences := make([]string, 0, len(spans)+1)
	for _, span := range spans {
		if s := strings.TrimSpace(normalized[span[0]:span[1]]); s != "" {
			sentences = append(sentences, s)
		}
	}
	if rest := strings.TrimSpace(normalized[spans[len(spans)-1][1]:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
