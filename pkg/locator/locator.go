package locator

import (
	"strings"
	"unicode"

	"intelliject-be/pkg/textproc"
)

// Source tags how a region was found. N-gram hits are lower-confidence
// than exact or sentence hits and are rendered differently.
type Source string

const (
	SourceExact    Source = "exact"
	SourceSentence Source = "sentence"
	SourceNgram    Source = "ngram"
)

// NotFoundSentinel is the literal answer-extraction miss marker. The
// locator short-circuits on it without searching.
const NotFoundSentinel = "(Answer not found)"

const minSentenceLen = 15
const minWordLen = 3
const shortAnswerWords = 3

// Region is one highlightable span, expressed as byte offsets into the
// page's normalized text layer.
type Region struct {
	Start  int
	End    int
	Text   string
	Source Source
}

// Page is one document page's searchable text layer, normalized once so
// repeated queries against the same page are cheap.
type Page struct {
	text  string // whitespace-normalized original
	lower string
	// toOrig maps each byte offset in lower back to the byte offset of
	// the corresponding rune in text. Lowercasing can change a rune's
	// encoded length, so indexes found in lower cannot slice text
	// directly. One extra trailing entry maps match ends.
	toOrig []int
}

func NewPage(pageText string) *Page {
	normalized := textproc.NormalizeWhitespace(pageText)

	var lower strings.Builder
	lower.Grow(len(normalized))
	toOrig := make([]int, 0, len(normalized)+1)
	for i, r := range normalized {
		before := lower.Len()
		lower.WriteRune(unicode.ToLower(r))
		for ; before < lower.Len(); before++ {
			toOrig = append(toOrig, i)
		}
	}
	toOrig = append(toOrig, len(normalized))

	return &Page{
		text:   normalized,
		lower:  lower.String(),
		toOrig: toOrig,
	}
}

// Text returns the normalized text layer the region offsets refer to.
func (p *Page) Text() string {
	return p.text
}

// search finds every non-overlapping, case-insensitive occurrence of
// needle in the page text.
func (p *Page) search(needle string, source Source) []Region {
	needle = strings.ToLower(textproc.NormalizeWhitespace(needle))
	if needle == "" {
		return nil
	}

	var regions []Region
	offset := 0
	for {
		idx := strings.Index(p.lower[offset:], needle)
		if idx < 0 {
			break
		}
		lowerStart := offset + idx
		lowerEnd := lowerStart + len(needle)
		start := p.toOrig[lowerStart]
		end := p.toOrig[lowerEnd]
		regions = append(regions, Region{
			Start:  start,
			End:    end,
			Text:   p.text[start:end],
			Source: source,
		})
		offset = lowerEnd
	}
	return regions
}

// Locate maps an answer string back onto page regions, degrading through
// three strategies of decreasing specificity and stopping at the first
// non-empty result. The answer is not guaranteed to appear verbatim: the
// generation step may have re-punctuated, re-spaced or truncated it.
func Locate(pageText, answer string) []Region {
	return NewPage(pageText).Locate(answer)
}

func (p *Page) Locate(answer string) []Region {
	clean := textproc.NormalizeWhitespace(answer)
	if clean == "" || clean == NotFoundSentinel {
		return nil
	}

	// Pass 1: the whole normalized answer.
	if regions := p.search(clean, SourceExact); len(regions) > 0 {
		return regions
	}

	// Pass 2: sentence by sentence. A page can collect several disjoint
	// regions from this pass.
	var regions []Region
	for _, sentence := range textproc.SplitSentences(clean) {
		if len(sentence) <= minSentenceLen {
			continue
		}
		regions = append(regions, p.search(sentence, SourceSentence)...)
	}
	if len(regions) > 0 {
		return regions
	}

	// Pass 3: sliding word windows. Overlapping hits are acceptable; the
	// union of all windows is returned without deduplication.
	words := strings.Fields(clean)
	if len(words) > shortAnswerWords {
		for i := 0; i+3 <= len(words); i++ {
			regions = append(regions, p.search(strings.Join(words[i:i+3], " "), SourceNgram)...)
			if i+4 <= len(words) {
				regions = append(regions, p.search(strings.Join(words[i:i+4], " "), SourceNgram)...)
			}
		}
		return regions
	}

	// Short answers fall back to individual significant words.
	for _, word := range words {
		if len(word) > minWordLen {
			regions = append(regions, p.search(word, SourceNgram)...)
		}
	}
	return regions
}
