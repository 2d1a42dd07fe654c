package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"intelliject-be/pkg/textproc"
)

// PageExtractor returns one searchable text string per page of a
// document, in page order. Rendering and format handling live behind this
// interface; the core only consumes its output.
type PageExtractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// TextFileExtractor treats a plain-text file as a document whose pages
// are separated by form feeds (the pdftotext convention). Useful for
// development and tests; PDF-backed extractors satisfy the same
// interface.
type TextFileExtractor struct{}

func NewTextFileExtractor() *TextFileExtractor {
	return &TextFileExtractor{}
}

func (e *TextFileExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	raw := strings.Split(string(data), "\f")
	pages := make([]string, len(raw))
	for i, page := range raw {
		pages[i] = textproc.CleanExtractedText(page)
	}
	return pages, nil
}
