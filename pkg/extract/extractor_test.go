package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFileExtractorSplitsOnFormFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	content := "First page has real content here.\n12\n\fSecond page also has content."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pages, err := NewTextFileExtractor().ExtractPages(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, pages, 2)
	// Bare page numbers are stripped by the cleaning pass.
	assert.Equal(t, "First page has real content here.", pages[0])
	assert.Equal(t, "Second page also has content.", pages[1])
}

func TestTextFileExtractorMissingFile(t *testing.T) {
	_, err := NewTextFileExtractor().ExtractPages(context.Background(), "/nonexistent/file.txt")
	assert.Error(t, err)
}

func TestTextFileExtractorSinglePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Only one page of notes."), 0o644))

	pages, err := NewTextFileExtractor().ExtractPages(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Only one page of notes."}, pages)
}
