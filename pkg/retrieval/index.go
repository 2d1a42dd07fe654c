package retrieval

import (
	"fmt"
	"sort"

	"intelliject-be/internal/entity"
	"intelliject-be/pkg/embedding"
)

const (
	taskTypeDocument = "RETRIEVAL_DOCUMENT"
	taskTypeQuery    = "RETRIEVAL_QUERY"
)

// Match is one retrieved question with its similarity score. The full
// metadata record rides along so callers never need a second lookup.
type Match struct {
	Question entity.PYQ
	Score    float64
}

type indexEntry struct {
	vector   []float32
	question entity.PYQ
}

// Index is an ephemeral, subject-scoped similarity index over a question
// corpus. It is a deterministic function of the question set it was built
// from; there is no incremental update, so rebuild before each use.
type Index struct {
	entries []indexEntry
}

// BuildIndex embeds every question and assembles the in-memory index.
// An empty corpus yields a nil index. One failed embedding fails the
// whole build: a partial index would silently skew ranking.
func BuildIndex(questions []*entity.PYQ, provider embedding.EmbeddingProvider) (*Index, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	entries := make([]indexEntry, 0, len(questions))
	for _, q := range questions {
		res, err := provider.Generate(q.Question, taskTypeDocument)
		if err != nil {
			return nil, fmt.Errorf("embed question %d: %w", q.Id, err)
		}
		entries = append(entries, indexEntry{
			vector:   res.Embedding.Values,
			question: *q,
		})
	}

	return &Index{entries: entries}, nil
}

// Len reports the number of indexed questions.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Search returns the k nearest questions to the query vector by cosine
// similarity (vectors are assumed unit length, so the dot product is the
// similarity).
func (ix *Index) Search(query []float32, k int) []Match {
	if ix == nil || len(ix.entries) == 0 || len(query) == 0 {
		return nil
	}
	if k <= 0 {
		k = 5
	}

	matches := make([]Match, 0, len(ix.entries))
	for _, entry := range ix.entries {
		matches = append(matches, Match{
			Question: entry.question,
			Score:    dot(entry.vector, query),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k]
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
