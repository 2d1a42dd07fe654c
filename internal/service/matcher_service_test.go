package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"intelliject-be/internal/entity"
	"intelliject-be/pkg/embedding"
	"intelliject-be/pkg/llm"
	"intelliject-be/pkg/locator"
	"intelliject-be/pkg/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder maps every text to the same unit vector, so every corpus
// question matches every query with score 1.
type fakeEmbedder struct{}

func (fakeEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0, 0}},
	}, nil
}

type fakeLLM struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeExtractor struct {
	pages []string
	err   error
}

func (f *fakeExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	return f.pages, f.err
}

type matcherFixture struct {
	service   IMatcherService
	questions *serviceFixture
	generator *fakeLLM
	extractor *fakeExtractor
}

func newMatcherFixture(t *testing.T, corpus []*entity.PYQ, generator *fakeLLM, extractor *fakeExtractor) *matcherFixture {
	t.Helper()
	qf := newFixture(t)
	qf.uow.pyq.questions = corpus

	matcher := retrieval.NewMatcher(qf.factory, fakeEmbedder{}, generator, nopLogger{})
	svc := NewMatcherService(matcher, generator, extractor, qf.service, nil, nopLogger{})
	return &matcherFixture{service: svc, questions: qf, generator: generator, extractor: extractor}
}

func TestProcessDocumentUnreadable(t *testing.T) {
	f := newMatcherFixture(t, nil, &fakeLLM{}, &fakeExtractor{err: errors.New("not a document")})

	_, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	assert.Error(t, err)
	// A failed run leaves no history entry.
	assert.Empty(t, f.questions.uow.upload.created)
}

func TestProcessDocumentMatchesAndLocates(t *testing.T) {
	corpus := []*entity.PYQ{
		{Id: 1, Subject: "Physics", Question: "State Newton's second law."},
	}
	generator := &fakeLLM{response: `"Force equals mass times acceleration."`}
	extractor := &fakeExtractor{pages: []string{
		"Force equals mass times acceleration. That is the second law.",
		"   ", // blank pages are skipped
	}}

	f := newMatcherFixture(t, corpus, generator, extractor)
	results, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Page)

	require.Len(t, results[0].Matches, 1)
	match := results[0].Matches[0]
	assert.Equal(t, uint(1), match.Question.Question.Id)
	// The surrounding quotes from the model response are stripped.
	assert.Equal(t, "Force equals mass times acceleration.", match.Answer)
	require.NotEmpty(t, match.Regions)
	assert.Equal(t, locator.SourceExact, match.Regions[0].Source)

	// The run is recorded in upload history.
	require.Len(t, f.questions.uow.upload.created, 1)
	assert.Equal(t, "notes.pdf", f.questions.uow.upload.created[0].Filename)
}

func TestProcessDocumentAnswerNotFound(t *testing.T) {
	corpus := []*entity.PYQ{
		{Id: 1, Subject: "Physics", Question: "State Newton's second law."},
	}
	generator := &fakeLLM{response: "Answer not found"}
	extractor := &fakeExtractor{pages: []string{"Completely unrelated content on thermodynamics."}}

	f := newMatcherFixture(t, corpus, generator, extractor)
	results, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Matches, 1)

	match := results[0].Matches[0]
	assert.Equal(t, locator.NotFoundSentinel, match.Answer)
	assert.Empty(t, match.Regions)
}

func TestProcessDocumentMemoizesAnswersPerRun(t *testing.T) {
	corpus := []*entity.PYQ{
		{Id: 1, Subject: "Physics", Question: "State Newton's second law."},
	}
	generator := &fakeLLM{response: "Answer not found"}
	// Two identical pages share the same cache key, so the second page
	// reuses the first page's extraction.
	page := "Force equals mass times acceleration and nothing else matters here."
	extractor := &fakeExtractor{pages: []string{page, page}}

	f := newMatcherFixture(t, corpus, generator, extractor)
	_, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	require.NoError(t, err)
	assert.Equal(t, 1, generator.calls)
}

func TestProcessDocumentMultibytePageKeepsPromptValid(t *testing.T) {
	corpus := []*entity.PYQ{
		{Id: 1, Subject: "Physics", Question: "State Newton's second law."},
	}
	generator := &fakeLLM{response: "Answer not found"}
	// Long enough to be truncated for the extraction prompt, made of
	// two-byte runes so a byte-indexed cut would split one in half.
	page := strings.Repeat("é", 2100) + " plus a trailing clause about forces."
	extractor := &fakeExtractor{pages: []string{page}}

	f := newMatcherFixture(t, corpus, generator, extractor)
	_, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	require.NoError(t, err)
	require.NotEmpty(t, generator.prompts)
	for _, prompt := range generator.prompts {
		assert.True(t, utf8.ValidString(prompt))
	}
}

func TestProcessDocumentGenerationFailureDegrades(t *testing.T) {
	corpus := []*entity.PYQ{
		{Id: 1, Subject: "Physics", Question: "State Newton's second law."},
	}
	generator := &fakeLLM{err: errors.New("model offline")}
	extractor := &fakeExtractor{pages: []string{"Some page content worth matching."}}

	f := newMatcherFixture(t, corpus, generator, extractor)
	results, err := f.service.ProcessDocument(context.Background(), "/tmp/x", "notes.pdf", "Physics")

	// A dead generation model shrinks the result; it never fails the run.
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Matches, 1)
	assert.Equal(t, locator.NotFoundSentinel, results[0].Matches[0].Answer)
}

func TestRunePrefix(t *testing.T) {
	assert.Equal(t, "ééé", runePrefix("ééééé", 3))
	assert.Equal(t, "ab", runePrefix("ab", 5))
	assert.Equal(t, "", runePrefix("abc", 0))
	assert.True(t, utf8.ValidString(cacheKey(strings.Repeat("Ⱥ", 200), strings.Repeat("é", 80))))
}

func TestMatchPageEmptyCorpus(t *testing.T) {
	f := newMatcherFixture(t, nil, &fakeLLM{}, &fakeExtractor{})

	matches := f.service.MatchPage(context.Background(), "Any page text at all.", "Physics", 0)

	assert.Empty(t, matches)
}
