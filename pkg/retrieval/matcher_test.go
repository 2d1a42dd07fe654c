package retrieval

import (
	"context"
	"errors"
	"testing"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/repository/contract"
	"intelliject-be/internal/repository/specification"
	"intelliject-be/internal/repository/unitofwork"
	"intelliject-be/pkg/database"
	"intelliject-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

type fakePYQRepo struct {
	questions []*entity.PYQ
	findErr   error
	seenSpecs []specification.Specification
}

func (r *fakePYQRepo) Create(ctx context.Context, pyq *entity.PYQ) error { return nil }

func (r *fakePYQRepo) CreateBulk(ctx context.Context, pyqs []*entity.PYQ) error { return nil }
func (r *fakePYQRepo) DeleteBySubject(ctx context.Context, subject string) error {
	return nil
}

func (r *fakePYQRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PYQ, error) {
	r.seenSpecs = specs
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.questions, nil
}

func (r *fakePYQRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.questions)), nil
}

func (r *fakePYQRepo) DistinctSubjects(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeUow struct {
	pyq *fakePYQRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) PYQRepository() contract.PYQRepository { return u.pyq }

func (u *fakeUow) UploadHistoryRepository() contract.UploadHistoryRepository { return nil }

type fakeFactory struct {
	uow *fakeUow
	err error
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) (unitofwork.UnitOfWork, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.uow, nil
}

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func newTestMatcher(repo *fakePYQRepo, emb *fakeEmbedder, gen *fakeLLM) *Matcher {
	return NewMatcher(&fakeFactory{uow: &fakeUow{pyq: repo}}, emb, gen, nopLogger{})
}

func TestSearchReturnsRankedMatches(t *testing.T) {
	repo := &fakePYQRepo{questions: questionSet()}
	emb := orthogonalEmbedder()
	emb.vectors["packet filtering basics"] = []float32{0.9, 0.1, 0}

	m := newTestMatcher(repo, emb, &fakeLLM{})
	matches := m.Search(context.Background(), "packet filtering basics", "CS", 2)

	require.Len(t, matches, 2)
	assert.Equal(t, uint(1), matches[0].Question.Id)
}

func TestSearchScopesBySubject(t *testing.T) {
	repo := &fakePYQRepo{questions: questionSet()}
	m := newTestMatcher(repo, orthogonalEmbedder(), &fakeLLM{})

	m.Search(context.Background(), "anything", "CS", 3)

	require.Len(t, repo.seenSpecs, 1)
	assert.Equal(t, specification.BySubject{Subject: "CS"}, repo.seenSpecs[0])
}

func TestSearchUnscopedWhenSubjectEmpty(t *testing.T) {
	repo := &fakePYQRepo{questions: questionSet()}
	m := newTestMatcher(repo, orthogonalEmbedder(), &fakeLLM{})

	m.Search(context.Background(), "anything", "", 3)

	assert.Empty(t, repo.seenSpecs)
}

func TestSearchBackendUnavailable(t *testing.T) {
	m := NewMatcher(
		&fakeFactory{err: database.ErrBackendUnavailable},
		orthogonalEmbedder(),
		&fakeLLM{},
		nopLogger{},
	)

	matches := m.Search(context.Background(), "anything", "CS", 3)
	assert.Nil(t, matches)
}

func TestSearchEmptyCorpus(t *testing.T) {
	m := newTestMatcher(&fakePYQRepo{}, orthogonalEmbedder(), &fakeLLM{})

	matches := m.Search(context.Background(), "anything", "CS", 3)
	assert.Nil(t, matches)
}

func TestSearchQueryEmbeddingFailure(t *testing.T) {
	repo := &fakePYQRepo{questions: questionSet()}
	emb := orthogonalEmbedder()
	emb.fail["broken query"] = true

	m := newTestMatcher(repo, emb, &fakeLLM{})
	matches := m.Search(context.Background(), "broken query", "CS", 3)

	assert.Nil(t, matches)
}

func TestSearchRepositoryFailure(t *testing.T) {
	repo := &fakePYQRepo{findErr: errors.New("connection reset")}
	m := newTestMatcher(repo, orthogonalEmbedder(), &fakeLLM{})

	matches := m.Search(context.Background(), "anything", "CS", 3)
	assert.Nil(t, matches)
}

func TestInferSubtopic(t *testing.T) {
	m := newTestMatcher(&fakePYQRepo{}, orthogonalEmbedder(), &fakeLLM{response: "  Network Security \n"})

	assert.Equal(t, "Network Security", m.InferSubtopic(context.Background(), "firewall notes"))
}

func TestInferSubtopicFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeLLM
	}{
		{"provider error", &fakeLLM{err: errors.New("model offline")}},
		{"blank response", &fakeLLM{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatcher(&fakePYQRepo{}, orthogonalEmbedder(), tt.gen)
			assert.Equal(t, FallbackSubtopic, m.InferSubtopic(context.Background(), "some notes"))
		})
	}
}

func TestProcessNotes(t *testing.T) {
	repo := &fakePYQRepo{questions: questionSet()}
	emb := orthogonalEmbedder()
	m := newTestMatcher(repo, emb, &fakeLLM{response: "Networking"})

	text := "One sentence here. Two sentences here. Three now. Four done. Five ends. Six begins the next chunk."
	results := m.ProcessNotes(context.Background(), text, "CS", 2)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "Networking", r.Subtopic)
		assert.NotEmpty(t, r.Chunk)
	}
}

func TestProcessNotesEmptyText(t *testing.T) {
	m := newTestMatcher(&fakePYQRepo{}, orthogonalEmbedder(), &fakeLLM{})

	assert.Empty(t, m.ProcessNotes(context.Background(), "   ", "CS", 3))
}
