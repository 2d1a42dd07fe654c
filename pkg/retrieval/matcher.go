package retrieval

import (
	"context"
	"strings"

	"intelliject-be/internal/constant"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/internal/repository/specification"
	"intelliject-be/internal/repository/unitofwork"
	"intelliject-be/pkg/embedding"
	"intelliject-be/pkg/llm"
	"intelliject-be/pkg/textproc"
)

// FallbackSubtopic is returned whenever subtopic inference cannot run.
const FallbackSubtopic = "General"

// Matcher is the semantic search front end over the question corpus. It
// rebuilds the index from the repository on every search: correctness
// depends on the index reflecting the current corpus, never on a cache.
type Matcher struct {
	uowFactory unitofwork.RepositoryFactory
	embedder   embedding.EmbeddingProvider
	generator  llm.LLMProvider
	log        logger.ILogger
}

func NewMatcher(
	uowFactory unitofwork.RepositoryFactory,
	embedder embedding.EmbeddingProvider,
	generator llm.LLMProvider,
	log logger.ILogger,
) *Matcher {
	return &Matcher{
		uowFactory: uowFactory,
		embedder:   embedder,
		generator:  generator,
		log:        log,
	}
}

// buildIndex loads the subject's questions (all subjects when subject is
// empty) and embeds them. Nil on empty corpus, backend unavailability or
// embedding failure; never an error to the caller.
func (m *Matcher) buildIndex(ctx context.Context, subject string) *Index {
	uow, err := m.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		m.log.Warn("retrieval", "index build skipped, backend unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var specs []specification.Specification
	if subject != "" {
		specs = append(specs, specification.BySubject{Subject: subject})
	}
	questions, err := uow.PYQRepository().FindAll(ctx, specs...)
	if err != nil {
		m.log.Error("retrieval", "failed to load questions for index", map[string]interface{}{"subject": subject, "error": err.Error()})
		return nil
	}

	index, err := BuildIndex(questions, m.embedder)
	if err != nil {
		m.log.Error("retrieval", "failed to build index", map[string]interface{}{"subject": subject, "error": err.Error()})
		return nil
	}
	return index
}

// Search returns the k nearest questions for the given free text, scoped
// to subject when non-empty. An empty result means "nothing found";
// collaborator failures degrade to it and are never raised.
func (m *Matcher) Search(ctx context.Context, text, subject string, k int) []Match {
	index := m.buildIndex(ctx, subject)
	if index.Len() == 0 {
		return nil
	}

	res, err := m.embedder.Generate(text, taskTypeQuery)
	if err != nil {
		m.log.Error("retrieval", "failed to embed query", map[string]interface{}{"error": err.Error()})
		return nil
	}

	return index.Search(res.Embedding.Values, k)
}

// InferSubtopic asks the generation collaborator for a 2-3 word topic
// label. Any failure returns FallbackSubtopic; there is no retry.
func (m *Matcher) InferSubtopic(ctx context.Context, text string) string {
	prompt := constant.SubtopicPrompt(text)

	response, err := m.generator.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		m.log.Warn("retrieval", "subtopic inference failed", map[string]interface{}{"error": err.Error()})
		return FallbackSubtopic
	}

	label := strings.TrimSpace(response)
	if label == "" {
		return FallbackSubtopic
	}
	return label
}

// ChunkResult pairs one chunk of notes text with its inferred subtopic
// and matched questions.
type ChunkResult struct {
	Chunk    string
	Subtopic string
	Matches  []Match
}

// ProcessNotes chunks notes text by sentence count, then labels and
// matches each chunk against the subject corpus.
func (m *Matcher) ProcessNotes(ctx context.Context, text, subject string, k int) []ChunkResult {
	chunks := textproc.ChunkBySentenceCount(text, 5)

	results := make([]ChunkResult, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		results = append(results, ChunkResult{
			Chunk:    chunk,
			Subtopic: m.InferSubtopic(ctx, chunk),
			Matches:  m.Search(ctx, chunk, subject, k),
		})
	}
	return results
}
