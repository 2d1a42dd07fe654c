package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intelliject-be/internal/constant"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/pkg/events"
	"intelliject-be/pkg/extract"
	"intelliject-be/pkg/llm"
	"intelliject-be/pkg/locator"
	pktnats "intelliject-be/pkg/nats"
	"intelliject-be/pkg/retrieval"
	"intelliject-be/pkg/textproc"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// pageMatchTopK is how many candidate questions each page is matched
	// against during document processing.
	pageMatchTopK = 3

	// noteContextLimit caps how much page text reaches the extraction
	// prompt. Past years' notes pages run well under this.
	noteContextLimit = 2000

	answerCacheKeyPage     = 100
	answerCacheKeyQuestion = 50
)

// PageMatch is one matched question on one page, with the extracted
// answer quote and the regions where it was found.
type PageMatch struct {
	Question retrieval.Match
	Answer   string
	Regions  []locator.Region
}

// PageMatches groups a page's matches; Page is the zero-based index into
// the extracted document.
type PageMatches struct {
	Page    int
	Matches []PageMatch
}

type IMatcherService interface {
	// ProcessDocument runs the full pipeline over a document on disk:
	// extract pages, match each page against the subject corpus, extract
	// answer quotes and locate them. An unreadable document is the only
	// error; everything downstream degrades per page.
	ProcessDocument(ctx context.Context, path, filename, subject string) ([]PageMatches, error)

	// MatchPage matches one page of already-extracted text against k
	// candidate questions (k <= 0 uses the pipeline default).
	MatchPage(ctx context.Context, pageText, subject string, k int) []PageMatch

	// MatchNotes chunks free text and matches each chunk, without answer
	// extraction. Backs the lightweight matching endpoint.
	MatchNotes(ctx context.Context, text, subject string, k int) []retrieval.ChunkResult
}

type matcherService struct {
	matcher   *retrieval.Matcher
	generator llm.LLMProvider
	extractor extract.PageExtractor
	questions IQuestionService
	events    *pktnats.Publisher
	log       logger.ILogger
}

func NewMatcherService(
	matcher *retrieval.Matcher,
	generator llm.LLMProvider,
	extractor extract.PageExtractor,
	questions IQuestionService,
	eventPublisher *pktnats.Publisher,
	log logger.ILogger,
) IMatcherService {
	return &matcherService{
		matcher:   matcher,
		generator: generator,
		extractor: extractor,
		questions: questions,
		events:    eventPublisher,
		log:       log,
	}
}

func (s *matcherService) ProcessDocument(ctx context.Context, path, filename, subject string) ([]PageMatches, error) {
	pages, err := s.extractor.ExtractPages(ctx, path)
	if err != nil {
		s.log.Error("matcher", "failed to extract document pages", map[string]interface{}{"filename": filename, "error": err.Error()})
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	// Answers are memoized per run only; the next document starts cold.
	answers := gocache.New(gocache.NoExpiration, time.Minute)

	results := make([]PageMatches, 0, len(pages))
	for i, pageText := range pages {
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		results = append(results, PageMatches{
			Page:    i,
			Matches: s.matchPage(ctx, answers, pageText, subject, pageMatchTopK),
		})
	}

	s.questions.RecordUpload(ctx, filename, subject)
	if err := s.events.Publish(ctx, events.NewUploadProcessed(filename, subject, len(pages))); err != nil {
		s.log.Warn("matcher", "failed to publish upload event", map[string]interface{}{"filename": filename, "error": err.Error()})
	}
	return results, nil
}

func (s *matcherService) MatchPage(ctx context.Context, pageText, subject string, k int) []PageMatch {
	answers := gocache.New(gocache.NoExpiration, time.Minute)
	return s.matchPage(ctx, answers, pageText, subject, k)
}

func (s *matcherService) MatchNotes(ctx context.Context, text, subject string, k int) []retrieval.ChunkResult {
	return s.matcher.ProcessNotes(ctx, text, subject, k)
}

func (s *matcherService) matchPage(ctx context.Context, answers *gocache.Cache, pageText, subject string, k int) []PageMatch {
	if k <= 0 {
		k = pageMatchTopK
	}
	page := locator.NewPage(pageText)
	matches := s.matcher.Search(ctx, page.Text(), subject, k)

	out := make([]PageMatch, 0, len(matches))
	for _, match := range matches {
		answer := s.extractAnswer(ctx, answers, page.Text(), match.Question.Question)
		out = append(out, PageMatch{
			Question: match,
			Answer:   answer,
			Regions:  page.Locate(answer),
		})
	}
	return out
}

// extractAnswer asks the generation collaborator to quote the answering
// sentence(s) verbatim. Misses and failures collapse to the locator's
// not-found sentinel, which Locate short-circuits on.
func (s *matcherService) extractAnswer(ctx context.Context, answers *gocache.Cache, pageText, question string) string {
	key := cacheKey(pageText, question)
	if cached, found := answers.Get(key); found {
		return cached.(string)
	}

	// Only the leading chunk reaches the prompt; SplitText keeps the cut
	// on a rune boundary.
	note := textproc.SplitText(pageText, noteContextLimit, 0)[0]

	prompt := constant.AnswerExtractionPrompt(question, note)
	response, err := s.generator.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		s.log.Warn("matcher", "answer extraction failed", map[string]interface{}{"error": err.Error()})
		answers.SetDefault(key, locator.NotFoundSentinel)
		return locator.NotFoundSentinel
	}

	answer := strings.Trim(strings.TrimSpace(response), `"`)
	if answer == "" || strings.Contains(answer, "Answer not found") {
		answer = locator.NotFoundSentinel
	}
	answers.SetDefault(key, answer)
	return answer
}

func cacheKey(pageText, question string) string {
	return runePrefix(pageText, answerCacheKeyPage) + "|" + runePrefix(question, answerCacheKeyQuestion)
}

// runePrefix is like s[:n] but counts runes, never splitting a rune in
// the middle of its encoding.
func runePrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
