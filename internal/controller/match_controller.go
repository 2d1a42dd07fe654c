package controller

import (
	"intelliject-be/internal/dto"
	"intelliject-be/internal/pkg/serverutils"
	"intelliject-be/internal/service"
	"intelliject-be/pkg/locator"
	"intelliject-be/pkg/retrieval"

	"github.com/gofiber/fiber/v2"
)

const defaultTopK = 3

type IMatchController interface {
	RegisterRoutes(api fiber.Router)
}

type matchController struct {
	matcherService service.IMatcherService
}

func NewMatchController(matcherService service.IMatcherService) IMatchController {
	return &matchController{
		matcherService: matcherService,
	}
}

func (c *matchController) RegisterRoutes(api fiber.Router) {
	api.Post("/match", c.MatchNotes)
	api.Post("/match/page", c.MatchPage)
}

// MatchNotes chunks free text and matches every chunk against the
// subject corpus. An empty chunk list means nothing matched; this
// endpoint does not fail on collaborator outages.
func (c *matchController) MatchNotes(ctx *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	k := req.TopK
	if k <= 0 {
		k = defaultTopK
	}

	chunks := c.matcherService.MatchNotes(ctx.Context(), req.Text, req.Subject, k)

	out := make([]dto.ChunkMatches, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, dto.ChunkMatches{
			Chunk:    chunk.Chunk,
			Subtopic: chunk.Subtopic,
			Matches:  toMatchResults(chunk.Matches),
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Notes matched", dto.MatchResponse{
		Subject: req.Subject,
		Chunks:  out,
	}))
}

// MatchPage matches one page of text and extracts answer locations for
// each matched question.
func (c *matchController) MatchPage(ctx *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	matches := c.matcherService.MatchPage(ctx.Context(), req.Text, req.Subject, req.TopK)

	return ctx.JSON(serverutils.SuccessResponse("Page matched", dto.PageResult{
		Page:    0,
		Matches: toPageQuestionMatches(matches),
	}))
}

func toMatchResults(matches []retrieval.Match) []dto.MatchResult {
	out := make([]dto.MatchResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.MatchResult{
			Question: toQuestionResponse(&m.Question),
			Score:    m.Score,
		})
	}
	return out
}

func toPageQuestionMatches(matches []service.PageMatch) []dto.PageQuestionMatch {
	out := make([]dto.PageQuestionMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.PageQuestionMatch{
			Question: toQuestionResponse(&m.Question.Question),
			Score:    m.Question.Score,
			Answer:   m.Answer,
			Regions:  toHighlightRegions(m.Regions),
		})
	}
	return out
}

func toHighlightRegions(regions []locator.Region) []dto.HighlightRegion {
	out := make([]dto.HighlightRegion, 0, len(regions))
	for _, r := range regions {
		out = append(out, dto.HighlightRegion{
			Start:  r.Start,
			End:    r.End,
			Text:   r.Text,
			Source: string(r.Source),
		})
	}
	return out
}
