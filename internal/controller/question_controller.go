package controller

import (
	"intelliject-be/internal/dto"
	"intelliject-be/internal/entity"
	"intelliject-be/internal/pkg/serverutils"
	"intelliject-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(api fiber.Router)
}

type questionController struct {
	questionService service.IQuestionService
}

func NewQuestionController(questionService service.IQuestionService) IQuestionController {
	return &questionController{
		questionService: questionService,
	}
}

func (c *questionController) RegisterRoutes(api fiber.Router) {
	api.Get("/questions", c.GetAllQuestions)
	api.Get("/subjects/:subject/questions", c.GetQuestionsBySubject)
	api.Post("/subjects/:subject/questions", c.StoreQuestions)
}

func (c *questionController) GetAllQuestions(ctx *fiber.Ctx) error {
	questions, outcome := c.questionService.ListAllQuestions(ctx.Context())
	if status := statusForOutcome(outcome); status != fiber.StatusOK {
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, "Question store unavailable"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Questions retrieved", toQuestionResponses(questions)))
}

func (c *questionController) GetQuestionsBySubject(ctx *fiber.Ctx) error {
	subject := ctx.Params("subject")

	questions, outcome := c.questionService.ListQuestionsBySubject(ctx.Context(), subject)
	if status := statusForOutcome(outcome); status != fiber.StatusOK {
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, "Question store unavailable"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Questions retrieved", toQuestionResponses(questions)))
}

// StoreQuestions bulk-inserts a question batch for one subject. With
// replace set, the subject's existing corpus is swapped out in the same
// transaction.
func (c *questionController) StoreQuestions(ctx *fiber.Ctx) error {
	subject := ctx.Params("subject")

	var req dto.StoreQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	batch := make([]*entity.PYQ, 0, len(req.Questions))
	for _, q := range req.Questions {
		batch = append(batch, &entity.PYQ{
			SubTopic: q.SubTopic,
			Question: q.Question,
			Marks:    q.Marks,
			Year:     q.Year,
			Semester: q.Semester,
			Branch:   q.Branch,
			Unit:     q.Unit,
		})
	}

	var result service.StoreResult
	if req.Replace {
		result = c.questionService.ReplaceSubject(ctx.Context(), subject, batch)
	} else {
		result = c.questionService.StoreQuestions(ctx.Context(), subject, batch)
	}

	if status := statusForOutcome(result.Outcome); status != fiber.StatusOK {
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, "Could not store questions"))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Questions stored", dto.StoreQuestionsResponse{
		Subject: subject,
		Stored:  result.Stored,
		Outcome: string(result.Outcome),
	}))
}

func toQuestionResponse(q *entity.PYQ) dto.QuestionResponse {
	return dto.QuestionResponse{
		Id:       q.Id,
		Subject:  q.Subject,
		SubTopic: q.SubTopic,
		Question: q.Question,
		Marks:    q.Marks,
		Year:     q.Year,
		Semester: q.Semester,
		Branch:   q.Branch,
		Unit:     q.Unit,
	}
}

func toQuestionResponses(questions []*entity.PYQ) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	return out
}
