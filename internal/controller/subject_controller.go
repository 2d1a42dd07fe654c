package controller

import (
	"intelliject-be/internal/dto"
	"intelliject-be/internal/pkg/serverutils"
	"intelliject-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubjectController interface {
	RegisterRoutes(api fiber.Router)
}

type subjectController struct {
	questionService service.IQuestionService
}

func NewSubjectController(questionService service.IQuestionService) ISubjectController {
	return &subjectController{
		questionService: questionService,
	}
}

func (c *subjectController) RegisterRoutes(api fiber.Router) {
	api.Get("/subjects", c.GetSubjects)
	api.Post("/subjects", c.CreateSubject)
}

// GetSubjects returns the known subject list. It answers 200 even when
// the relational backend is down: the list then comes from the flat
// subjects file and the outcome tag says so.
func (c *subjectController) GetSubjects(ctx *fiber.Ctx) error {
	result := c.questionService.ListSubjects(ctx.Context())

	return ctx.JSON(serverutils.SuccessResponse("Subjects retrieved", dto.SubjectsResponse{
		Subjects: result.Subjects,
		Outcome:  string(result.Outcome),
	}))
}

func (c *subjectController) CreateSubject(ctx *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	outcome := c.questionService.CreateSubject(ctx.Context(), req.Name)
	if status := statusForOutcome(outcome); status != fiber.StatusOK {
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, "Could not create subject"))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subject created", fiber.Map{
		"name": req.Name,
	}))
}

func statusForOutcome(outcome service.Outcome) int {
	switch outcome {
	case service.OutcomeOK:
		return fiber.StatusOK
	case service.OutcomeDataError:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusServiceUnavailable
	}
}
