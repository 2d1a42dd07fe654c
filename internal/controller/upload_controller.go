package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"intelliject-be/internal/dto"
	"intelliject-be/internal/pkg/serverutils"
	"intelliject-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUploadController interface {
	RegisterRoutes(api fiber.Router)
}

type uploadController struct {
	matcherService  service.IMatcherService
	questionService service.IQuestionService
	uploadDir       string
}

func NewUploadController(
	matcherService service.IMatcherService,
	questionService service.IQuestionService,
	uploadDir string,
) IUploadController {
	return &uploadController{
		matcherService:  matcherService,
		questionService: questionService,
		uploadDir:       uploadDir,
	}
}

func (c *uploadController) RegisterRoutes(api fiber.Router) {
	api.Post("/uploads", c.ProcessUpload)
	api.Get("/uploads/history", c.GetHistory)
}

// ProcessUpload receives a notes document and runs the full matching
// pipeline over it. The only hard failure is an unreadable document;
// degraded collaborators shrink the result instead of erroring.
func (c *uploadController) ProcessUpload(ctx *fiber.Ctx) error {
	subject := ctx.FormValue("subject")
	if subject == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Subject is required"))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "File is required"))
	}

	if err := os.MkdirAll(c.uploadDir, 0o755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Could not prepare upload directory"))
	}
	path := filepath.Join(c.uploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), file.Filename))
	if err := ctx.SaveFile(file, path); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Could not save upload"))
	}
	defer os.Remove(path)

	pages, err := c.matcherService.ProcessDocument(ctx.Context(), path, file.Filename, subject)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, "Could not read document"))
	}

	out := make([]dto.PageResult, 0, len(pages))
	for _, page := range pages {
		out = append(out, dto.PageResult{
			Page:    page.Page,
			Matches: toPageQuestionMatches(page.Matches),
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Document processed", dto.ProcessDocumentResponse{
		Filename: file.Filename,
		Subject:  subject,
		Pages:    out,
	}))
}

func (c *uploadController) GetHistory(ctx *fiber.Ctx) error {
	records, outcome := c.questionService.ListUploadHistory(ctx.Context())
	if status := statusForOutcome(outcome); status != fiber.StatusOK {
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, "Upload history unavailable"))
	}

	out := make([]dto.UploadRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.UploadRecordResponse{
			Id:        r.Id,
			Filename:  r.Filename,
			Subject:   r.Subject,
			Timestamp: r.Timestamp,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Upload history retrieved", dto.UploadHistoryResponse{
		Records: out,
		Outcome: string(outcome),
	}))
}
