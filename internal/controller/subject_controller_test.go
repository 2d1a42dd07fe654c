package controller

import (
	"context"
	"testing"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubQuestionService struct {
	createdSubjects []string
}

func (s *stubQuestionService) ListSubjects(ctx context.Context) service.SubjectsResult {
	return service.SubjectsResult{Outcome: service.OutcomeOK}
}

func (s *stubQuestionService) CreateSubject(ctx context.Context, name string) service.Outcome {
	s.createdSubjects = append(s.createdSubjects, name)
	return service.OutcomeOK
}

func (s *stubQuestionService) StoreQuestions(ctx context.Context, subject string, questions []*entity.PYQ) service.StoreResult {
	return service.StoreResult{Stored: len(questions), Outcome: service.OutcomeOK}
}

func (s *stubQuestionService) ReplaceSubject(ctx context.Context, subject string, questions []*entity.PYQ) service.StoreResult {
	return service.StoreResult{Stored: len(questions), Outcome: service.OutcomeOK}
}

func (s *stubQuestionService) ListQuestionsBySubject(ctx context.Context, subject string) ([]*entity.PYQ, service.Outcome) {
	return nil, service.OutcomeOK
}

func (s *stubQuestionService) ListAllQuestions(ctx context.Context) ([]*entity.PYQ, service.Outcome) {
	return nil, service.OutcomeOK
}

func (s *stubQuestionService) RecordUpload(ctx context.Context, filename, subject string) *entity.UploadRecord {
	return nil
}

func (s *stubQuestionService) ListUploadHistory(ctx context.Context) ([]*entity.UploadRecord, service.Outcome) {
	return nil, service.OutcomeOK
}

func newSubjectApp(svc service.IQuestionService) *fiber.App {
	app := fiber.New()
	NewSubjectController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestCreateSubjectRejectsMissingName(t *testing.T) {
	svc := &stubQuestionService{}
	app := newSubjectApp(svc)

	resp := postJSON(t, app, "/api/subjects", fiber.Map{})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.createdSubjects)
}

func TestCreateSubjectAcceptsValidBody(t *testing.T) {
	svc := &stubQuestionService{}
	app := newSubjectApp(svc)

	resp := postJSON(t, app, "/api/subjects", fiber.Map{"name": "Physics"})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, []string{"Physics"}, svc.createdSubjects)
}
