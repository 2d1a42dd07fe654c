package service

import (
	"context"
	"fmt"
	"strings"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/internal/repository/specification"
	"intelliject-be/internal/repository/unitofwork"
	"intelliject-be/pkg/database"
)

// SubjectsResult is the subject list plus where it came from.
type SubjectsResult struct {
	Subjects []string
	Outcome  Outcome
}

// StoreResult reports how many records a bulk write persisted. Stored is
// 0 whenever the transaction rolled back; partial writes are never
// observed.
type StoreResult struct {
	Stored  int
	Outcome Outcome
}

type IQuestionService interface {
	ListSubjects(ctx context.Context) SubjectsResult
	CreateSubject(ctx context.Context, name string) Outcome
	StoreQuestions(ctx context.Context, subject string, questions []*entity.PYQ) StoreResult
	ReplaceSubject(ctx context.Context, subject string, questions []*entity.PYQ) StoreResult
	ListQuestionsBySubject(ctx context.Context, subject string) ([]*entity.PYQ, Outcome)
	ListAllQuestions(ctx context.Context) ([]*entity.PYQ, Outcome)
	RecordUpload(ctx context.Context, filename, subject string) *entity.UploadRecord
	ListUploadHistory(ctx context.Context) ([]*entity.UploadRecord, Outcome)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    *database.Gateway
	publisher  IPublisherService
	log        logger.ILogger
}

func NewQuestionService(
	uowFactory unitofwork.RepositoryFactory,
	gateway *database.Gateway,
	publisher IPublisherService,
	log logger.ILogger,
) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		log:        log,
	}
}

// ListSubjects never fails the caller: a dead backend or an empty
// distinct-subject query falls back to the flat subjects file, whose own
// last resort is the configured default list.
func (s *questionService) ListSubjects(ctx context.Context) SubjectsResult {
	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return SubjectsResult{
			Subjects: s.gateway.Subjects().Subjects(),
			Outcome:  OutcomeConnectivityError,
		}
	}

	subjects, err := uow.PYQRepository().DistinctSubjects(ctx)
	if err != nil {
		s.log.Warn("question", "distinct subjects query failed, using subjects file", map[string]interface{}{"error": err.Error()})
		return SubjectsResult{
			Subjects: s.gateway.Subjects().Subjects(),
			Outcome:  OutcomeConnectivityError,
		}
	}
	if len(subjects) == 0 {
		return SubjectsResult{
			Subjects: s.gateway.Subjects().Subjects(),
			Outcome:  OutcomeOK,
		}
	}
	return SubjectsResult{Subjects: subjects, Outcome: OutcomeOK}
}

// CreateSubject is idempotent: an existing subject is a successful no-op.
// A new subject gets a single placeholder question so it shows up in
// ListSubjects before any real corpus is loaded.
func (s *questionService) CreateSubject(ctx context.Context, name string) Outcome {
	name = strings.TrimSpace(name)
	if name == "" {
		return OutcomeDataError
	}

	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return classify(err)
	}

	if err := uow.Begin(ctx); err != nil {
		s.log.Error("question", "failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return classify(err)
	}

	count, err := uow.PYQRepository().Count(ctx, specification.BySubject{Subject: name})
	if err != nil {
		_ = uow.Rollback()
		s.log.Error("question", "failed to check subject existence", map[string]interface{}{"subject": name, "error": err.Error()})
		return classify(err)
	}
	if count > 0 {
		_ = uow.Rollback()
		return OutcomeOK
	}

	placeholder := &entity.PYQ{
		Subject:  name,
		SubTopic: "General",
		Question: fmt.Sprintf("What are the fundamental concepts of %s?", name),
		Marks:    1,
		Year:     "2024",
	}
	if err := uow.PYQRepository().Create(ctx, placeholder); err != nil {
		_ = uow.Rollback()
		s.log.Error("question", "failed to create subject placeholder", map[string]interface{}{"subject": name, "error": err.Error()})
		return classify(err)
	}

	if err := uow.Commit(); err != nil {
		s.log.Error("question", "failed to commit subject creation", map[string]interface{}{"subject": name, "error": err.Error()})
		return classify(err)
	}

	s.publisher.PublishCorpusUpdated(ctx, name, 1)
	return OutcomeOK
}

// StoreQuestions bulk-inserts a batch under one transaction. Records with
// empty question text are dropped silently; the returned count is what
// actually persisted. Any write error rolls the whole batch back and
// reports zero.
func (s *questionService) StoreQuestions(ctx context.Context, subject string, questions []*entity.PYQ) StoreResult {
	return s.storeBatch(ctx, subject, questions, false)
}

// ReplaceSubject swaps a subject's whole corpus in one transaction, so a
// reader never observes a half-cleared subject.
func (s *questionService) ReplaceSubject(ctx context.Context, subject string, questions []*entity.PYQ) StoreResult {
	return s.storeBatch(ctx, subject, questions, true)
}

func (s *questionService) storeBatch(ctx context.Context, subject string, questions []*entity.PYQ, replace bool) StoreResult {
	batch := make([]*entity.PYQ, 0, len(questions))
	for _, q := range questions {
		if q == nil || strings.TrimSpace(q.Question) == "" {
			continue
		}
		record := *q
		record.Id = 0
		record.Subject = subject
		batch = append(batch, &record)
	}
	if len(batch) == 0 && !replace {
		return StoreResult{Stored: 0, Outcome: OutcomeOK}
	}

	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return StoreResult{Stored: 0, Outcome: classify(err)}
	}

	if err := uow.Begin(ctx); err != nil {
		s.log.Error("question", "failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return StoreResult{Stored: 0, Outcome: classify(err)}
	}

	if replace {
		if err := uow.PYQRepository().DeleteBySubject(ctx, subject); err != nil {
			_ = uow.Rollback()
			s.log.Error("question", "failed to clear subject", map[string]interface{}{"subject": subject, "error": err.Error()})
			return StoreResult{Stored: 0, Outcome: classify(err)}
		}
	}

	if err := uow.PYQRepository().CreateBulk(ctx, batch); err != nil {
		_ = uow.Rollback()
		s.log.Error("question", "failed to store questions", map[string]interface{}{"subject": subject, "error": err.Error()})
		return StoreResult{Stored: 0, Outcome: classify(err)}
	}

	if err := uow.Commit(); err != nil {
		s.log.Error("question", "failed to commit question batch", map[string]interface{}{"subject": subject, "error": err.Error()})
		return StoreResult{Stored: 0, Outcome: classify(err)}
	}

	s.publisher.PublishCorpusUpdated(ctx, subject, len(batch))
	return StoreResult{Stored: len(batch), Outcome: OutcomeOK}
}

func (s *questionService) ListQuestionsBySubject(ctx context.Context, subject string) ([]*entity.PYQ, Outcome) {
	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return nil, classify(err)
	}
	questions, err := uow.PYQRepository().FindAll(ctx, specification.BySubject{Subject: subject})
	if err != nil {
		s.log.Error("question", "failed to list questions by subject", map[string]interface{}{"subject": subject, "error": err.Error()})
		return nil, classify(err)
	}
	return questions, OutcomeOK
}

func (s *questionService) ListAllQuestions(ctx context.Context) ([]*entity.PYQ, Outcome) {
	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return nil, classify(err)
	}
	questions, err := uow.PYQRepository().FindAll(ctx)
	if err != nil {
		s.log.Error("question", "failed to list questions", map[string]interface{}{"error": err.Error()})
		return nil, classify(err)
	}
	return questions, OutcomeOK
}

// RecordUpload inserts one upload-history row. Failures roll back and
// yield nil; history is best-effort and never fails a processing run.
func (s *questionService) RecordUpload(ctx context.Context, filename, subject string) *entity.UploadRecord {
	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		s.log.Error("question", "failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return nil
	}

	record := &entity.UploadRecord{
		Filename: filename,
		Subject:  subject,
	}
	if err := uow.UploadHistoryRepository().Create(ctx, record); err != nil {
		_ = uow.Rollback()
		s.log.Error("question", "failed to record upload", map[string]interface{}{"filename": filename, "error": err.Error()})
		return nil
	}
	if err := uow.Commit(); err != nil {
		s.log.Error("question", "failed to commit upload record", map[string]interface{}{"filename": filename, "error": err.Error()})
		return nil
	}
	return record
}

func (s *questionService) ListUploadHistory(ctx context.Context) ([]*entity.UploadRecord, Outcome) {
	uow, err := s.uowFactory.NewUnitOfWork(ctx)
	if err != nil {
		return nil, classify(err)
	}
	uploads, err := uow.UploadHistoryRepository().FindAll(ctx)
	if err != nil {
		s.log.Error("question", "failed to list upload history", map[string]interface{}{"error": err.Error()})
		return nil, classify(err)
	}
	return uploads, OutcomeOK
}
