package contract

import (
	"context"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/repository/specification"
)

type PYQRepository interface {
	Create(ctx context.Context, pyq *entity.PYQ) error
	CreateBulk(ctx context.Context, pyqs []*entity.PYQ) error
	DeleteBySubject(ctx context.Context, subject string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PYQ, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctSubjects(ctx context.Context) ([]string, error)
}
