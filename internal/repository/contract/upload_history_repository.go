package contract

import (
	"context"

	"intelliject-be/internal/entity"
)

type UploadHistoryRepository interface {
	Create(ctx context.Context, upload *entity.UploadRecord) error
	// FindAll returns upload records newest first.
	FindAll(ctx context.Context) ([]*entity.UploadRecord, error)
}
