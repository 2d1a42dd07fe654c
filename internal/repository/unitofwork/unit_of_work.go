package unitofwork

import (
	"context"

	"intelliject-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PYQRepository() contract.PYQRepository
	UploadHistoryRepository() contract.UploadHistoryRepository
}
