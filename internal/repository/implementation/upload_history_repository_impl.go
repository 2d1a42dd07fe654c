package implementation

import (
	"context"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/mapper"
	"intelliject-be/internal/model"
	"intelliject-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UploadHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UploadMapper
}

func NewUploadHistoryRepository(db *gorm.DB) contract.UploadHistoryRepository {
	return &UploadHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewUploadMapper(),
	}
}

func (r *UploadHistoryRepositoryImpl) Create(ctx context.Context, upload *entity.UploadRecord) error {
	m := r.mapper.ToModel(upload)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*upload = *r.mapper.ToEntity(m)
	return nil
}

func (r *UploadHistoryRepositoryImpl) FindAll(ctx context.Context) ([]*entity.UploadRecord, error) {
	var models []*model.UploadHistory
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
