package implementation

import (
	"context"

	"intelliject-be/internal/entity"
	"intelliject-be/internal/mapper"
	"intelliject-be/internal/model"
	"intelliject-be/internal/repository/contract"
	"intelliject-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PYQRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PYQMapper
}

func NewPYQRepository(db *gorm.DB) contract.PYQRepository {
	return &PYQRepositoryImpl{
		db:     db,
		mapper: mapper.NewPYQMapper(),
	}
}

func (r *PYQRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PYQRepositoryImpl) Create(ctx context.Context, pyq *entity.PYQ) error {
	m := r.mapper.ToModel(pyq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pyq = *r.mapper.ToEntity(m)
	return nil
}

func (r *PYQRepositoryImpl) CreateBulk(ctx context.Context, pyqs []*entity.PYQ) error {
	if len(pyqs) == 0 {
		return nil
	}
	models := r.mapper.ToModels(pyqs)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*pyqs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PYQRepositoryImpl) DeleteBySubject(ctx context.Context, subject string) error {
	return r.db.WithContext(ctx).Where("subject = ?", subject).Delete(&model.PYQ{}).Error
}

func (r *PYQRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PYQ, error) {
	var models []*model.PYQ
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PYQRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PYQ{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PYQRepositoryImpl) DistinctSubjects(ctx context.Context) ([]string, error) {
	var subjects []string
	err := r.db.WithContext(ctx).
		Model(&model.PYQ{}).
		Distinct("subject").
		Order("subject").
		Pluck("subject", &subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}
