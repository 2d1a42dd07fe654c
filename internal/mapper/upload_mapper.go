package mapper

import (
	"intelliject-be/internal/entity"
	"intelliject-be/internal/model"
)

type UploadMapper struct{}

func NewUploadMapper() *UploadMapper {
	return &UploadMapper{}
}

func (m *UploadMapper) ToEntity(u *model.UploadHistory) *entity.UploadRecord {
	if u == nil {
		return nil
	}
	return &entity.UploadRecord{
		Id:        u.Id,
		Filename:  u.Filename,
		Subject:   u.Subject,
		Timestamp: u.Timestamp,
	}
}

func (m *UploadMapper) ToModel(u *entity.UploadRecord) *model.UploadHistory {
	if u == nil {
		return nil
	}
	return &model.UploadHistory{
		Id:        u.Id,
		Filename:  u.Filename,
		Subject:   u.Subject,
		Timestamp: u.Timestamp,
	}
}

func (m *UploadMapper) ToEntities(uploads []*model.UploadHistory) []*entity.UploadRecord {
	entities := make([]*entity.UploadRecord, len(uploads))
	for i, u := range uploads {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
