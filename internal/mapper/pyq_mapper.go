package mapper

import (
	"intelliject-be/internal/entity"
	"intelliject-be/internal/model"
)

type PYQMapper struct{}

func NewPYQMapper() *PYQMapper {
	return &PYQMapper{}
}

func (m *PYQMapper) ToEntity(p *model.PYQ) *entity.PYQ {
	if p == nil {
		return nil
	}
	return &entity.PYQ{
		Id:       p.Id,
		Subject:  p.Subject,
		SubTopic: p.SubTopic,
		Question: p.Question,
		Marks:    p.Marks,
		Year:     p.Year,
		Semester: p.Semester,
		Branch:   p.Branch,
		Unit:     p.Unit,
	}
}

func (m *PYQMapper) ToModel(p *entity.PYQ) *model.PYQ {
	if p == nil {
		return nil
	}
	return &model.PYQ{
		Id:       p.Id,
		Subject:  p.Subject,
		SubTopic: p.SubTopic,
		Question: p.Question,
		Marks:    p.Marks,
		Year:     p.Year,
		Semester: p.Semester,
		Branch:   p.Branch,
		Unit:     p.Unit,
	}
}

func (m *PYQMapper) ToEntities(pyqs []*model.PYQ) []*entity.PYQ {
	entities := make([]*entity.PYQ, len(pyqs))
	for i, p := range pyqs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PYQMapper) ToModels(pyqs []*entity.PYQ) []*model.PYQ {
	models := make([]*model.PYQ, len(pyqs))
	for i, p := range pyqs {
		models[i] = m.ToModel(p)
	}
	return models
}
