package specification

import "gorm.io/gorm"

type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}

type ByYear struct {
	Year string
}

func (s ByYear) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("year = ?", s.Year)
}

type BySubTopic struct {
	SubTopic string
}

func (s BySubTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sub_topic = ?", s.SubTopic)
}
