package model

type PYQ struct {
	Id       uint    `gorm:"primaryKey;autoIncrement"`
	Subject  string  `gorm:"type:varchar(255);not null;index"`
	SubTopic string  `gorm:"type:varchar(255);index"`
	Question string  `gorm:"type:text;not null;index"`
	Marks    float64 `gorm:"default:0"` // supports decimal marks like 2.5
	Year     string  `gorm:"type:varchar(16);index"`
	Semester string  `gorm:"type:varchar(64)"`
	Branch   string  `gorm:"type:varchar(128)"`
	Unit     string  `gorm:"type:varchar(64)"`
}

func (PYQ) TableName() string {
	return "pyqs"
}
