package model

import "time"

type UploadHistory struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Filename  string    `gorm:"type:varchar(512);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Timestamp time.Time `gorm:"autoCreateTime;index"`
}

func (UploadHistory) TableName() string {
	return "pdf_history"
}
