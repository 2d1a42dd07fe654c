package dto

import "time"

type UploadRecordResponse struct {
	Id        uint      `json:"id"`
	Filename  string    `json:"filename"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

type UploadHistoryResponse struct {
	Records []UploadRecordResponse `json:"records"`
	Outcome string                 `json:"outcome"`
}
