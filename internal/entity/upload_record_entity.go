package entity

import "time"

// UploadRecord is one notes-upload event, written once per successful
// processing run and never mutated.
type UploadRecord struct {
	Id        uint
	Filename  string
	Subject   string
	Timestamp time.Time
}
