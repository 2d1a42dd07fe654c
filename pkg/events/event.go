package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CORPUS_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeCorpusUpdated   = "CORPUS_UPDATED"
	TypeUploadProcessed = "UPLOAD_PROCESSED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCorpusUpdated marks a change to one subject's question set.
func NewCorpusUpdated(subject string, count int) Event {
	return BaseEvent{
		Type: TypeCorpusUpdated,
		Data: map[string]interface{}{
			"subject": subject,
			"count":   count,
		},
		OccurredAt: time.Now(),
	}
}

// NewUploadProcessed marks one completed notes-processing run.
func NewUploadProcessed(filename, subject string, pages int) Event {
	return BaseEvent{
		Type: TypeUploadProcessed,
		Data: map[string]interface{}{
			"filename": filename,
			"subject":  subject,
			"pages":    pages,
		},
		OccurredAt: time.Now(),
	}
}
