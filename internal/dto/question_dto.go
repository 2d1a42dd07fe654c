package dto

type QuestionResponse struct {
	Id       uint    `json:"id"`
	Subject  string  `json:"subject"`
	SubTopic string  `json:"sub_topic"`
	Question string  `json:"question"`
	Marks    float64 `json:"marks"`
	Year     string  `json:"year"`
	Semester string  `json:"semester"`
	Branch   string  `json:"branch"`
	Unit     string  `json:"unit"`
}

type StoreQuestionsRequest struct {
	// An empty batch stays legal: with replace set it clears a subject.
	Questions []QuestionPayload `json:"questions" validate:"dive"`
	Replace   bool              `json:"replace"`
}

type QuestionPayload struct {
	Question string  `json:"question" validate:"required"`
	SubTopic string  `json:"sub_topic"`
	Marks    float64 `json:"marks"`
	Year     string  `json:"year"`
	Semester string  `json:"semester"`
	Branch   string  `json:"branch"`
	Unit     string  `json:"unit"`
}

type StoreQuestionsResponse struct {
	Subject string `json:"subject"`
	Stored  int    `json:"stored"`
	Outcome string `json:"outcome"`
}

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
	Outcome  string   `json:"outcome"`
}

// CorpusUpdatedMessage rides the in-process bus after a corpus write.
type CorpusUpdatedMessage struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}
