package dto

type MatchRequest struct {
	Text    string `json:"text" validate:"required"`
	Subject string `json:"subject"`
	TopK    int    `json:"top_k"`
}

type MatchResult struct {
	Question QuestionResponse `json:"question"`
	Score    float64          `json:"score"`
}

type ChunkMatches struct {
	Chunk    string        `json:"chunk"`
	Subtopic string        `json:"subtopic"`
	Matches  []MatchResult `json:"matches"`
}

type MatchResponse struct {
	Subject string         `json:"subject"`
	Chunks  []ChunkMatches `json:"chunks"`
}

type HighlightRegion struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

type PageQuestionMatch struct {
	Question QuestionResponse  `json:"question"`
	Score    float64           `json:"score"`
	Answer   string            `json:"answer"`
	Regions  []HighlightRegion `json:"regions"`
}

type PageResult struct {
	Page    int                 `json:"page"`
	Matches []PageQuestionMatch `json:"matches"`
}

type ProcessDocumentResponse struct {
	Filename string       `json:"filename"`
	Subject  string       `json:"subject"`
	Pages    []PageResult `json:"pages"`
}
