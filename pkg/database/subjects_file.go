package database

import (
	"encoding/json"
	"os"
	"time"
)

// SubjectsFile is the read-only flat-file rung of the ladder: a JSON
// document with the known subject names plus a free-form metadata block.
type SubjectsFile struct {
	path     string
	defaults []string
}

type subjectsDocument struct {
	Subjects []string               `json:"subjects"`
	Metadata map[string]interface{} `json:"metadata"`
}

func NewSubjectsFile(path string, defaults []string) *SubjectsFile {
	return &SubjectsFile{path: path, defaults: defaults}
}

// Subjects reads the subject list. A missing file is regenerated with the
// configured defaults; an unreadable one falls back to them directly, so
// the caller always gets a non-empty list.
func (s *SubjectsFile) Subjects() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			_ = s.Write(s.defaults)
		}
		return s.defaults
	}

	var doc subjectsDocument
	if err := json.Unmarshal(data, &doc); err != nil || len(doc.Subjects) == 0 {
		return s.defaults
	}
	return doc.Subjects
}

// Write replaces the file with the given ordered subject list.
func (s *SubjectsFile) Write(subjects []string) error {
	doc := subjectsDocument{
		Subjects: subjects,
		Metadata: map[string]interface{}{
			"created":     "auto-generated",
			"description": "Available subjects (relational-backend fallback)",
			"updated_at":  time.Now().UTC().Format(time.RFC3339),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *SubjectsFile) Defaults() []string {
	return s.defaults
}
