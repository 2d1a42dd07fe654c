package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"intelliject-be/internal/entity"
)

// Record is one raw corpus entry as found in a subject JSON file. Only
// the question text is required; everything else is coerced to defaults.
type Record struct {
	Question string `json:"question"`
	SubTopic string `json:"sub_topic"`
	Topic    string `json:"topic"`
	Marks    Scalar `json:"marks"`
	Year     Scalar `json:"year"`
	Semester string `json:"semester"`
	Branch   string `json:"branch"`
	Unit     string `json:"unit"`
}

// Scalar accepts a JSON string or number and keeps its text form; corpus
// files stringify years and marks inconsistently.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	*s = Scalar(data)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Coerce turns a raw record into a question entity under the given
// subject. Records with an empty question after trimming are dropped
// (second return false).
func Coerce(rec Record, subject string) (*entity.PYQ, bool) {
	question := strings.TrimSpace(rec.Question)
	if question == "" {
		return nil, false
	}

	subTopic := rec.SubTopic
	if subTopic == "" {
		subTopic = rec.Topic
	}
	if subTopic == "" {
		subTopic = "General"
	}

	year := strings.TrimSpace(rec.Year.String())
	if year == "" {
		year = "2024"
	}

	return &entity.PYQ{
		Subject:  subject,
		SubTopic: subTopic,
		Question: question,
		Marks:    coerceMarks(rec.Marks.String()),
		Year:     year,
		Semester: rec.Semester,
		Branch:   rec.Branch,
		Unit:     rec.Unit,
	}, true
}

// coerceMarks accepts integral or decimal marks when numeric-looking;
// anything else becomes 0.
func coerceMarks(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if !isDigitsWithOptionalPoint(raw) {
		return 0
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return val
}

func isDigitsWithOptionalPoint(s string) bool {
	points := 0
	for _, r := range s {
		if r == '.' {
			points++
			if points > 1 {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LoadSubjectFile reads one subject's JSON corpus (an array of records)
// and returns the coerced questions. Malformed records without question
// text are silently skipped.
func LoadSubjectFile(path, subject string) ([]*entity.PYQ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return Parse(data, subject)
}

// Parse decodes a subject corpus from raw JSON.
func Parse(data []byte, subject string) ([]*entity.PYQ, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	questions := make([]*entity.PYQ, 0, len(records))
	for _, rec := range records {
		if q, ok := Coerce(rec, subject); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// DiscoverSubjectFiles maps subject names to their JSON corpus files
// under dir. The subject name is the file stem with separators
// normalized ("cyber_security.json" becomes "Cyber Security").
func DiscoverSubjectFiles(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files[SubjectNameFromFile(e.Name())] = filepath.Join(dir, e.Name())
	}
	return files, nil
}

// SubjectNameFromFile derives a display subject name from a corpus
// filename.
func SubjectNameFromFile(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")

	words := strings.Fields(stem)
	for i, w := range words {
		// Keep short connectives lowercase, title-case the rest.
		if i > 0 && (w == "and" || w == "of" || w == "the" || w == "in") {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
