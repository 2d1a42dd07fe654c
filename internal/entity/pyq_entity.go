package entity

// PYQ is one previous-year exam question. Records are immutable once
// stored; a subject's set only changes through bulk replace.
type PYQ struct {
	Id       uint
	Subject  string
	SubTopic string
	Question string
	Marks    float64
	Year     string
	Semester string
	Branch   string
	Unit     string
}
