package student

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
)

// Kinds
const (
	KindScience Kind = "Science"
	KindArts    Kind = "Arts"
)

// Grades
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

var AllKinds = []Kind{KindScience, KindArts}

type (
	Kind  string
	Grade string // "" until computed
)

// ParseKind maps user input ("s", "science", "a", "arts"; any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch core.CleanLower(s) {
	case "s", "science":
		return KindScience, nil
	case "a", "arts":
		return KindArts, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// Subjects returns the fixed subject list of the kind, nil for an unknown kind.
func (k Kind) Subjects() []string {
	if p, ok := policies[k]; ok {
		subjects := make([]string, len(p.subjects))
		copy(subjects, p.subjects)
		return subjects
	}
	return nil
}

func (k Kind) IsValid() bool {
	_, ok := policies[k]
	return ok
}

type Mark struct {
	Subject string  `json:"subject" validate:"notblank"`
	Mark    float64 `json:"mark" validate:"finite"`
}

// Marks is an ordered subject -> mark mapping.
// It encodes to a JSON object whose keys keep insertion order.
type Marks []Mark

// NewMarks builds Marks from parallel subject and mark lists.
func NewMarks(subjects []string, marks []float64) Marks {
	m := make(Marks, 0, len(subjects))
	for i, subject := range subjects {
		m = append(m, Mark{Subject: subject, Mark: marks[i]})
	}
	return m
}

// Get returns the mark of the first entry matching subject.
func (m Marks) Get(subject string) (float64, bool) {
	for _, mk := range m {
		if mk.Subject == subject {
			return mk.Mark, true
		}
	}
	return 0, false
}

// Set updates subject's mark in place, appending it when absent.
func (m *Marks) Set(subject string, mark float64) {
	for i := range *m {
		if (*m)[i].Subject == subject {
			(*m)[i].Mark = mark
			return
		}
	}
	*m = append(*m, Mark{Subject: subject, Mark: mark})
}

func (m Marks) Subjects() []string {
	subjects := make([]string, 0, len(m))
	for _, mk := range m {
		subjects = append(subjects, mk.Subject)
	}
	return subjects
}

func (m Marks) Clone() Marks {
	if m == nil {
		return nil
	}
	c := make(Marks, len(m))
	copy(c, m)
	return c
}

func (m Marks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mk := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mk.Subject)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(mk.Mark)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Marks) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("marks: expected a JSON object, got %v", tok)
	}

	marks := make(Marks, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		subject, ok := tok.(string)
		if !ok {
			return fmt.Errorf("marks: expected a subject name, got %v", tok)
		}
		var mark float64
		if err = dec.Decode(&mark); err != nil {
			return errors.Wrapf(err, "marks: decoding %q", subject)
		}
		marks.Set(subject, mark)
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return err
	}
	*m = marks
	return nil
}

type Student struct {
	Name   string `json:"name"`
	RollNo int    `json:"rollNo"`
	Kind   Kind   `json:"kind"`
	Marks  Marks  `json:"marks"`
	Grade  Grade  `json:"grade"`
}

// New returns a Student with a computed grade.
func New(name string, rollNo int, kind Kind, marks Marks) (Student, error) {
	std := Student{
		Name:   name,
		RollNo: rollNo,
		Kind:   kind,
		Marks:  marks.Clone(),
	}
	if err := std.CalculateGrade(); err != nil {
		return Student{}, err
	}
	return std, nil
}

// CalculateGrade runs the kind's grading policy and stores the result.
func (s *Student) CalculateGrade() error {
	grade, err := ComputeGrade(s.Kind, s.Marks)
	if err != nil {
		return err
	}
	s.Grade = grade
	return nil
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name   string `json:"name"`
	RollNo int    `json:"rollNo"`
	Kind   Kind   `json:"kind" validate:"required,kind"`
	Marks  Marks  `json:"marks" validate:"required,min=1,dive"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationError(err)
	}
	return nil
}

// UpdateStudent defines the replacement of an existing Student.
// Every field is replaced; RollNo may differ from the roll number used to find the Student.
type UpdateStudent struct {
	Name   string `json:"name"`
	RollNo int    `json:"rollNo"`
	Kind   Kind   `json:"kind" validate:"required,kind"`
	Marks  Marks  `json:"marks" validate:"required,min=1,dive"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	if err := core.Validate.Struct(us); err != nil {
		return core.TranslateValidationError(err)
	}
	return nil
}

// Summary is a one-line view of a Student.
type Summary struct {
	RollNo  int
	Name    string
	Kind    Kind
	Average string
	Grade   Grade
}
