package student

import (
	"strconv"
	"strings"
)

// GenerateReport refreshes the grade and renders the student's report:
//
//	Science Student Report:
//	Name: A, Roll No: 1
//	Physics: 90.0
//	...
//	Grade: A
func (s *Student) GenerateReport() (string, error) {
	p, err := policyOf(s.Kind)
	if err != nil {
		return "", err
	}
	if err = s.CalculateGrade(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(p.title + "\n")
	b.WriteString("Name: " + s.Name + ", Roll No: " + strconv.Itoa(s.RollNo) + "\n")
	for _, mk := range s.Marks {
		b.WriteString(mk.Subject + ": " + FormatMark(mk.Mark) + "\n")
	}
	b.WriteString("Grade: " + string(s.Grade) + "\n")
	return b.String(), nil
}

// FormatMark prints a mark with at least one decimal place (90 -> "90.0").
func FormatMark(mark float64) string {
	s := strconv.FormatFloat(mark, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
