package testutil

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/services/logger"
)

// ScienceMarks returns Physics, Chemistry and Math marks in that order.
func ScienceMarks(physics, chemistry, math float64) student.Marks {
	return student.NewMarks(student.KindScience.Subjects(), []float64{physics, chemistry, math})
}

// ArtsMarks returns History, Literature and Sociology marks in that order.
func ArtsMarks(history, literature, sociology float64) student.Marks {
	return student.NewMarks(student.KindArts.Subjects(), []float64{history, literature, sociology})
}

// CreateStudent builds a graded Student and appends it to repo.
func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name string,
	rollNo int,
	kind student.Kind,
	marks student.Marks,
) student.Student {
	t.Helper()

	std, err := student.New(name, rollNo, kind, marks)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	std, err = repo.AppendStudent(std)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

// NewLogger returns a core.Logger recording every entry (debug included) in the returned hook.
func NewLogger() (core.Logger, *test.Hook) {
	std, hook := test.NewNullLogger()
	std.SetLevel(logrus.DebugLevel)
	return logsvc.NewRollbarLogger(std, &core.Config{Env: "TEST"}), hook
}
