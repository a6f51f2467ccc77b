package student

import (
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	kindTag  = "kind"
	kindText = "unknown student kind"

	finiteTag  = "finite"
	finiteText = "mark must be a finite number"

	subjectsTag  = "subjects"
	subjectsText = "marks must cover exactly the subjects of the student kind"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(kindTag, kindValidation)
	core.RegisterCustomTranslation(kindTag, kindText)

	_ = core.Validate.RegisterValidation(finiteTag, finiteValidation)
	core.RegisterCustomTranslation(finiteTag, finiteText)

	core.Validate.RegisterStructValidation(studentStructValidation, NewStudent{}, UpdateStudent{})
	core.RegisterCustomTranslation(subjectsTag, subjectsText)
}

// Custom Validators

// kindValidation checks that the field is one of AllKinds.
func kindValidation(fl validator.FieldLevel) bool {
	return Kind(fl.Field().String()).IsValid()
}

// finiteValidation rejects NaN and infinite floats.
func finiteValidation(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// studentStructValidation does struct level validation on NewStudent and UpdateStudent structs.
func studentStructValidation(sl validator.StructLevel) {
	switch std := sl.Current().Interface().(type) {
	case NewStudent:
		validateSubjects(std.Kind, std.Marks, sl)
	case UpdateStudent:
		validateSubjects(std.Kind, std.Marks, sl)
	}
}

// validateSubjects checks that marks hold each subject of kind exactly once and nothing else.
// unknown kinds are reported by kindValidation.
func validateSubjects(kind Kind, marks Marks, sl validator.StructLevel) {
	want := kind.Subjects()
	if want == nil || len(marks) == 0 {
		return
	}
	got := marks.Subjects()
	if len(got) != len(want) {
		sl.ReportError(marks, "marks", "Marks", subjectsTag, "")
		return
	}
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			sl.ReportError(marks, "marks", "Marks", subjectsTag, "")
			return
		}
	}
}
