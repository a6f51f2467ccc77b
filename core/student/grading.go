package student

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type (
	averageFunc func(Marks) (decimal.Decimal, error)

	// policy is everything that differs between student kinds.
	policy struct {
		subjects []string
		tag      string // persisted record type
		title    string // report header
		average  averageFunc
	}

	threshold struct {
		min   decimal.Decimal
		grade Grade
	}
)

var (
	scienceWeights = []struct {
		subject string
		weight  decimal.Decimal
	}{
		{"Physics", decimal.RequireFromString("0.3")},
		{"Chemistry", decimal.RequireFromString("0.3")},
		{"Math", decimal.RequireFromString("0.4")},
	}

	policies = map[Kind]policy{
		KindScience: {
			subjects: []string{"Physics", "Chemistry", "Math"},
			tag:      "ScienceStudent",
			title:    "Science Student Report:",
			average:  weightedAverage,
		},
		KindArts: {
			subjects: []string{"History", "Literature", "Sociology"},
			tag:      "ArtsStudent",
			title:    "Arts Student Report:",
			average:  meanAverage,
		},
	}

	// highest first
	thresholds = []threshold{
		{decimal.NewFromInt(90), GradeA},
		{decimal.NewFromInt(80), GradeB},
		{decimal.NewFromInt(70), GradeC},
		{decimal.NewFromInt(60), GradeD},
	}
)

func policyOf(kind Kind) (policy, error) {
	p, ok := policies[kind]
	if !ok {
		return policy{}, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	return p, nil
}

// Average computes the kind's average of marks.
func Average(kind Kind, marks Marks) (decimal.Decimal, error) {
	p, err := policyOf(kind)
	if err != nil {
		return decimal.Zero, err
	}
	return p.average(marks)
}

// LetterGrade maps an average to its letter grade.
func LetterGrade(avg decimal.Decimal) Grade {
	for _, th := range thresholds {
		if avg.GreaterThanOrEqual(th.min) {
			return th.grade
		}
	}
	return GradeF
}

// ComputeGrade returns the grade of marks under the kind's policy.
// It does not touch any Student; see Student.CalculateGrade.
func ComputeGrade(kind Kind, marks Marks) (Grade, error) {
	avg, err := Average(kind, marks)
	if err != nil {
		return "", err
	}
	return LetterGrade(avg), nil
}

// weightedAverage: 0.3 Physics + 0.3 Chemistry + 0.4 Math.
func weightedAverage(marks Marks) (decimal.Decimal, error) {
	avg := decimal.Zero
	for _, w := range scienceWeights {
		mark, ok := marks.Get(w.subject)
		if !ok {
			return decimal.Zero, errors.Wrapf(ErrMissingSubject, "%q", w.subject)
		}
		d, err := markDecimal(w.subject, mark)
		if err != nil {
			return decimal.Zero, err
		}
		avg = avg.Add(d.Mul(w.weight))
	}
	return avg, nil
}

// meanAverage is the plain mean of whatever marks are present.
func meanAverage(marks Marks) (decimal.Decimal, error) {
	if len(marks) == 0 {
		return decimal.Zero, ErrNoMarks
	}
	sum := decimal.Zero
	for _, mk := range marks {
		d, err := markDecimal(mk.Subject, mk.Mark)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(d)
	}
	return sum.Div(decimal.NewFromInt(int64(len(marks)))), nil
}

// markDecimal converts a mark, rejecting NaN and infinities.
func markDecimal(subject string, mark float64) (decimal.Decimal, error) {
	if math.IsNaN(mark) || math.IsInf(mark, 0) {
		return decimal.Zero, errors.Wrapf(ErrNonFiniteMark, "%q", subject)
	}
	return decimal.NewFromFloat(mark), nil
}
