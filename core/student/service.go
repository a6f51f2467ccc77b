package student

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/gradebook/core"
)

var (
	// errors
	ErrNotFound       = errors.New("student not found")
	ErrNoStudents     = errors.New("no student is present")
	ErrNothingToSave  = errors.New("no student is present to save")
	ErrNoFile         = errors.New("no roster file")
	ErrUnknownKind    = errors.New("unknown student kind")
	ErrMissingSubject = errors.New("missing subject mark")
	ErrNoMarks        = errors.New("no marks to average")
	ErrNonFiniteMark  = errors.New("mark is not a finite number")
)

type (
	// Repository holds the roster in insertion order.
	// Lookups by roll number always resolve to the first matching Student.
	Repository interface {
		AppendStudent(std Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByRollNo(rollNo int) (Student, error)
		// ReplaceStudent swaps the first Student matching rollNo for std at the same position
		// and returns the replaced Student.
		ReplaceStudent(rollNo int, std Student) (Student, error)
		// DeleteStudent removes the first Student matching rollNo and returns it.
		DeleteStudent(rollNo int) (Student, error)
		ReplaceAllStudents(stds []Student) error
		CountStudents() int
	}

	// Store persists the roster between runs.
	Store interface {
		// LoadRecords returns ErrNoFile when nothing was ever saved.
		LoadRecords() ([]Record, error)
		DumpRecords(recs []Record) error
	}

	Service struct {
		repo   Repository
		store  Store
		logger core.Logger
	}
)

func NewService(repo Repository, store Store, logger core.Logger) *Service {
	return &Service{repo: repo, store: store, logger: logger}
}

// Add appends std as given, computing its grade if it has none.
// Duplicate roll numbers are accepted.
func (svc *Service) Add(std Student) (Student, error) {
	if std.Grade == "" {
		if err := std.CalculateGrade(); err != nil {
			return Student{}, err
		}
	}
	if _, err := svc.repo.GetStudentByRollNo(std.RollNo); err == nil {
		svc.logger.Warn("duplicate roll number added", map[string]interface{}{"rollNo": std.RollNo})
	}
	std, err := svc.repo.AppendStudent(std)
	if err != nil {
		return Student{}, errors.Wrap(err, "adding student")
	}
	svc.logger.Debug("student added", map[string]interface{}{"rollNo": std.RollNo, "grade": std.Grade})
	return std, nil
}

// Create validates ns and adds the resulting Student.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	std, err := New(ns.Name, ns.RollNo, ns.Kind, ns.Marks)
	if err != nil {
		return Student{}, err
	}
	return svc.Add(std)
}

func (svc *Service) Get(rollNo int) (Student, error) {
	return svc.repo.GetStudentByRollNo(rollNo)
}

func (svc *Service) Delete(rollNo int) (Student, error) {
	std, err := svc.repo.DeleteStudent(rollNo)
	if err != nil {
		return Student{}, err
	}
	svc.logger.Debug("student deleted", map[string]interface{}{"rollNo": rollNo})
	return std, nil
}

// Search returns the report of the first Student matching rollNo.
func (svc *Service) Search(rollNo int) (string, error) {
	std, err := svc.repo.GetStudentByRollNo(rollNo)
	if err != nil {
		return "", err
	}
	return std.GenerateReport()
}

// Update replaces the first Student matching rollNo with a fresh Student built from us,
// at the same roster position. The new Student may carry a different roll number.
func (svc *Service) Update(rollNo int, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	std, err := New(us.Name, us.RollNo, us.Kind, us.Marks)
	if err != nil {
		return Student{}, err
	}
	orig, err := svc.repo.ReplaceStudent(rollNo, std)
	if err != nil {
		return Student{}, err
	}
	svc.logger.Debug("student updated", map[string]interface{}{"rollNo": rollNo, "diff": reportDiff(orig, std)})
	return std, nil
}

// List yields the report of every Student in roster order.
// Reports are rendered as the sequence is consumed.
func (svc *Service) List() (iter.Seq2[string, error], error) {
	stds, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	if len(stds) == 0 {
		return nil, ErrNoStudents
	}
	return func(yield func(string, error) bool) {
		for i := range stds {
			report, err := stds[i].GenerateReport()
			if err != nil {
				err = errors.Wrapf(err, "student %d", stds[i].RollNo)
			}
			if !yield(report, err) {
				return
			}
		}
	}, nil
}

// Summaries returns one row per Student in roster order.
func (svc *Service) Summaries() ([]Summary, error) {
	stds, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	if len(stds) == 0 {
		return nil, ErrNoStudents
	}
	rows := make([]Summary, 0, len(stds))
	for _, std := range stds {
		avg, err := Average(std.Kind, std.Marks)
		if err != nil {
			return nil, errors.Wrapf(err, "student %d", std.RollNo)
		}
		rows = append(rows, Summary{
			RollNo:  std.RollNo,
			Name:    std.Name,
			Kind:    std.Kind,
			Average: avg.StringFixed(2),
			Grade:   LetterGrade(avg),
		})
	}
	return rows, nil
}

func (svc *Service) Count() int {
	return svc.repo.CountStudents()
}

// Save writes the whole roster to the Store.
// An empty roster is not written, so a previously saved file is left untouched.
func (svc *Service) Save() error {
	stds, err := svc.repo.QueryAllStudents()
	if err != nil {
		return err
	}
	if len(stds) == 0 {
		return ErrNothingToSave
	}
	recs, err := ToRecords(stds)
	if err != nil {
		return errors.Wrap(err, "saving roster")
	}
	if err = svc.store.DumpRecords(recs); err != nil {
		return errors.Wrap(err, "saving roster")
	}
	svc.logger.Info("roster saved", map[string]interface{}{"students": len(recs)})
	return nil
}

// Load replaces the roster with the Store's content.
// On any failure, including ErrNoFile, the roster is left unchanged.
func (svc *Service) Load() error {
	recs, err := svc.store.LoadRecords()
	if err != nil {
		if errors.Cause(err) == ErrNoFile {
			return ErrNoFile
		}
		return errors.Wrap(err, "loading roster")
	}
	stds, err := FromRecords(recs)
	if err != nil {
		return errors.Wrap(err, "loading roster")
	}
	if err = svc.repo.ReplaceAllStudents(stds); err != nil {
		return errors.Wrap(err, "loading roster")
	}
	svc.logger.Info("roster loaded", map[string]interface{}{"students": len(stds)})
	return nil
}

// reportDiff is a unified diff between two students' reports, for logs.
func reportDiff(from, to Student) string {
	a, _ := from.GenerateReport()
	b, _ := to.GenerateReport()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "before",
		ToFile:   "after",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}
