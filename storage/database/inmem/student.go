package inmemdb

import (
	"github.com/trezcool/gradebook/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func copyStudent(std student.Student) student.Student {
	std.Marks = std.Marks.Clone()
	return std
}

func (repo *studentRepository) query() []student.Student {
	stds := make([]student.Student, 0, len(repo.db.rows))
	for _, std := range repo.db.rows {
		stds = append(stds, copyStudent(std))
	}
	return stds
}

// indexOf returns the position of the first row matching rollNo, or -1.
func (repo *studentRepository) indexOf(rollNo int) int {
	for i, std := range repo.db.rows {
		if std.RollNo == rollNo {
			return i
		}
	}
	return -1
}

func (repo *studentRepository) AppendStudent(std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, copyStudent(std))
	return std, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByRollNo(rollNo int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if idx := repo.indexOf(rollNo); idx >= 0 {
		return copyStudent(repo.db.rows[idx]), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) ReplaceStudent(rollNo int, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := repo.indexOf(rollNo)
	if idx < 0 {
		return student.Student{}, student.ErrNotFound
	}
	orig := repo.db.rows[idx]
	repo.db.rows[idx] = copyStudent(std)
	return orig, nil
}

func (repo *studentRepository) DeleteStudent(rollNo int) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := repo.indexOf(rollNo)
	if idx < 0 {
		return student.Student{}, student.ErrNotFound
	}
	orig := repo.db.rows[idx]
	repo.db.rows = append(repo.db.rows[:idx], repo.db.rows[idx+1:]...)
	return orig, nil
}

func (repo *studentRepository) ReplaceAllStudents(stds []student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]student.Student, 0, len(stds))
	for _, std := range stds {
		rows = append(rows, copyStudent(std))
	}
	repo.db.rows = rows
	return nil
}

func (repo *studentRepository) CountStudents() int {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.rows)
}
