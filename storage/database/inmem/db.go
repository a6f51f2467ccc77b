package inmemdb

import (
	"sync"

	"github.com/trezcool/gradebook/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	// studentTable keeps rows in insertion order; roll numbers are not unique.
	studentTable struct {
		sync.RWMutex
		rows []student.Student
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{rows: make([]student.Student, 0)},
	}
	return db, nil
}
