package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/trezcool/gradebook/core/student"
)

// Store mock
type Store struct {
	mock.Mock
}

// LoadRecords provides a mock function with given fields:
func (_m *Store) LoadRecords() ([]student.Record, error) {
	ret := _m.Called()

	var r0 []student.Record
	if rf, ok := ret.Get(0).(func() []student.Record); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]student.Record)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DumpRecords provides a mock function with given fields: recs
func (_m *Store) DumpRecords(recs []student.Record) error {
	ret := _m.Called(recs)

	var r0 error
	if rf, ok := ret.Get(0).(func([]student.Record) error); ok {
		r0 = rf(recs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
