package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/student"
)

const indent = "    "

// JSONStore keeps the roster as a pretty-printed JSON array of student.Record.
type JSONStore struct {
	path string
}

var _ student.Store = (*JSONStore)(nil) // interface compliance check

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) LoadRecords() ([]student.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(student.ErrNoFile, s.path)
		}
		return nil, errors.Wrapf(err, "opening %s", s.path)
	}
	defer func() { _ = f.Close() }()

	var recs []student.Record
	if err = json.NewDecoder(f).Decode(&recs); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", s.path)
	}
	return recs, nil
}

// DumpRecords truncates the file and writes recs to it.
func (s *JSONStore) DumpRecords(recs []student.Record) (err error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", s.path)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = errors.Wrapf(cErr, "closing %s", s.path)
		}
	}()

	if recs == nil {
		recs = make([]student.Record, 0)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", indent)
	if err = enc.Encode(recs); err != nil {
		return errors.Wrapf(err, "encoding %s", s.path)
	}
	return nil
}
