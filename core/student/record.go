package student

import "github.com/pkg/errors"

// Record is the persisted form of a Student.
type Record struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	RollNo int     `json:"rollNo"`
	Marks  Marks   `json:"marks"`
	Grade  *string `json:"grade"`
}

// ToRecord maps the student to its persisted form. An uncomputed grade is stored as null.
func (s Student) ToRecord() (Record, error) {
	p, err := policyOf(s.Kind)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Type:   p.tag,
		Name:   s.Name,
		RollNo: s.RollNo,
		Marks:  s.Marks.Clone(),
	}
	if s.Grade != "" {
		grade := string(s.Grade)
		rec.Grade = &grade
	}
	return rec, nil
}

// FromRecord rebuilds a Student from its persisted form.
// The stored grade is kept as is; it is refreshed on the next report.
func FromRecord(rec Record) (Student, error) {
	kind, ok := kindOfTag(rec.Type)
	if !ok {
		return Student{}, errors.Wrapf(ErrUnknownKind, "record type %q", rec.Type)
	}
	std := Student{
		Name:   rec.Name,
		RollNo: rec.RollNo,
		Kind:   kind,
		Marks:  rec.Marks.Clone(),
	}
	if rec.Grade != nil {
		std.Grade = Grade(*rec.Grade)
	}
	return std, nil
}

// ToRecords maps students to records, in order.
func ToRecords(stds []Student) ([]Record, error) {
	recs := make([]Record, 0, len(stds))
	for _, std := range stds {
		rec, err := std.ToRecord()
		if err != nil {
			return nil, errors.Wrapf(err, "student %d", std.RollNo)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// FromRecords rebuilds students from records, in order. It fails on the first bad record.
func FromRecords(recs []Record) ([]Student, error) {
	stds := make([]Student, 0, len(recs))
	for i, rec := range recs {
		std, err := FromRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "record #%d", i)
		}
		stds = append(stds, std)
	}
	return stds, nil
}

func kindOfTag(tag string) (Kind, bool) {
	for kind, p := range policies {
		if p.tag == tag {
			return kind, true
		}
	}
	return "", false
}
