package student

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "s", want: KindScience},
		{input: "S", want: KindScience},
		{input: "science", want: KindScience},
		{input: " Science ", want: KindScience},
		{input: "a", want: KindArts},
		{input: "ARTS", want: KindArts},
		{input: "", wantErr: true},
		{input: "music", wantErr: true},
		{input: "sci", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_Subjects(t *testing.T) {
	assert.Equal(t, []string{"Physics", "Chemistry", "Math"}, KindScience.Subjects())
	assert.Equal(t, []string{"History", "Literature", "Sociology"}, KindArts.Subjects())
	assert.Nil(t, Kind("Music").Subjects())

	// callers get a copy
	subjects := KindArts.Subjects()
	subjects[0] = "Music"
	assert.Equal(t, "History", KindArts.Subjects()[0])
}

func TestMarks_JSON(t *testing.T) {
	marks := NewMarks([]string{"Sociology", "History", "Literature"}, []float64{75, 70.5, 65})
	data, err := json.Marshal(marks)
	require.NoError(t, err)
	assert.Equal(t, `{"Sociology":75,"History":70.5,"Literature":65}`, string(data))

	var decoded Marks
	require.NoError(t, json.Unmarshal([]byte(`{"Math": 95, "Physics": 90.0, "Chemistry": 85}`), &decoded))
	assert.Equal(t, []string{"Math", "Physics", "Chemistry"}, decoded.Subjects())
	mark, ok := decoded.Get("Physics")
	assert.True(t, ok)
	assert.Equal(t, 90.0, mark)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))
	assert.Empty(t, decoded)

	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.Nil(t, decoded)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"Math": "ninety"}`), &decoded))
}

func TestMarks_Set(t *testing.T) {
	var marks Marks
	marks.Set("Math", 10)
	marks.Set("Physics", 20)
	marks.Set("Math", 30)
	assert.Equal(t, Marks{{"Math", 30}, {"Physics", 20}}, marks)

	_, ok := marks.Get("History")
	assert.False(t, ok)
}

func TestNew_CopiesMarks(t *testing.T) {
	marks := scienceMarks(90, 90, 90)
	std, err := New("A", 1, KindScience, marks)
	require.NoError(t, err)
	assert.Equal(t, GradeA, std.Grade)

	marks[0].Mark = 0
	got, _ := std.Marks.Get("Physics")
	assert.Equal(t, 90.0, got)

	_, err = New("B", 2, KindScience, artsMarks(1, 2, 3))
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestNewStudent_Validate(t *testing.T) {
	tests := []struct {
		name       string
		ns         NewStudent
		wantFields map[string]string
	}{
		{name: "science", ns: NewStudent{Name: " A ", RollNo: 1, Kind: KindScience, Marks: scienceMarks(1, 2, 3)}},
		{name: "arts any order", ns: NewStudent{Name: "B", RollNo: 2, Kind: KindArts, Marks: NewMarks([]string{"Sociology", "Literature", "History"}, []float64{1, 2, 3})}},
		{name: "blank name allowed", ns: NewStudent{RollNo: 3, Kind: KindArts, Marks: artsMarks(1, 2, 3)}},
		{
			name:       "no kind",
			ns:         NewStudent{Name: "C", Marks: artsMarks(1, 2, 3)},
			wantFields: map[string]string{"kind": "this field is required"},
		},
		{
			name:       "unknown kind",
			ns:         NewStudent{Name: "C", Kind: "Music", Marks: artsMarks(1, 2, 3)},
			wantFields: map[string]string{"kind": "unknown student kind"},
		},
		{
			name:       "no marks",
			ns:         NewStudent{Name: "C", Kind: KindArts},
			wantFields: map[string]string{"marks": "this field is required"},
		},
		{
			name:       "wrong subjects",
			ns:         NewStudent{Name: "C", Kind: KindScience, Marks: artsMarks(1, 2, 3)},
			wantFields: map[string]string{"marks": "marks must cover exactly the subjects of the student kind"},
		},
		{
			name:       "missing subject",
			ns:         NewStudent{Name: "C", Kind: KindArts, Marks: NewMarks([]string{"History", "Literature"}, []float64{1, 2})},
			wantFields: map[string]string{"marks": "marks must cover exactly the subjects of the student kind"},
		},
		{
			name:       "duplicated subject",
			ns:         NewStudent{Name: "C", Kind: KindArts, Marks: NewMarks([]string{"History", "History", "Literature"}, []float64{1, 2, 3})},
			wantFields: map[string]string{"marks": "marks must cover exactly the subjects of the student kind"},
		},
		{
			name:       "NaN mark",
			ns:         NewStudent{Name: "C", Kind: KindArts, Marks: artsMarks(math.NaN(), 2, 3)},
			wantFields: map[string]string{"mark": "mark must be a finite number"},
		},
		{
			name:       "infinite mark",
			ns:         NewStudent{Name: "C", Kind: KindScience, Marks: scienceMarks(1, math.Inf(-1), 3)},
			wantFields: map[string]string{"mark": "mark must be a finite number"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ns.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok, "Validate() error = %T, want *core.ValidationError", err)
			got := make(map[string]string, len(vErr.Fields))
			for _, fld := range vErr.Fields {
				got[fld.Field] = fld.Error
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestNewStudent_ValidateCleansName(t *testing.T) {
	ns := NewStudent{Name: "  Ada  ", Kind: KindArts, Marks: artsMarks(1, 2, 3)}
	require.NoError(t, ns.Validate())
	assert.Equal(t, "Ada", ns.Name)
}

func TestUpdateStudent_Validate(t *testing.T) {
	us := UpdateStudent{Name: "A", RollNo: 9, Kind: KindArts, Marks: scienceMarks(1, 2, 3)}
	err := us.Validate()
	assert.True(t, core.IsValidation(err))

	us.Marks = artsMarks(1, 2, 3)
	assert.NoError(t, us.Validate())
}
