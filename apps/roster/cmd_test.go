package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/services/logger"
)

const rosterJSON = `[
    {
        "type": "ScienceStudent",
        "name": "A",
        "rollNo": 1,
        "marks": {"Physics": 90, "Chemistry": 85, "Math": 95},
        "grade": "A"
    },
    {
        "type": "ArtsStudent",
        "name": "B",
        "rollNo": 2,
        "marks": {"History": 70, "Literature": 65, "Sociology": 75},
        "grade": null
    }
]`

// setup returns a commandLine reading input and the path of an (absent) roster file.
func setup(t *testing.T, input string) (*commandLine, *bytes.Buffer, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.json")
	std, _ := test.NewNullLogger()
	conf := &core.Config{Env: "TEST", TestMode: true, DataFile: path, LogLevel: "warn"}
	out := new(bytes.Buffer)
	return &commandLine{
		conf:   conf,
		std:    std,
		logger: logsvc.NewRollbarLogger(std, conf),
		in:     strings.NewReader(input),
		out:    out,
	}, out, path
}

func writeRoster(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	roster     string   // roster file content; none if empty
	wantErrStr string
	wantOut    []string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{
			name:    "list",
			args:    []string{"list"},
			roster:  rosterJSON,
			wantOut: []string{"Science Student Report:\nName: A, Roll No: 1\n", "Arts Student Report:\nName: B, Roll No: 2\n", "Grade: C"},
		},
		{name: "list: no file", args: []string{"list"}, wantOut: []string{msgNoStudents}},
		{name: "list: empty roster", args: []string{"list"}, roster: "[]", wantOut: []string{msgNoStudents}},
		{
			name:    "search",
			args:    []string{"search", "2"},
			roster:  rosterJSON,
			wantOut: []string{"Arts Student Report:\nName: B, Roll No: 2\nHistory: 70.0\nLiterature: 65.0\nSociology: 75.0\nGrade: C\n"},
		},
		{name: "search: not found", args: []string{"search", "9"}, roster: rosterJSON, wantErrStr: "The student with rollNo 9 doesn't exist!"},
		{name: "search: non-int", args: []string{"search", "lol"}, roster: rosterJSON, wantErrStr: "expected"},
		{name: "search: no args", args: []string{"search"}, wantErrStr: "rollNo"},
		{
			name:    "summary",
			args:    []string{"summary"},
			roster:  rosterJSON,
			wantOut: []string{"Roll No", "Average", "90.50", "70.00", "Science", "Arts"},
		},
		{name: "summary: no file", args: []string{"summary"}, wantOut: []string{msgNoStudents}},
		{name: "corrupt file", args: []string{"list"}, roster: "{lol", wantErrStr: "loading roster"},
		{name: "unknown type", args: []string{"list"}, roster: `[{"type": "MusicStudent"}]`, wantErrStr: "unknown student kind"},
		{name: "bad log level", args: []string{"--log-level", "lol", "list"}, wantErrStr: "parsing log level"},
		{name: "unknown command", args: []string{"lol"}, wantErrStr: "lol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out, path := setup(t, "")
			if tt.roster != "" {
				writeRoster(t, path, tt.roster)
			}

			err := cli.run(append([]string{"roster"}, tt.args...))
			if tt.wantErrStr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			} else if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("cli.run() output = %q, want it to contain %q", out.String(), want)
				}
			}
		})
	}
}

func Test_commandLine_fileFlag(t *testing.T) {
	cli, out, _ := setup(t, "")
	other := filepath.Join(t.TempDir(), "other.json")
	writeRoster(t, other, rosterJSON)

	if err := cli.run([]string{"roster", "--file", other, "search", "1"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if !strings.Contains(out.String(), "Name: A, Roll No: 1") {
		t.Errorf("cli.run() output = %q", out.String())
	}
}
