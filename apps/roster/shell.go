package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
)

var isTerminalFunc = term.IsTerminal // mockable

// messages
const (
	msgMenu = `-----Welcome to Student Grading System-----
1. Add new student
2. Delete student
3. Search student
4. Update student
5. List all student
6. Save to file
7. Load from file
0. Exit`

	msgInvalidInt       = "Invalid input! Please enter integer value!"
	msgInvalidRollNo    = "Invalid Input! Please enter integer value in rollNo"
	msgInvalidFloat     = "Invalid input! Please enter float value"
	msgInvalidType      = "Invalid type."
	msgInvalidChoice    = "Invalid choice. Try again."
	msgAdded            = "Student added successfully."
	msgDeleted          = "Student %s with rollNo %d is deleted successfully"
	msgUpdated          = "Student updated successfully!"
	msgNotFound         = "The student with rollNo %d doesn't exist!"
	msgNoStudents       = "No student is present!!"
	msgSaved            = "Student Data is saved to file."
	msgNothingToSave    = "No student is present to save student data in file!!"
	msgLoaded           = "Student Data is loaded from file."
	msgNoFile           = "No file exist!!"
	msgExiting          = "Exiting the program..."
	msgSavingAndExiting = "Saving student data in file and Exiting the program..."
)

// shell is the interactive menu over a student.Service.
// It owns every console message; the service only returns values and errors.
type shell struct {
	svc    *student.Service
	logger core.Logger
	in     *bufio.Scanner
	out    io.Writer
	echo   bool // print consumed answers (stdin is not a terminal)
}

func newShell(svc *student.Service, logger core.Logger, in io.Reader, out io.Writer) *shell {
	echo := true
	if f, ok := in.(*os.File); ok && isTerminalFunc(int(f.Fd())) {
		echo = false
	}
	return &shell{
		svc:    svc,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
		echo:   echo,
	}
}

// run loads the roster and serves the menu until Exit or end of input,
// both of which save the roster.
func (sh *shell) run() error {
	if err := sh.svc.Load(); err != nil {
		if errors.Cause(err) != student.ErrNoFile {
			return err
		}
		sh.println(msgNoFile)
	}

	for {
		sh.println(msgMenu)
		line, err := sh.prompt("Enter a choice(0-7): ")
		if err != nil {
			return sh.exit(err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			sh.println(msgInvalidInt)
			continue
		}

		switch choice {
		case 1:
			err = sh.add()
		case 2:
			err = sh.delete()
		case 3:
			err = sh.search()
		case 4:
			err = sh.update()
		case 5:
			err = sh.list()
		case 6:
			err = sh.save()
		case 7:
			err = sh.load()
		case 0:
			return sh.exit(nil)
		default:
			sh.println(msgInvalidChoice)
		}
		if err != nil {
			if err == io.EOF {
				return sh.exit(err)
			}
			sh.report(err)
		}
	}
}

func (sh *shell) add() error {
	name, rollNo, kind, marks, err := sh.readStudent(msgInvalidInt)
	if err != nil {
		return err
	}
	if _, err = sh.svc.Create(student.NewStudent{Name: name, RollNo: rollNo, Kind: kind, Marks: marks}); err != nil {
		return err
	}
	sh.println(msgAdded)
	return nil
}

func (sh *shell) delete() error {
	rollNo, err := sh.promptInt("Enter student rollNo which you want to delete: ", msgInvalidRollNo)
	if err != nil {
		return err
	}
	std, err := sh.svc.Delete(rollNo)
	if err != nil {
		return sh.notFound(err, rollNo)
	}
	sh.printf(msgDeleted+"\n", std.Name, std.RollNo)
	return nil
}

func (sh *shell) search() error {
	rollNo, err := sh.promptInt("Enter student rollNo which you want to search: ", msgInvalidRollNo)
	if err != nil {
		return err
	}
	report, err := sh.svc.Search(rollNo)
	if err != nil {
		return sh.notFound(err, rollNo)
	}
	sh.println(report)
	return nil
}

// update asks for the replacement fields only once the student is known to exist.
func (sh *shell) update() error {
	rollNo, err := sh.promptInt("Enter student rollNo which you want to update: ", msgInvalidRollNo)
	if err != nil {
		return err
	}
	if _, err = sh.svc.Get(rollNo); err != nil {
		return sh.notFound(err, rollNo)
	}
	name, newRollNo, kind, marks, err := sh.readStudent(msgInvalidRollNo)
	if err != nil {
		return err
	}
	us := student.UpdateStudent{Name: name, RollNo: newRollNo, Kind: kind, Marks: marks}
	if _, err = sh.svc.Update(rollNo, us); err != nil {
		return sh.notFound(err, rollNo)
	}
	sh.println(msgUpdated)
	return nil
}

func (sh *shell) list() error {
	reports, err := sh.svc.List()
	if err != nil {
		if errors.Cause(err) == student.ErrNoStudents {
			sh.println(msgNoStudents)
			return nil
		}
		return err
	}
	for report, err := range reports {
		if err != nil {
			return err
		}
		sh.println(report)
	}
	return nil
}

func (sh *shell) save() error {
	if err := sh.svc.Save(); err != nil {
		if errors.Cause(err) == student.ErrNothingToSave {
			sh.println(msgNothingToSave)
			return nil
		}
		return err
	}
	sh.println(msgSaved)
	return nil
}

func (sh *shell) load() error {
	if err := sh.svc.Load(); err != nil {
		if errors.Cause(err) == student.ErrNoFile {
			sh.println(msgNoFile)
			return nil
		}
		return err
	}
	sh.println(msgLoaded)
	return nil
}

// exit saves the roster. cause is the error that ended the session, if any;
// io.EOF is a normal end of input.
func (sh *shell) exit(cause error) error {
	if cause != nil && cause != io.EOF {
		return cause
	}
	if cause == io.EOF {
		sh.println("")
	}
	if err := sh.svc.Save(); err != nil {
		if errors.Cause(err) != student.ErrNothingToSave {
			return err
		}
		sh.println(msgNothingToSave)
		sh.println(msgExiting)
		return nil
	}
	sh.println(msgSavingAndExiting)
	return nil
}

// readStudent prompts for every field of a Student. intErrMsg is shown for a bad roll number.
func (sh *shell) readStudent(intErrMsg string) (name string, rollNo int, kind student.Kind, marks student.Marks, err error) {
	if name, err = sh.prompt("Enter student name: "); err != nil {
		return
	}
	if rollNo, err = sh.promptInt("Enter student rollNo: ", intErrMsg); err != nil {
		return
	}
	var kindStr string
	if kindStr, err = sh.prompt("Enter student type ('s' for science/'a' for arts): "); err != nil {
		return
	}
	if kind, err = student.ParseKind(kindStr); err != nil {
		err = core.NewArgumentError(msgInvalidType)
		return
	}
	subjects := kind.Subjects()
	marks = make(student.Marks, 0, len(subjects))
	for _, subject := range subjects {
		var mark float64
		if mark, err = sh.promptFloat(fmt.Sprintf("Enter marks of %s: ", subject)); err != nil {
			return
		}
		marks = append(marks, student.Mark{Subject: subject, Mark: mark})
	}
	return
}

// prompt returns the next input line, or io.EOF once the input is exhausted.
func (sh *shell) prompt(msg string) (string, error) {
	sh.printf("%s", msg)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", io.EOF
	}
	line := sh.in.Text()
	if sh.echo {
		sh.println(line)
	}
	return line, nil
}

func (sh *shell) promptInt(msg, errMsg string) (int, error) {
	line, err := sh.prompt(msg)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, core.NewArgumentError(errMsg)
	}
	return n, nil
}

func (sh *shell) promptFloat(msg string) (float64, error) {
	line, err := sh.prompt(msg)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, core.NewArgumentError(msgInvalidFloat)
	}
	return f, nil
}

// notFound turns student.ErrNotFound into the user-facing message.
func (sh *shell) notFound(err error, rollNo int) error {
	if errors.Cause(err) == student.ErrNotFound {
		return core.NewArgumentError(fmt.Sprintf(msgNotFound, rollNo))
	}
	return err
}

// report prints an operation error; the menu loop carries on.
func (sh *shell) report(err error) {
	switch {
	case core.IsArgument(err):
		sh.println(errors.Cause(err).Error())
	case core.IsValidation(err):
		sh.println("Invalid input!")
		for _, fErr := range errors.Cause(err).(*core.ValidationError).Fields {
			sh.printf("  %s: %s\n", fErr.Field, fErr.Error)
		}
	default:
		sh.logger.Error("operation failed", err)
		sh.printf("Error: %v\n", err)
	}
}

func (sh *shell) println(s string) {
	_, _ = fmt.Fprintln(sh.out, s)
}

func (sh *shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}
