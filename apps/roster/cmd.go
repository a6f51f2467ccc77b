package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/storage/database/inmem"
	"github.com/trezcool/gradebook/storage/file"
)

type commandLine struct {
	conf   *core.Config
	std    *logrus.Logger
	logger core.Logger
	in     io.Reader
	out    io.Writer
}

func (cli *commandLine) newApp() *kingpin.Application {
	app := kingpin.New("roster", "Keep a roster of Science and Arts students and grade them.")
	app.Writer(cli.out)
	app.UsageWriter(cli.out)
	return app
}

func (cli *commandLine) run(args []string) error {
	app := cli.newApp()
	dataFile := app.Flag("file", "JSON file the roster is loaded from and saved to.").
		Short('f').Default(cli.conf.DataFile).String()
	logLevel := app.Flag("log-level", "Log level: debug, info, warn, error, fatal, panic.").
		Default(cli.conf.LogLevel).String()

	shellCmd := app.Command("shell", "Run the interactive menu.").Default()
	listCmd := app.Command("list", "Print the report of every student.")
	searchCmd := app.Command("search", "Print the report of one student.")
	searchRollNo := searchCmd.Arg("rollNo", "Roll number of the student.").Required().Int()
	summaryCmd := app.Command("summary", "Print a table of every student's average and grade.")

	cmd, err := app.Parse(args[1:])
	if err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return errors.Wrapf(err, "parsing log level %q", *logLevel)
	}
	cli.std.SetLevel(lvl)

	svc, err := cli.newService(*dataFile)
	if err != nil {
		return err
	}

	switch cmd {
	case shellCmd.FullCommand():
		return newShell(svc, cli.logger, cli.in, cli.out).run()
	case listCmd.FullCommand():
		if err = cli.load(svc); err != nil {
			return err
		}
		return cli.list(svc)
	case searchCmd.FullCommand():
		if err = cli.load(svc); err != nil {
			return err
		}
		return cli.search(svc, *searchRollNo)
	case summaryCmd.FullCommand():
		if err = cli.load(svc); err != nil {
			return err
		}
		return cli.summary(svc)
	}
	return nil
}

func (cli *commandLine) newService(dataFile string) (*student.Service, error) {
	db, err := inmemdb.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening roster")
	}
	return student.NewService(
		inmemdb.NewStudentRepository(db),
		filestore.NewJSONStore(dataFile),
		cli.logger,
	), nil
}

// load reads the roster; a missing file leaves it empty.
func (cli *commandLine) load(svc *student.Service) error {
	if err := svc.Load(); err != nil && errors.Cause(err) != student.ErrNoFile {
		return err
	}
	return nil
}

func (cli *commandLine) list(svc *student.Service) error {
	reports, err := svc.List()
	if err != nil {
		if errors.Cause(err) == student.ErrNoStudents {
			_, _ = fmt.Fprintln(cli.out, msgNoStudents)
			return nil
		}
		return err
	}
	for report, err := range reports {
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cli.out, report)
	}
	return nil
}

func (cli *commandLine) search(svc *student.Service, rollNo int) error {
	report, err := svc.Search(rollNo)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return fmt.Errorf(msgNotFound, rollNo)
		}
		return err
	}
	_, _ = fmt.Fprintln(cli.out, report)
	return nil
}

func (cli *commandLine) summary(svc *student.Service) error {
	rows, err := svc.Summaries()
	if err != nil {
		if errors.Cause(err) == student.ErrNoStudents {
			_, _ = fmt.Fprintln(cli.out, msgNoStudents)
			return nil
		}
		return err
	}
	renderSummary(cli.out, rows)
	return nil
}
