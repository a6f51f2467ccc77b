package logsvc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewConsoleLogger returns a text logrus logger writing to out at the given level
// (debug, info, warn, error, fatal, panic).
func NewConsoleLogger(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", level)
	}
	std := logrus.New()
	std.SetOutput(out)
	std.SetLevel(lvl)
	std.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return std, nil
}
