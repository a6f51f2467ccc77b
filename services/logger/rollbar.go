package logsvc

import (
	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"github.com/sirupsen/logrus"

	"github.com/trezcool/gradebook/core"
)

// RollbarLogger writes every entry to a logrus logger and mirrors it to rollbar
// when rollbar is enabled.
type RollbarLogger struct {
	std *logrus.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *logrus.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	l := &RollbarLogger{std: std}
	l.Enable(conf.RollbarToken != "" && !conf.TestMode)
	return l
}

var setEnabledFunc = rollbar.SetEnabled // mockable

// Enable turns rollbar reporting on or off; logrus output is unaffected.
func (l RollbarLogger) Enable(enabled bool) {
	setEnabledFunc(enabled)
}

// expected fmt: msg | error, map[string]interface{}
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	return append(newArgs, args...)
}

// entry turns args into logrus fields: maps are merged, an error goes under logrus.ErrorKey.
func (l RollbarLogger) entry(args []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	var extra []interface{}
	for _, arg := range args {
		switch a := arg.(type) {
		case map[string]interface{}:
			for k, v := range a {
				fields[k] = v
			}
		case error:
			fields[logrus.ErrorKey] = a
		default:
			extra = append(extra, a)
		}
	}
	if len(extra) > 0 {
		fields["args"] = extra
	}
	return l.std.WithFields(fields)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	if !l.std.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	rollbar.Debug(l.prepare(msg, args)...)
	l.entry(args).Debug(msg)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.entry(args).Info(msg)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.entry(args).Warn(msg)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.entry(args).Error(msg)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	rollbar.Wait()
	l.entry(args).Fatal(msg)
}
