package main

import (
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
)

func newLogger(verbose bool, name string) types.Logger {
	if !verbose {
		return types.NopLogger{}
	}
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName(appName),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)
	return &loggerAdapter{lgr.GetLogger(name)}
}

// loggerAdapter adapts glog.Logger to types.Logger
type loggerAdapter struct {
	l glog.Logger
}

func (a *loggerAdapter) Debug(msg string, args ...any) {
	a.l.Debug(msg, args...)
}

func (a *loggerAdapter) Info(msg string, args ...any) {
	a.l.Info(msg, args...)
}

func (a *loggerAdapter) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	a.l.Error(msg, args...)
}
