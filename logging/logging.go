// Package logging is the planner's thin structured-logging layer.
//
// It generalizes a util.PrintLog/PrintVerbose/PrintError idiom onto a
// real structured logger (log15) instead of the standard library's log
// package, and replaces a library-side ErrorPolicy enum (whose
// FatalErr case called log.Fatal from inside library code) with a
// policy that never terminates the process from a non-main package.
package logging

import (
	"os"

	log15 "github.com/inconshreveable/log15/v3"
)

// Logger is the interface every planner package logs through. Passing
// nil to a constructor that accepts a Logger falls back to Discard.
type Logger interface {
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
}

// Discard drops every log line. It is the default for core packages
// (search, smoother) so that importing them never produces console
// noise unless a caller opts in with a real Logger.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debug(string, ...interface{}) {}
func (discard) Info(string, ...interface{})  {}
func (discard) Warn(string, ...interface{})  {}
func (discard) Error(string, ...interface{}) {}

// New builds a log15-backed Logger that writes leveled, structured
// records to stderr, tagged with the given component name. This is
// what cmd/planner wires into search and smoother.
func New(component string) Logger {
	root := log15.New("component", component)
	root.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
	return root
}

// NewVerbose is New with debug-level records enabled, mirroring a
// Verbose flag that gated debug-only output.
func NewVerbose(component string) Logger {
	root := log15.New("component", component)
	root.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
	return root
}

// Policy mirrors a util.ErrorPolicy idiom: how a caller wants a
// non-fatal error handled at the point it's discovered.
type Policy int

const (
	// Ignore drops the error entirely.
	Ignore Policy = iota
	// Log records the error at Error level and continues.
	Log
	// Fatal logs the error and exits the process. Reserved for cmd/
	// entrypoints; never used inside search or smoother.
	Fatal
)

// Handle applies policy to err using logger. It is a no-op for a nil
// err, matching the original util.HandleError contract.
func Handle(logger Logger, err error, policy Policy) {
	if err == nil {
		return
	}
	switch policy {
	case Ignore:
	case Log:
		logger.Error("encountered an error", "err", err)
	case Fatal:
		logger.Error("fatal error", "err", err)
		os.Exit(1)
	}
}
