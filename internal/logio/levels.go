package logio

import "strings"

// Levels wraps a Logger with four named severities, each writing through
// Logger.Printf under a caller-supplied prefix (spec.md §6 "Logging": "info,
// warn, error, fatal ... each prefixed with a convention-defined string").
// A prefix such as "info:" yields lines like "info: message": Printf puts its
// own ": " after the level, so a trailing colon on the prefix is dropped.
type Levels struct {
	Log *Logger

	InfoPrefix  string
	WarnPrefix  string
	ErrorPrefix string
	FatalPrefix string
}

// Info logs an informational line.
func (l Levels) Info(mess string, args ...interface{}) {
	l.Log.Printf(level(l.InfoPrefix), mess, args...)
}

// Warn logs a warning line, e.g. a missing optional stdlib.
func (l Levels) Warn(mess string, args ...interface{}) {
	l.Log.Printf(level(l.WarnPrefix), mess, args...)
}

// Error logs an error line and marks the logger's ExitCode non-zero.
func (l Levels) Error(mess string, args ...interface{}) {
	l.Log.Printf(level(l.ErrorPrefix), mess, args...)
	l.Log.Lock()
	l.Log.exitCode = 1
	l.Log.Unlock()
}

// Fatal logs a fatal line and marks the logger's ExitCode non-zero; the core
// library never calls os.Exit itself, only a driver does, via
// Logger.ExitCode (spec.md §5: SIGINT at the REPL is reported fatal, then
// the process exits cleanly).
func (l Levels) Fatal(mess string, args ...interface{}) {
	l.Log.Printf(level(l.FatalPrefix), mess, args...)
	l.Log.Lock()
	l.Log.exitCode = 1
	l.Log.Unlock()
}

func level(prefix string) string { return strings.TrimSuffix(prefix, ":") }
