// Package interp assembles a ready-to-run rail.State out of the builtin
// vocabulary, an optional stack of library lists, and an optional stdlib
// bootstrap, following the teacher's functional-options construction
// pattern (jcorbin-gothird's api.go/options.go New(opts ...VMOption)).
package interp

import (
	"fmt"
	"io"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/builtin"
	"github.com/jcorbin/rail/internal/logio"
	"github.com/jcorbin/rail/loader"
)

// Interpreter bundles a State ready to evaluate source, plus the logger a
// driver reports through.
type Interpreter struct {
	State State
	Log   logio.Levels
}

// State is an alias kept local to this package so Option implementations
// below don't need to qualify every reference to rail.State.
type State = rail.State

// Option configures an Interpreter under construction, mirroring the
// teacher's VMOption/options/apply trio.
type Option interface{ apply(b *builder) error }

type builder struct {
	conventions rail.RunConventions
	out         *rail.Output
	logOut      io.Writer
	libPaths    []string
	noStdlib    bool
	extra       []rail.CommandDef
}

// New builds an Interpreter: the builtin vocabulary merged into a fresh
// Dictionary, then each Option applied in order, then (unless WithNoStdlib
// was given) the stdlib bootstrap list loaded as a warn-only best effort
// (spec.md §6: "absence of the stdlib bootstrap directory is not an error").
func New(opts ...Option) (*Interpreter, error) {
	b := builder{
		conventions: rail.DefaultConventions(),
		out:         rail.DiscardOutput(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(&b); err != nil {
			return nil, err
		}
	}

	var log logio.Logger
	if b.logOut != nil {
		log.SetOutput(nopCloser{b.logOut})
	} else {
		log.SetOutput(nopCloser{io.Discard})
	}
	levels := logio.Levels{
		Log:         &log,
		InfoPrefix:  b.conventions.InfoPrefix,
		WarnPrefix:  b.conventions.WarnPrefix,
		ErrorPrefix: b.conventions.ErrorPrefix,
		FatalPrefix: b.conventions.FatalPrefix,
	}

	dict := builtin.All()
	for _, def := range b.extra {
		dict = dict.Define(def)
	}

	state := rail.NewMainState(dict, b.conventions).WithOutput(b.out)

	if len(b.libPaths) > 0 {
		var err error
		state, err = loadPaths(state, b.libPaths)
		if err != nil {
			return nil, err
		}
	}

	if !b.noStdlib {
		path, err := loader.StdlibBootstrapPath(b.conventions)
		if err != nil {
			levels.Warn("locating standard library: %+v", err)
		} else if next, err := loadPaths(state, []string{path}); err != nil {
			levels.Warn("standard library not loaded: %+v", err)
		} else {
			state = next
		}
	}

	return &Interpreter{State: state, Log: levels}, nil
}

func loadPaths(state State, paths []string) (State, error) {
	in, err := loader.Resolve(paths)
	if err != nil {
		return state, err
	}
	src, err := loader.ReadAll(in)
	if err != nil {
		return state, err
	}
	return state.EvalSource(src)
}

// Eval tokenizes and evaluates src against the Interpreter's current
// State, replacing it with the result on success. On error the State is
// left at the point of failure (spec.md §7), and the error is returned
// for the driver to report and decide whether to continue.
func (ip *Interpreter) Eval(src string) error {
	next, err := ip.State.EvalSource(src)
	ip.State = next
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WithConventions overrides the default RunConventions (executable name,
// version, log prefixes).
func WithConventions(conventions rail.RunConventions) Option {
	return optionFunc(func(b *builder) error { b.conventions = conventions; return nil })
}

// WithOutput directs `p`/`pl` and any other print commands to w.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(b *builder) error { b.out = rail.NewOutput(w); return nil })
}

// WithLog directs leveled log lines (info/warn/error/fatal) to w. Absent
// this option, log lines are discarded.
func WithLog(w io.Writer) Option {
	return optionFunc(func(b *builder) error { b.logOut = w; return nil })
}

// WithLibraryLists queues one or more `.txt` library lists (or bare
// `.rail` sources) to be resolved and evaluated, in order, before any
// caller-supplied program (spec.md §6 "Library lists").
func WithLibraryLists(paths ...string) Option {
	return optionFunc(func(b *builder) error { b.libPaths = append(b.libPaths, paths...); return nil })
}

// WithNoStdlib skips loading the standard library bootstrap list, for
// callers (e.g. tests) that want a bare interpreter with only the native
// vocabulary defined.
func WithNoStdlib() Option {
	return optionFunc(func(b *builder) error { b.noStdlib = true; return nil })
}

// WithExtraCommands merges additional native CommandDefs into the
// dictionary alongside the builtin vocabulary, for embedders extending the
// language with host-specific commands.
func WithExtraCommands(defs ...rail.CommandDef) Option {
	return optionFunc(func(b *builder) error { b.extra = append(b.extra, defs...); return nil })
}

type optionFunc func(b *builder) error

func (f optionFunc) apply(b *builder) error { return f(b) }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
