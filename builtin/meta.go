package builtin

import (
	"fmt"

	"github.com/jcorbin/rail"
)

// Meta is the meta vocabulary group (spec.md §4.4.4 "Meta"): type defs
// quote-all version, plus the print commands and `stack` introspection
// supplemented from original_source/src/corelib/display.rs and
// rail_machine.rs (SPEC_FULL.md §4.5).
func Meta() []rail.CommandDef {
	return []rail.CommandDef{
		infallible("type", "v -> string : the name of v's type", []rail.Tag{rail.TagAny}, []rail.Tag{rail.TagString},
			func(s rail.State) rail.State {
				s, a := pop1(s)
				return s.Push(rail.String(a.Tag().String()))
			}),

		infallible("defs", "-> quote : every defined command name, sorted", nil, []rail.Tag{rail.TagQuote},
			func(s rail.State) rail.State {
				names := s.Dictionary.Names()
				vs := make([]rail.Value, len(names))
				for i, n := range names {
					vs[i] = rail.String(n)
				}
				return s.Push(rail.QuoteOf(s.Dictionary, vs...))
			}),

		infallible("quote-all", "-> quote : wrap the whole running state as a quote, one level up",
			nil, []rail.Tag{rail.TagQuote},
			func(s rail.State) rail.State {
				wrapper := rail.State{Dictionary: s.Dictionary, Context: rail.MainContext(), Conventions: s.Conventions, Out: s.Out}
				captured := s
				wrapperForParent := wrapper
				captured.Context = rail.QuotationContext(&wrapperForParent)
				return wrapper.Push(rail.Quote(captured))
			}),

		infallible("version", "-> string : the interpreter version", nil, []rail.Tag{rail.TagString},
			func(s rail.State) rail.State { return s.Push(rail.String(s.Conventions.Version)) }),

		infallible("stack", "-> quote : a snapshot of the current stack, without consuming it",
			nil, []rail.Tag{rail.TagQuote},
			func(s rail.State) rail.State {
				return s.Push(rail.QuoteOf(s.Dictionary, s.Stack.Values()...))
			}),

		infallible("p", "v -> : print v with no trailing newline", []rail.Tag{rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a := pop1(s)
				fmt.Fprint(s.Out, displayText(a))
				return s
			}),
		infallible("pl", "v -> : print v followed by a newline", []rail.Tag{rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a := pop1(s)
				fmt.Fprintln(s.Out, displayText(a))
				return s
			}),
	}
}

// displayText renders v the way the print commands do: a String prints its
// raw contents with no surrounding quotes, unlike Value.String's quoted form
// used everywhere else (stack/quote display).
func displayText(v rail.Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return v.String()
}
