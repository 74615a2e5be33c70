// Package builtin implements the default command vocabulary merged into a
// fresh interpreter dictionary: stack shuffling, arithmetic, boolean and
// comparison, sequence, string, symbol-table, branching, definition, and
// execution-control commands (spec.md §4.4.4). Each file covers one
// vocabulary group and exports a []rail.CommandDef; All merges every group.
package builtin

import "github.com/jcorbin/rail"

func def(name, desc string, consumes, produces []rail.Tag, action rail.Action) rail.CommandDef {
	return rail.CommandDef{
		Name:        name,
		Description: desc,
		Consumes:    consumes,
		Produces:    produces,
		Action:      action,
	}
}

func fallible(name, desc string, consumes, produces []rail.Tag, f func(rail.State) (rail.State, error)) rail.CommandDef {
	return def(name, desc, consumes, produces, rail.NativeFallible(f))
}

func infallible(name, desc string, consumes, produces []rail.Tag, f func(rail.State) rail.State) rail.CommandDef {
	return def(name, desc, consumes, produces, rail.NativeInfallible(f))
}

// pop1 pops exactly one value. The caller's Consumes declaration already
// guarantees the stack is deep enough by the time a native action runs.
func pop1(s rail.State) (rail.State, rail.Value) {
	next, v, _ := s.Pop()
	return next, v
}

func pop2(s rail.State) (rail.State, rail.Value, rail.Value) {
	s, b := pop1(s)
	s, a := pop1(s)
	return s, a, b
}

func pop3(s rail.State) (rail.State, rail.Value, rail.Value, rail.Value) {
	s, c := pop1(s)
	s, a, b := pop2(s)
	return s, a, b, c
}

func wantNumber(op string, v rail.Value) (float64, error) {
	f, ok := v.AsFloat()
	if !ok {
		return 0, rail.TypeMismatchError{Op: op, Wanted: "number", Actual: v.Tag().String()}
	}
	return f, nil
}

func wantString(op string, v rail.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", rail.TypeMismatchError{Op: op, Wanted: "string", Actual: v.Tag().String()}
	}
	return s, nil
}

func wantBool(op string, v rail.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, rail.TypeMismatchError{Op: op, Wanted: "bool", Actual: v.Tag().String()}
	}
	return b, nil
}

func wantQuote(op string, v rail.Value) (rail.State, error) {
	q, ok := v.AsQuote()
	if !ok {
		return q, rail.TypeMismatchError{Op: op, Wanted: "quote", Actual: v.Tag().String()}
	}
	return q, nil
}

// wantSequence accepts either a Quote or a String, the two "sequence" types
// that len/rev/concat operate over uniformly (spec.md §4.4.4 "Sequence").
func wantSequence(op string, v rail.Value) (values []rail.Value, isString bool, err error) {
	if q, ok := v.AsQuote(); ok {
		return q.Stack.Values(), false, nil
	}
	if s, ok := v.AsString(); ok {
		runes := []rune(s)
		vs := make([]rail.Value, len(runes))
		for i, r := range runes {
			vs[i] = rail.String(string(r))
		}
		return vs, true, nil
	}
	return nil, false, rail.TypeMismatchError{Op: op, Wanted: "quote or string", Actual: v.Tag().String()}
}

// quoteFromStack wraps an existing persistent Stack as a Quote Value without
// flattening it to a slice first, for sequence ops (push/pop/enq/deq/rev)
// that already hold the right Stack shape.
func quoteFromStack(dict rail.Dictionary, stack rail.Stack) rail.Value {
	return rail.Quote(rail.State{Dictionary: dict, Context: rail.QuotationContext(nil), Stack: stack})
}

func joinStrings(vs []rail.Value) string {
	out := make([]byte, 0, len(vs))
	for _, v := range vs {
		s, _ := v.AsString()
		out = append(out, s...)
	}
	return string(out)
}
