package builtin

import "github.com/jcorbin/rail"

// commandNameOf extracts a command name from a Command or DeferredCommand
// value, or from a single-element quotation wrapping one — the three forms
// spec.md §4.4.4 "Definition" accepts for a command-name operand — and also
// from a String holding the name. It serves def!/alias as well as
// def?/describe, which take the same kind of operand.
func commandNameOf(v rail.Value) (string, bool) {
	if name, ok := v.AsName(); ok {
		return name, true
	}
	if s, ok := v.AsString(); ok {
		return s, true
	}
	if q, ok := v.AsQuote(); ok {
		vs := q.Stack.Values()
		if len(vs) == 1 {
			return commandNameOf(vs[0])
		}
	}
	return "", false
}

// Exec is the execution-control vocabulary group (spec.md §4.4.4
// "Execution"): do! do doin! doin def? describe.
func Exec() []rail.CommandDef {
	return []rail.CommandDef{
		fallible("do!", "op -> ... : execute op on the current state, effectfully",
			[]rail.Tag{rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) {
				s, op := pop1(s)
				return s.Invoke(op)
			}),
		fallible("do", "op -> ... : execute op on the current state, jailed",
			[]rail.Tag{rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) {
				s, op := pop1(s)
				return s.JailedInvoke(op)
			}),

		fallible("doin!", "q op -> quote : run op against a sub-state seeded with q, effectfully",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				return doin(s, false)
			}),
		fallible("doin", "q op -> quote : run op against a sub-state seeded with q, jailed",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				return doin(s, true)
			}),

		infallible("def?", "name -> bool : whether name is bound",
			[]rail.Tag{rail.TagCommand}, []rail.Tag{rail.TagBool},
			func(s rail.State) rail.State {
				s, v := pop1(s)
				name, ok := commandNameOf(v)
				if !ok {
					return s.Push(rail.Bool(false))
				}
				return s.Push(rail.Bool(s.Dictionary.Defined(name)))
			}),

		infallible("describe", "name -> string : the command's description, or \"unknown\"",
			[]rail.Tag{rail.TagCommand}, []rail.Tag{rail.TagString},
			func(s rail.State) rail.State {
				s, v := pop1(s)
				name, ok := commandNameOf(v)
				if !ok {
					return s.Push(rail.String("unknown"))
				}
				def, ok := s.Dictionary.Lookup(name)
				if !ok {
					return s.Push(rail.String("unknown"))
				}
				return s.Push(rail.String(def.Description))
			}),
	}
}

func doin(s rail.State, jailed bool) (rail.State, error) {
	s, q, op := pop2(s)
	seed, err := wantQuote("doin", q)
	if err != nil {
		return s, err
	}
	sub := s.Child()
	sub.Stack = seed.Stack

	var result rail.State
	if jailed {
		result, err = sub.JailedInvoke(op)
	} else {
		result, err = sub.Invoke(op)
	}
	if err != nil {
		return s, err
	}
	return s.Push(rail.QuoteOf(result.Dictionary, result.Stack.Values()...)), nil
}
