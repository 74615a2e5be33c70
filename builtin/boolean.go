package builtin

import "github.com/jcorbin/rail"

// Boolean is the boolean and comparison vocabulary group (spec.md §4.4.4
// "Boolean and comparison"), including the `> < >= <=` aliases for
// `gt? lt? gte? lte?` supplemented from original_source/src/corelib/bool.rs
// (SPEC_FULL.md §4.5).
func Boolean() []rail.CommandDef {
	defs := []rail.CommandDef{
		infallible("true", "-> true", nil, []rail.Tag{rail.TagBool},
			func(s rail.State) rail.State { return s.Push(rail.Bool(true)) }),
		infallible("false", "-> false", nil, []rail.Tag{rail.TagBool},
			func(s rail.State) rail.State { return s.Push(rail.Bool(false)) }),

		fallible("not", "a -> !a", []rail.Tag{rail.TagBool}, []rail.Tag{rail.TagBool},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				b, err := wantBool("not", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.Bool(!b)), nil
			}),
		fallible("and", "a b -> a && b", []rail.Tag{rail.TagBool, rail.TagBool}, []rail.Tag{rail.TagBool},
			func(s rail.State) (rail.State, error) {
				s, a, b := pop2(s)
				ab, err := wantBool("and", a)
				if err != nil {
					return s, err
				}
				bb, err := wantBool("and", b)
				if err != nil {
					return s, err
				}
				return s.Push(rail.Bool(ab && bb)), nil
			}),
		fallible("or", "a b -> a || b", []rail.Tag{rail.TagBool, rail.TagBool}, []rail.Tag{rail.TagBool},
			func(s rail.State) (rail.State, error) {
				s, a, b := pop2(s)
				ab, err := wantBool("or", a)
				if err != nil {
					return s, err
				}
				bb, err := wantBool("or", b)
				if err != nil {
					return s, err
				}
				return s.Push(rail.Bool(ab || bb)), nil
			}),

		infallible("eq?", "a b -> a == b : cross-tag numeric equality, set equality for stab",
			[]rail.Tag{rail.TagAny, rail.TagAny}, []rail.Tag{rail.TagBool},
			func(s rail.State) rail.State {
				s, a, b := pop2(s)
				return s.Push(rail.Bool(a.Equal(b)))
			}),
		infallible("neq?", "a b -> a != b",
			[]rail.Tag{rail.TagAny, rail.TagAny}, []rail.Tag{rail.TagBool},
			func(s rail.State) rail.State {
				s, a, b := pop2(s)
				return s.Push(rail.Bool(!a.Equal(b)))
			}),

		numCompare("gt?", "a b -> b > a", func(a, b float64) bool { return a > b }),
		numCompare("lt?", "a b -> b < a", func(a, b float64) bool { return a < b }),
		numCompare("gte?", "a b -> b >= a", func(a, b float64) bool { return a >= b }),
		numCompare("lte?", "a b -> b <= a", func(a, b float64) bool { return a <= b }),

		fallible("any", "quote pred -> bool : true iff pred holds for any element of quote",
			[]rail.Tag{rail.TagQuote, rail.TagCommand}, []rail.Tag{rail.TagBool},
			func(s rail.State) (rail.State, error) {
				s, quoteVal, pred := pop2(s)
				q, err := wantQuote("any", quoteVal)
				if err != nil {
					return s, err
				}
				for _, elem := range q.Stack.Values() {
					child := s.Child().Push(elem)
					result, err := child.JailedInvoke(pred)
					if err != nil {
						return s, err
					}
					_, top, ok := result.Stack.Pop()
					if !ok {
						return s, rail.StackUnderflowError{Op: "any", Wanted: 1, Had: 0}
					}
					hit, ok := top.AsBool()
					if !ok {
						return s, rail.TypeMismatchError{Op: "any", Wanted: "bool", Actual: top.Tag().String()}
					}
					if hit {
						return s.Push(rail.Bool(true)), nil
					}
				}
				return s.Push(rail.Bool(false)), nil
			}),
	}

	// Register the aliases alongside their canonical definitions so both
	// spellings resolve to the same behavior.
	byName := map[string]rail.CommandDef{}
	for _, d := range defs {
		byName[d.Name] = d
	}
	alias := func(to, from string) {
		d := byName[from]
		d.Name = to
		defs = append(defs, d)
	}
	alias(">", "gt?")
	alias("<", "lt?")
	alias(">=", "gte?")
	alias("<=", "lte?")

	return defs
}

func numCompare(name, desc string, cmp func(a, b float64) bool) rail.CommandDef {
	return fallible(name, desc, []rail.Tag{rail.TagI64, rail.TagI64}, []rail.Tag{rail.TagBool},
		func(s rail.State) (rail.State, error) {
			s, a, b := pop2(s)
			af, err := wantNumber(name, a)
			if err != nil {
				return s, err
			}
			bf, err := wantNumber(name, b)
			if err != nil {
				return s, err
			}
			// pop2 returns a=first-pushed (below), b=second-pushed (top);
			// "a b gt?" asks whether the top value exceeds the one beneath
			// it, so the top (b) is the left-hand side of the comparison.
			return s.Push(rail.Bool(cmp(bf, af))), nil
		})
}
