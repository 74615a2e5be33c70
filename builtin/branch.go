package builtin

import "github.com/jcorbin/rail"

// Branch is the `?` selection command (spec.md §4.4.4 "Branching").
func Branch() []rail.CommandDef {
	return []rail.CommandDef{
		fallible("?", "[ cond1 act1 cond2 act2 ... ] -> : run the first act whose cond holds",
			[]rail.Tag{rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) {
				s, pairs := pop1(s)
				q, err := wantQuote("?", pairs)
				if err != nil {
					return s, err
				}
				vs := q.Stack.Values()
				for i := 0; i+1 < len(vs); i += 2 {
					cond, act := vs[i], vs[i+1]

					child, err := s.Child().JailedInvoke(cond)
					if err != nil {
						return s, err
					}
					if child.Stack.Len() != 1 {
						return s, rail.TypeMismatchError{Op: "?", Wanted: "single bool from predicate", Actual: child.Stack.String()}
					}
					_, top, _ := child.Stack.Pop()
					hit, ok := top.AsBool()
					if !ok {
						return s, rail.TypeMismatchError{Op: "?", Wanted: "bool", Actual: top.Tag().String()}
					}
					if hit {
						return s.Invoke(act)
					}
				}
				return s, nil
			}),
	}
}
