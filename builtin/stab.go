package builtin

import (
	"fmt"

	"github.com/jcorbin/rail"
)

// Stab is the symbol-table vocabulary group (spec.md §4.4.4 "Symbol
// table"): stab insert extract.
func Stab() []rail.CommandDef {
	return []rail.CommandDef{
		infallible("stab", "-> stab : a new, empty symbol table", nil, []rail.Tag{rail.TagStab},
			func(s rail.State) rail.State { return s.Push(rail.NewStab()) }),

		fallible("insert", "stab [ k v ] -> stab : bind k to v",
			[]rail.Tag{rail.TagStab, rail.TagQuote}, []rail.Tag{rail.TagStab},
			func(s rail.State) (rail.State, error) {
				s, stabVal, kvVal := pop2(s)
				entries, ok := stabVal.AsStab()
				if !ok {
					return s, rail.TypeMismatchError{Op: "insert", Wanted: "stab", Actual: stabVal.Tag().String()}
				}
				kv, err := wantQuote("insert", kvVal)
				if err != nil {
					return s, err
				}
				vs := kv.Stack.Values()
				if len(vs) != 2 {
					return s, rail.TypeMismatchError{Op: "insert", Wanted: "[ key value ]", Actual: kvVal.String()}
				}
				key, err := wantString("insert", vs[0])
				if err != nil {
					return s, err
				}
				entries = append(append([]rail.StabEntry{}, entries...), rail.StabEntry{Key: key, Value: vs[1]})
				return s.Push(rail.NewStab(entries...)), nil
			}),

		fallible("extract", "stab k -> stab v : the value bound to k",
			[]rail.Tag{rail.TagStab, rail.TagString}, []rail.Tag{rail.TagStab, rail.TagAny},
			func(s rail.State) (rail.State, error) {
				s, stabVal, keyVal := pop2(s)
				entries, ok := stabVal.AsStab()
				if !ok {
					return s, rail.TypeMismatchError{Op: "extract", Wanted: "stab", Actual: stabVal.Tag().String()}
				}
				key, err := wantString("extract", keyVal)
				if err != nil {
					return s, err
				}
				for _, e := range entries {
					if e.Key == key {
						return s.Push(stabVal).Push(e.Value), nil
					}
				}
				return s, rail.HostIOError{Op: "extract", Err: fmt.Errorf("key %q not found", key)}
			}),
	}
}
