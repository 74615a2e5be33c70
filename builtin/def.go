package builtin

import "github.com/jcorbin/rail"

// Def is the definition-introduction vocabulary group (spec.md §4.4.4
// "Definition"): def! alias => ->.
func Def() []rail.CommandDef {
	return []rail.CommandDef{
		fallible("def!", "quote name -> : bind name to quote in the current dictionary",
			[]rail.Tag{rail.TagQuote, rail.TagCommand}, nil,
			func(s rail.State) (rail.State, error) {
				s, quoteVal, nameVal := pop2(s)
				name, ok := commandNameOf(nameVal)
				if !ok {
					return s, rail.TypeMismatchError{Op: "def!", Wanted: "command name", Actual: nameVal.Tag().String()}
				}
				body, err := wantQuote("def!", quoteVal)
				if err != nil {
					return s, err
				}
				s.Dictionary = s.Dictionary.Define(rail.CommandDef{
					Name:        name,
					Description: "user-defined",
					Action:      rail.QuotationAction(body),
				})
				return s, nil
			}),

		fallible("alias", "old new -> : bind new to old's existing definition",
			[]rail.Tag{rail.TagCommand, rail.TagCommand}, nil,
			func(s rail.State) (rail.State, error) {
				s, oldVal, newVal := pop2(s)
				oldName, ok := commandNameOf(oldVal)
				if !ok {
					return s, rail.TypeMismatchError{Op: "alias", Wanted: "command name", Actual: oldVal.Tag().String()}
				}
				newName, ok := commandNameOf(newVal)
				if !ok {
					return s, rail.TypeMismatchError{Op: "alias", Wanted: "command name", Actual: newVal.Tag().String()}
				}
				dict, ok := s.Dictionary.Alias(newName, oldName)
				if !ok {
					return s, rail.UnknownCommandError{Name: oldName}
				}
				s.Dictionary = dict
				return s, nil
			}),

		fallible("=>", "v1..vn [ name1..namen ] -> : bind each name to its value, literally",
			[]rail.Tag{rail.TagCommand}, nil,
			func(s rail.State) (rail.State, error) { return bindNames(s, false) }),
		fallible("->", "v1..vn [ name1..namen ] -> : bind each name, promoting quotes to run by reference",
			[]rail.Tag{rail.TagCommand}, nil,
			func(s rail.State) (rail.State, error) { return bindNames(s, true) }),
	}
}

func asCommandList(v rail.Value) ([]rail.Value, bool) {
	if q, ok := v.AsQuote(); ok {
		return q.Stack.Values(), true
	}
	if _, ok := v.AsName(); ok {
		return []rail.Value{v}, true
	}
	return nil, false
}

// bindNames implements `=>` (byRef=false) and `->` (byRef=true): pop the
// trailing list of deferred command names, then for each name (processed
// from the last name back to the first, matching the value that was pushed
// for it) pop the value beneath and bind name to it in the dictionary.
func bindNames(s rail.State, byRef bool) (rail.State, error) {
	s, namesVal := pop1(s)
	names, ok := asCommandList(namesVal)
	if !ok {
		return s, rail.TypeMismatchError{Op: "=>", Wanted: "command name list", Actual: namesVal.Tag().String()}
	}
	dict := s.Dictionary
	for i := len(names) - 1; i >= 0; i-- {
		name, ok := names[i].AsName()
		if !ok {
			return s, rail.TypeMismatchError{Op: "=>", Wanted: "command name", Actual: names[i].Tag().String()}
		}
		var val rail.Value
		s, val = pop1(s)

		var body rail.State
		if byRef {
			if q, isQuote := val.AsQuote(); isQuote {
				body = q
			} else {
				body = rail.State{Dictionary: dict, Context: rail.QuotationContext(nil), Stack: rail.FromValues(val)}
			}
		} else {
			body = rail.State{Dictionary: dict, Context: rail.QuotationContext(nil), Stack: rail.FromValues(val)}
		}

		dict = dict.Define(rail.CommandDef{
			Name:        name,
			Description: "user-defined",
			Action:      rail.QuotationAction(body),
		})
	}
	s.Dictionary = dict
	return s, nil
}
