package builtin

import (
	"strings"

	"github.com/jcorbin/rail"
)

// String is the string vocabulary group (spec.md §4.4.4 "String").
func String() []rail.CommandDef {
	return []rail.CommandDef{
		unaryStringOp("upcase", "s -> S", strings.ToUpper),
		unaryStringOp("downcase", "s -> s", strings.ToLower),
		unaryStringOp("trim", "s -> s : leading/trailing whitespace removed", strings.TrimSpace),

		fallible("split", "s sep -> quote : s split on sep, as a quote of strings",
			[]rail.Tag{rail.TagString, rail.TagString}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, strVal, sepVal := pop2(s)
				str, err := wantString("split", strVal)
				if err != nil {
					return s, err
				}
				sep, err := wantString("split", sepVal)
				if err != nil {
					return s, err
				}
				parts := strings.Split(str, sep)
				vs := make([]rail.Value, len(parts))
				for i, p := range parts {
					vs[i] = rail.String(p)
				}
				return s.Push(rail.QuoteOf(s.Dictionary, vs...)), nil
			}),

		fallible("join", "quote sep -> s : quote of strings joined with sep",
			[]rail.Tag{rail.TagQuote, rail.TagString}, []rail.Tag{rail.TagString},
			func(s rail.State) (rail.State, error) {
				s, quoteVal, sepVal := pop2(s)
				q, err := wantQuote("join", quoteVal)
				if err != nil {
					return s, err
				}
				sep, err := wantString("join", sepVal)
				if err != nil {
					return s, err
				}
				vs := q.Stack.Values()
				parts := make([]string, len(vs))
				for i, v := range vs {
					str, err := wantString("join", v)
					if err != nil {
						return s, err
					}
					parts[i] = str
				}
				return s.Push(rail.String(strings.Join(parts, sep))), nil
			}),

		stringPredicate("contains?", "s sub -> bool", strings.Contains),
		stringPredicate("starts-with?", "s prefix -> bool", strings.HasPrefix),
		stringPredicate("ends-with?", "s suffix -> bool", strings.HasSuffix),

		infallible("to-string", "v -> s : display form of v", []rail.Tag{rail.TagAny}, []rail.Tag{rail.TagString},
			func(s rail.State) rail.State {
				s, a := pop1(s)
				return s.Push(rail.String(a.String()))
			}),
	}
}

func unaryStringOp(name, desc string, f func(string) string) rail.CommandDef {
	return fallible(name, desc, []rail.Tag{rail.TagString}, []rail.Tag{rail.TagString},
		func(s rail.State) (rail.State, error) {
			s, a := pop1(s)
			str, err := wantString(name, a)
			if err != nil {
				return s, err
			}
			return s.Push(rail.String(f(str))), nil
		})
}

func stringPredicate(name, desc string, f func(s, sub string) bool) rail.CommandDef {
	return fallible(name, desc, []rail.Tag{rail.TagString, rail.TagString}, []rail.Tag{rail.TagBool},
		func(s rail.State) (rail.State, error) {
			s, strVal, subVal := pop2(s)
			str, err := wantString(name, strVal)
			if err != nil {
				return s, err
			}
			sub, err := wantString(name, subVal)
			if err != nil {
				return s, err
			}
			return s.Push(rail.Bool(f(str, sub))), nil
		})
}
