package builtin

import "github.com/jcorbin/rail"

// Shuffle is the stack-shuffling vocabulary group (spec.md §4.4.4 "Stack
// shuffling"): drop dup dup2 swap rot.
func Shuffle() []rail.CommandDef {
	return []rail.CommandDef{
		infallible("drop", "a -> : discard the top value",
			[]rail.Tag{rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, _ = pop1(s)
				return s
			}),

		infallible("dup", "a -> a a : duplicate the top value",
			[]rail.Tag{rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a := pop1(s)
				return s.Push(a).Push(a)
			}),

		infallible("dup2", "a b -> a b a b : duplicate the top two values",
			[]rail.Tag{rail.TagAny, rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a, b := pop2(s)
				return s.Push(a).Push(b).Push(a).Push(b)
			}),

		infallible("swap", "a b -> b a : swap the top two values",
			[]rail.Tag{rail.TagAny, rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a, b := pop2(s)
				return s.Push(b).Push(a)
			}),

		infallible("rot", "a b c -> b c a : rotate the top three values",
			[]rail.Tag{rail.TagAny, rail.TagAny, rail.TagAny}, nil,
			func(s rail.State) rail.State {
				s, a, b, c := pop3(s)
				return s.Push(b).Push(c).Push(a)
			}),
	}
}
