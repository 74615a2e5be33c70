package rail

import (
	"strings"

	"github.com/jcorbin/rail/internal/pages"
)

// Stack is a persistent, double-ended ordered sequence of Value (spec.md
// §3). It is backed by internal/pages.Core, so Push and Pop share structure
// with the receiver rather than copying it; Enqueue, Dequeue and Reverse
// rebuild the whole sequence.
type Stack struct {
	core pages.Core[Value]
}

// Len returns the number of values on the stack.
func (s Stack) Len() int { return s.core.Len() }

// Push appends v to the tail of the stack (the conventional "top").
func (s Stack) Push(v Value) Stack { return Stack{core: s.core.Append(v)} }

// Pop removes and returns the tail ("top") value. ok is false if s is empty.
func (s Stack) Pop() (next Stack, v Value, ok bool) {
	core, v, ok := s.core.Pop()
	return Stack{core: core}, v, ok
}

// Enqueue prepends v to the head of the stack.
func (s Stack) Enqueue(v Value) Stack {
	vs := s.core.Slice()
	vs = append([]Value{v}, vs...)
	return Stack{core: pages.FromSlice(vs)}
}

// Dequeue removes and returns the head value. ok is false if s is empty.
func (s Stack) Dequeue() (next Stack, v Value, ok bool) {
	if s.Len() == 0 {
		return s, v, false
	}
	vs := s.core.Slice()
	v, vs = vs[0], vs[1:]
	return Stack{core: pages.FromSlice(vs)}, v, true
}

// Reverse returns a stack with its elements in reverse order.
func (s Stack) Reverse() Stack {
	vs := s.core.Slice()
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return Stack{core: pages.FromSlice(out)}
}

// Nth returns the i-th element from the head (0-based).
func (s Stack) Nth(i int) (Value, bool) { return s.core.Get(i) }

// Values materializes the stack into a plain slice, head to tail. Used at
// API boundaries (display, iteration by native commands) where persistence
// no longer matters.
func (s Stack) Values() []Value { return s.core.Slice() }

// FromValues builds a Stack containing vs in order, head to tail.
func FromValues(vs ...Value) Stack { return Stack{core: pages.FromSlice(vs)} }

// Equal reports whether s and other hold the same values in the same order.
func (s Stack) Equal(other Stack) bool {
	a, b := s.Values(), other.Values()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders the stack per spec.md §4.2: "[ v1 v2 … ]".
func (s Stack) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, v := range s.Values() {
		b.WriteString(v.String())
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}
