package pages

import "testing"

func TestAppendPopRoundTrip(t *testing.T) {
	var c Core[int]
	for i := 0; i < 100; i++ {
		c = c.Append(i)
	}
	if got := c.Len(); got != 100 {
		t.Fatalf("Len() = %d, want 100", got)
	}
	for i := 99; i >= 0; i-- {
		var v int
		var ok bool
		c, v, ok = c.Pop()
		if !ok {
			t.Fatalf("Pop() at i=%d: ok = false", i)
		}
		if v != i {
			t.Fatalf("Pop() at i=%d: v = %d, want %d", i, v, i)
		}
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("Len() after draining = %d, want 0", got)
	}
	if _, _, ok := c.Pop(); ok {
		t.Fatalf("Pop() on empty Core: ok = true")
	}
}

func TestAppendDoesNotMutatePriorSnapshot(t *testing.T) {
	var base Core[string]
	base = base.Append("a").Append("b")

	branch1 := base.Append("c")
	branch2 := base.Append("d")

	if got := base.Slice(); len(got) != 2 {
		t.Fatalf("base mutated: %v", got)
	}
	if got, want := branch1.Slice(), []string{"a", "b", "c"}; !equalSlices(got, want) {
		t.Fatalf("branch1 = %v, want %v", got, want)
	}
	if got, want := branch2.Slice(), []string{"a", "b", "d"}; !equalSlices(got, want) {
		t.Fatalf("branch2 = %v, want %v", got, want)
	}
}

func TestPopDoesNotMutatePriorSnapshot(t *testing.T) {
	var base Core[int]
	base = base.Append(1).Append(2).Append(3)

	popped, v, ok := base.Pop()
	if !ok || v != 3 {
		t.Fatalf("Pop() = %v, %v, want 3, true", v, ok)
	}
	if got, want := base.Slice(), []int{1, 2, 3}; !equalSlices(got, want) {
		t.Fatalf("base mutated after Pop: %v, want %v", got, want)
	}
	if got, want := popped.Slice(), []int{1, 2}; !equalSlices(got, want) {
		t.Fatalf("popped = %v, want %v", got, want)
	}
}

func TestFromSliceAndGet(t *testing.T) {
	c := FromSlice([]int{10, 20, 30})
	for i, want := range []int{10, 20, 30} {
		got, ok := c.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d) = %v, %v, want %v, true", i, got, ok, want)
		}
	}
	if _, ok := c.Get(3); ok {
		t.Fatalf("Get(3) ok = true, want false")
	}
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
