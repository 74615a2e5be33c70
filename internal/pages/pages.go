// Package pages implements a generic, persistent paged sequence: a
// structurally-shared alternative to copying a whole slice on every append.
//
// It is grounded in the shape of the teacher's internal/mem paged memory
// core (base/size bookkeeping, page-granularity allocation), but the access
// pattern differs enough that it is a fresh implementation rather than an
// adaptation: mem.PagedCore addresses pages randomly and mutates them in
// place for a byte-addressable VM; Core[T] only ever grows or shrinks at the
// tail and never mutates a page that an older snapshot still references.
package pages

// defaultPageSize bounds how much a single push/pop copies: only the tail
// page, not the whole sequence.
const defaultPageSize = 32

// Core is a persistent, append/pop-at-tail sequence of T. The zero value is
// an empty Core. Every mutating method returns a new Core; the receiver is
// left untouched, so a Core already captured by a Quote keeps working after
// its owner's evaluator state "moves on".
type Core[T any] struct {
	pageSize int
	pages    [][]T // all but the last page are full and immutable once shared
	tailLen  int
}

// Len reports the number of elements in c.
func (c Core[T]) Len() int {
	if len(c.pages) == 0 {
		return 0
	}
	full := len(c.pages) - 1
	return full*c.pageSize + c.tailLen
}

// Get returns the element at index i (0-based from the head).
func (c Core[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= c.Len() {
		return zero, false
	}
	pageSize := c.effectivePageSize()
	pageID, off := i/pageSize, i%pageSize
	return c.pages[pageID][off], true
}

// Append returns a new Core with v added at the tail. Only the tail page is
// copied; earlier pages are shared with c.
func (c Core[T]) Append(v T) Core[T] {
	pageSize := c.effectivePageSize()
	next := c.shallowCopyPages()
	next.pageSize = pageSize

	if len(next.pages) == 0 || next.tailLen == pageSize {
		page := make([]T, 1, pageSize)
		page[0] = v
		next.pages = append(next.pages, page)
		next.tailLen = 1
		return next
	}

	oldTail := next.pages[len(next.pages)-1]
	newTail := make([]T, len(oldTail), pageSize)
	copy(newTail, oldTail)
	newTail = append(newTail, v)
	next.pages[len(next.pages)-1] = newTail
	next.tailLen++
	return next
}

// Pop returns a new Core with the tail element removed, and the element
// that was removed. ok is false if c was empty.
func (c Core[T]) Pop() (next Core[T], val T, ok bool) {
	n := c.Len()
	if n == 0 {
		return c, val, false
	}
	val, _ = c.Get(n - 1)
	next = c.shallowCopyPages()
	next.pageSize = c.pageSize

	if next.tailLen == 1 {
		next.pages = next.pages[:len(next.pages)-1]
		if len(next.pages) == 0 {
			next.tailLen = 0
		} else {
			next.tailLen = len(next.pages[len(next.pages)-1])
		}
		return next, val, true
	}

	oldTail := next.pages[len(next.pages)-1]
	newTail := make([]T, len(oldTail)-1)
	copy(newTail, oldTail[:len(oldTail)-1])
	next.pages[len(next.pages)-1] = newTail
	next.tailLen--
	return next, val, true
}

// shallowCopyPages copies the outer pages slice (cheap: one pointer per
// page) so that appending a new page, or replacing the tail page, never
// mutates a slice some other Core snapshot still holds.
func (c Core[T]) shallowCopyPages() Core[T] {
	next := Core[T]{pageSize: c.pageSize, tailLen: c.tailLen}
	if len(c.pages) > 0 {
		next.pages = make([][]T, len(c.pages))
		copy(next.pages, c.pages)
	}
	return next
}

func (c Core[T]) effectivePageSize() int {
	if c.pageSize > 0 {
		return c.pageSize
	}
	return defaultPageSize
}

// Each calls f for every element in order, head to tail.
func (c Core[T]) Each(f func(i int, v T)) {
	n := c.Len()
	for i := 0; i < n; i++ {
		v, _ := c.Get(i)
		f(i, v)
	}
}

// Slice materializes c into a plain slice, head to tail. Used at the
// boundary where persistence no longer matters (e.g. building a Display
// string, or handing values to a native command that wants them all).
func (c Core[T]) Slice() []T {
	out := make([]T, 0, c.Len())
	c.Each(func(_ int, v T) { out = append(out, v) })
	return out
}

// FromSlice builds a Core containing the given elements in order.
func FromSlice[T any](vs []T) Core[T] {
	var c Core[T]
	for _, v := range vs {
		c = c.Append(v)
	}
	return c
}
