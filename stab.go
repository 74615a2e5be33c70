package rail

import "sort"

// stab is a symbol table: a string-keyed Value map whose equality ignores
// insertion order (spec.md §3). It is copy-on-write like the rest of the
// value model: insert returns a new stab sharing the old one's entries.
type stab struct {
	m map[string]Value
}

func newStab() *stab {
	return &stab{m: map[string]Value{}}
}

func (st *stab) insert(key string, val Value) *stab {
	next := &stab{m: make(map[string]Value, len(st.m)+1)}
	for k, v := range st.m {
		next.m[k] = v
	}
	next.m[key] = val
	return next
}

func (st *stab) get(key string) (Value, bool) {
	v, ok := st.m[key]
	return v, ok
}

func (st *stab) entries() []StabEntry {
	out := make([]StabEntry, 0, len(st.m))
	for k, v := range st.m {
		out = append(out, StabEntry{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (st *stab) equal(other *stab) bool {
	if len(st.m) != len(other.m) {
		return false
	}
	for k, v := range st.m {
		ov, ok := other.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (st *stab) String() string {
	entries := st.entries()
	s := "[ "
	for _, e := range entries {
		s += "[ " + String(e.Key).String() + " " + e.Value.String() + " ] "
	}
	return s + "]"
}
