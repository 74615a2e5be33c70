package rail

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Dictionary is a persistent mapping from command name to CommandDef
// (spec.md §3, §4.3). It is backed by an immutable radix tree: every
// mutating method returns a new Dictionary that shares structure with the
// receiver, giving the copy-on-write semantics spec.md §9 asks for without
// hand-rolling a HAMT.
type Dictionary struct {
	tree *iradix.Tree[CommandDef]
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() Dictionary {
	return Dictionary{tree: iradix.New[CommandDef]()}
}

// Of builds a Dictionary from CommandDefs keyed by Name; duplicate names
// overwrite with last-writer-wins, matching spec.md's dictionary_of.
func Of(defs ...CommandDef) Dictionary {
	d := NewDictionary()
	for _, def := range defs {
		d = d.Define(def)
	}
	return d
}

// Define returns a new Dictionary with def bound under def.Name.
func (d Dictionary) Define(def CommandDef) Dictionary {
	tree, _, _ := d.tree.Insert([]byte(def.Name), def)
	return Dictionary{tree: tree}
}

// Alias returns a new Dictionary with the existing definition of from also
// bound under to. Returns ok=false if from is not defined.
func (d Dictionary) Alias(to, from string) (Dictionary, bool) {
	def, ok := d.Lookup(from)
	if !ok {
		return d, false
	}
	def.Name = to
	return d.Define(def), true
}

// Lookup returns the CommandDef bound to name, if any.
func (d Dictionary) Lookup(name string) (CommandDef, bool) {
	return d.tree.Get([]byte(name))
}

// Defined reports whether name is bound.
func (d Dictionary) Defined(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// Len returns the number of bound names.
func (d Dictionary) Len() int { return d.tree.Len() }

// Names returns every bound command name in sorted order (radix-tree
// iteration order is lexicographic by key), for the `defs` meta command.
func (d Dictionary) Names() []string {
	names := make([]string, 0, d.tree.Len())
	it := d.tree.Root().Iterator()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, string(k))
	}
	return names
}
