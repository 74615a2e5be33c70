package builtin

import "github.com/jcorbin/rail"

// All merges every vocabulary group into a single Dictionary, the set
// merged into a fresh interpreter on startup before any library list or
// user program runs (spec.md §4.5).
func All() rail.Dictionary {
	var defs []rail.CommandDef
	defs = append(defs, Shuffle()...)
	defs = append(defs, Arith()...)
	defs = append(defs, Boolean()...)
	defs = append(defs, Branch()...)
	defs = append(defs, Exec()...)
	defs = append(defs, Def()...)
	defs = append(defs, Sequence()...)
	defs = append(defs, String()...)
	defs = append(defs, Stab()...)
	defs = append(defs, Meta()...)
	return rail.Of(defs...)
}
