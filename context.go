package rail

// ContextKind distinguishes the three evaluator nesting modes (spec.md §3,
// §4.4.5).
type ContextKind int

const (
	// Main is the top-level context: commands execute as they're
	// encountered.
	Main ContextKind = iota
	// InQuotation means we're inside brackets: bare terms are reified as
	// Command values instead of being invoked.
	InQuotation
	// Detached is a scratch/child context used for programmatically built
	// states (e.g. a jailed sub-evaluation); it behaves like InQuotation
	// for dispatch purposes but has no parent to return to.
	Detached
)

// Context records an evaluator State's nesting: Main, inside brackets with
// a link back to the enclosing State, or a parentless Detached scratch
// state. The parent link is a pointer so Context (embedded in State) isn't
// a self-referential value type; per spec.md §5 the resulting tree is
// acyclic, since a parent is never mutated to point back at a child.
type Context struct {
	kind   ContextKind
	parent *State
}

// MainContext is the top-level context.
func MainContext() Context { return Context{kind: Main} }

// QuotationContext returns a context for building a quotation nested inside
// parent.
func QuotationContext(parent *State) Context { return Context{kind: InQuotation, parent: parent} }

// DetachedContext returns a parentless scratch context.
func DetachedContext() Context { return Context{kind: Detached} }

// Kind reports which of Main/InQuotation/Detached this context is.
func (c Context) Kind() ContextKind { return c.kind }

// Parent returns the enclosing State for an InQuotation context, or nil
// otherwise.
func (c Context) Parent() *State { return c.parent }
