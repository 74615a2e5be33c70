package rail

// CommandDef is a dictionary entry: a named operation together with its
// documented arity and its implementation (spec.md §3).
type CommandDef struct {
	Name        string
	Description string

	// Consumes and Produces are ordered type-tag lists. They are advisory:
	// documentation and arity, not a static type checker (spec.md §1, §7).
	// StackUnderflow is still raised from len(Consumes) against the actual
	// stack depth before a native command runs.
	Consumes []Tag
	Produces []Tag

	Action Action
}

// Action is the tagged union of the three ways a command can run a spec.md
// §3 "action" field: a native function that can fail, one that can't, or a
// stored quotation run in the calling state.
type Action struct {
	kind actionKind

	fallible   func(State) (State, error)
	infallible func(State) State
	quotation  State
}

type actionKind int

const (
	actionNone actionKind = iota
	actionNativeFallible
	actionNativeInfallible
	actionQuotation
)

// NativeFallible builds an Action around a function that may return an error.
func NativeFallible(f func(State) (State, error)) Action {
	return Action{kind: actionNativeFallible, fallible: f}
}

// NativeInfallible builds an Action around a function that always succeeds.
func NativeInfallible(f func(State) State) Action {
	return Action{kind: actionNativeInfallible, infallible: f}
}

// QuotationAction builds an Action that runs a captured State as a command
// body (spec.md §4.4.2), used by def!, => and ->.
func QuotationAction(q State) Action {
	return Action{kind: actionQuotation, quotation: q}
}

// IsZero reports whether a is the unset zero value.
func (a Action) IsZero() bool { return a.kind == actionNone }

// invoke runs the action on target, applying the run convention (effectful
// vs jailed) appropriate to how target.RunIn was asked to execute it. For a
// stored quotation, that means recursing into RunIn/JailedRunIn per the
// invoking convention; for native actions the flag is not consulted, so a
// native command that binds names (def!, alias, =>, ->) changes target's
// dictionary either way, and a caller that jails one restores the
// dictionary itself (as JailedInvoke does).
func (a Action) invoke(target State, jailed bool) (State, error) {
	switch a.kind {
	case actionNativeFallible:
		return a.fallible(target)
	case actionNativeInfallible:
		return a.infallible(target), nil
	case actionQuotation:
		if jailed {
			return jailedRunInState(a.quotation, target)
		}
		return runInState(a.quotation, target)
	default:
		return target, nil
	}
}
