package rail

// State is the evaluator's full working state: stack, dictionary, nesting
// context, and the process-wide run conventions (spec.md §4.4). It is a
// plain value: Stack and Dictionary are themselves persistent, so copying a
// State is cheap and safe, and a Value::Quote can own one outright.
type State struct {
	Stack       Stack
	Dictionary  Dictionary
	Context     Context
	Conventions RunConventions
	Out         *Output
}

// NewMainState returns a fresh top-level State with the given dictionary
// and conventions, an empty stack, Main context, and a discarding Output.
// Use WithOutput to direct print commands elsewhere.
func NewMainState(dict Dictionary, conventions RunConventions) State {
	return State{Dictionary: dict, Context: MainContext(), Conventions: conventions, Out: DiscardOutput()}
}

// WithOutput returns a copy of s that prints through out.
func (s State) WithOutput(out *Output) State {
	s.Out = out
	return s
}

// InMain reports whether s is the top-level context.
func (s State) InMain() bool { return s.Context.Kind() == Main }

// Push returns a new State with v pushed onto the stack.
func (s State) Push(v Value) State {
	s.Stack = s.Stack.Push(v)
	return s
}

// Pop returns a new State with the top value removed, the value itself,
// and whether the stack was non-empty.
func (s State) Pop() (State, Value, bool) {
	next, v, ok := s.Stack.Pop()
	s.Stack = next
	return s, v, ok
}

// deeper opens a new quotation-building scope nested inside s (spec.md
// §4.4.1, LeftBracket): an empty stack, s's dictionary, and a Quotation
// context pointing back at s.
func (s State) deeper() State {
	parent := s
	return State{
		Dictionary:  s.Dictionary,
		Context:     QuotationContext(&parent),
		Conventions: s.Conventions,
	}
}

// higher closes the current quotation-building scope (spec.md §4.4.1,
// RightBracket): the built-up stack becomes a Quote pushed onto the parent.
// Returns CantEscapeError if s has no enclosing scope to return to.
func (s State) higher() (State, error) {
	parent := s.Context.Parent()
	if parent == nil {
		return s, CantEscapeError{Context: s.Context.Kind()}
	}
	return parent.Push(Quote(s)), nil
}

// EvalToken implements the single-token dispatch of spec.md §4.4.1.
func (s State) EvalToken(tok Token) (State, error) {
	switch tok.Kind {
	case TokenNone:
		return s, nil
	case TokenLeftBracket:
		return s.deeper(), nil
	case TokenRightBracket:
		return s.higher()
	case TokenString:
		return s.Push(String(tok.Str)), nil
	case TokenI64:
		return s.Push(I64(tok.I)), nil
	case TokenF64:
		return s.Push(F64(tok.F)), nil
	case TokenBool:
		return s.Push(Bool(tok.B)), nil
	case TokenDeferredTerm:
		return s.Push(DeferredCommand(tok.Str)), nil
	case TokenTerm:
		return s.evalTerm(tok.Str)
	default:
		return s, nil
	}
}

func (s State) evalTerm(name string) (State, error) {
	if !s.InMain() {
		return s.Push(Command(name)), nil
	}
	def, ok := s.Dictionary.Lookup(name)
	if !ok {
		return s, UnknownCommandError{Name: name}
	}
	return s.invokeDef(def)
}

// invokeDef runs a dictionary-resolved command against s, checking its
// declared consume-arity first (spec.md §4.4.6 StackUnderflow) and
// shielding native command bugs behind recoverNative so a panic in a
// built-in can't take down the whole process (spec.md §7).
func (s State) invokeDef(def CommandDef) (State, error) {
	if want := len(def.Consumes); s.Stack.Len() < want {
		return s, StackUnderflowError{Op: def.Name, Wanted: want, Had: s.Stack.Len()}
	}
	return recoverNative(def.Name, s, func() (State, error) {
		return def.Action.invoke(s, false)
	})
}

// runInState implements spec.md §4.4.2 run_in_state: every value of q's
// stack is replayed against target, in order. Command/DeferredCommand
// values are resolved by looking up target's dictionary first, then q's
// captured dictionary, and invoked; anything else is pushed as-is.
func runInState(q State, target State) (State, error) {
	for _, v := range q.Stack.Values() {
		name, isRef := v.AsName()
		if !isRef {
			target = target.Push(v)
			continue
		}
		def, ok := target.Dictionary.Lookup(name)
		if !ok {
			def, ok = q.Dictionary.Lookup(name)
		}
		if !ok {
			return target, UnknownCommandError{Name: name}
		}
		var err error
		target, err = target.invokeDef(def)
		if err != nil {
			return target, err
		}
	}
	return target, nil
}

// jailedRunInState implements spec.md §4.4.2 jailed_run_in_state: run as
// above, then restore target's dictionary, discarding any definitions
// introduced during the run while keeping the resulting stack (and any
// error, with the jailed dictionary restored).
func jailedRunInState(q State, target State) (State, error) {
	savedDict := target.Dictionary
	result, err := runInState(q, target)
	result.Dictionary = savedDict
	return result, err
}

// RunIn is the exported, effectful form of run_in_state: definitions bound
// while running q leak into the returned State's dictionary.
func (q State) RunIn(target State) (State, error) { return runInState(q, target) }

// JailedRunIn is the exported, jailed form: definitions bound while running
// q are discarded from the returned State.
func (q State) JailedRunIn(target State) (State, error) { return jailedRunInState(q, target) }

// Child returns a Detached scratch state sharing s's dictionary but with an
// empty stack — used internally to build isolated sub-evaluations (e.g. `?`'s
// condition clauses, `any`, `filter`, `map`, `doin`).
func (s State) Child() State {
	return State{Dictionary: s.Dictionary, Context: DetachedContext(), Conventions: s.Conventions}
}

// String renders s's stack, per spec.md §4.2.
func (s State) String() string { return s.Stack.String() }

// Invoke runs a Command, DeferredCommand, or Quote value against s,
// effectfully: dictionary definitions introduced by v leak into the
// returned State. This is the shared machinery behind `do!` and every
// sequence combinator that takes a command-or-quote operand (spec.md
// §4.4.4 "Execution").
func (s State) Invoke(v Value) (State, error) {
	if q, ok := v.AsQuote(); ok {
		return runInState(q, s)
	}
	if name, ok := v.AsName(); ok {
		def, ok := s.Dictionary.Lookup(name)
		if !ok {
			return s, UnknownCommandError{Name: name}
		}
		return s.invokeDef(def)
	}
	return s, TypeMismatchError{Op: "invoke", Wanted: "command or quote", Actual: v.Tag().String()}
}

// JailedInvoke is the jailed counterpart of Invoke: dictionary definitions
// introduced while running v are discarded from the returned State.
func (s State) JailedInvoke(v Value) (State, error) {
	if q, ok := v.AsQuote(); ok {
		return jailedRunInState(q, s)
	}
	if name, ok := v.AsName(); ok {
		def, ok := s.Dictionary.Lookup(name)
		if !ok {
			return s, UnknownCommandError{Name: name}
		}
		savedDict := s.Dictionary
		result, err := s.invokeDef(def)
		result.Dictionary = savedDict
		return result, err
	}
	return s, TypeMismatchError{Op: "invoke", Wanted: "command or quote", Actual: v.Tag().String()}
}

// QuoteOf builds a Quote Value out of thin air: a quotation-context State
// holding vs on its stack and dict as its captured dictionary. Built-in
// sequence/meta commands use this to synthesize quotations (e.g. `quote`,
// `map`, `stack`) that were never produced by a literal `[ ... ]` in source.
func QuoteOf(dict Dictionary, vs ...Value) Value {
	return Quote(State{Dictionary: dict, Context: QuotationContext(nil), Stack: FromValues(vs...)})
}

// EvalTokens folds EvalToken over toks, stopping at the first error. It
// returns the last good state together with that error — spec.md §7's
// Result<state, (state, error)> threading — so a REPL can report the error
// and resume from the surviving state, and a batch evaluator can dump the
// surviving stack before exiting non-zero.
func (s State) EvalTokens(toks []Token) (State, error) {
	for _, tok := range toks {
		next, err := s.EvalToken(tok)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}

// EvalSource tokenizes src and evaluates it via EvalTokens.
func (s State) EvalSource(src string) (State, error) {
	return s.EvalTokens(Tokens(src))
}
