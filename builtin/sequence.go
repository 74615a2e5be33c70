package builtin

import "github.com/jcorbin/rail"

// Sequence is the sequence vocabulary group (spec.md §4.4.4 "Sequence"):
// len quote unquote as-quote push enq pop deq nth rev concat filter map
// each! each zip zip-with times.
func Sequence() []rail.CommandDef {
	return []rail.CommandDef{
		fallible("len", "seq -> i64 : length of a quote or string",
			[]rail.Tag{rail.TagQuote}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				vs, _, err := wantSequence("len", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.I64(int64(len(vs)))), nil
			}),

		infallible("quote", "v -> quote : wrap one value in a quote", []rail.Tag{rail.TagAny}, []rail.Tag{rail.TagQuote},
			func(s rail.State) rail.State {
				s, a := pop1(s)
				return s.Push(rail.QuoteOf(s.Dictionary, a))
			}),

		fallible("unquote", "quote -> ... : splice a quote's values onto the stack",
			[]rail.Tag{rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				q, err := wantQuote("unquote", a)
				if err != nil {
					return s, err
				}
				for _, v := range q.Stack.Values() {
					s = s.Push(v)
				}
				return s, nil
			}),

		infallible("as-quote", "v -> quote : wrap v unless it is already a quote", []rail.Tag{rail.TagAny}, []rail.Tag{rail.TagQuote},
			func(s rail.State) rail.State {
				s, a := pop1(s)
				if _, ok := a.AsQuote(); ok {
					return s.Push(a)
				}
				return s.Push(rail.QuoteOf(s.Dictionary, a))
			}),

		fallible("push", "quote v -> quote : append v to the tail",
			[]rail.Tag{rail.TagQuote, rail.TagAny}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, seqVal, v := pop2(s)
				q, err := wantQuote("push", seqVal)
				if err != nil {
					return s, err
				}
				return s.Push(quoteFromStack(q.Dictionary, q.Stack.Push(v))), nil
			}),

		fallible("pop", "quote -> quote v : remove and produce the tail value",
			[]rail.Tag{rail.TagQuote}, []rail.Tag{rail.TagQuote, rail.TagAny},
			func(s rail.State) (rail.State, error) {
				s, seqVal := pop1(s)
				q, err := wantQuote("pop", seqVal)
				if err != nil {
					return s, err
				}
				rest, v, ok := q.Stack.Pop()
				if !ok {
					return s, rail.StackUnderflowError{Op: "pop", Wanted: 1, Had: 0}
				}
				return s.Push(quoteFromStack(q.Dictionary, rest)).Push(v), nil
			}),

		fallible("enq", "v quote -> quote : prepend v to the head",
			[]rail.Tag{rail.TagAny, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, v, seqVal := pop2(s)
				q, err := wantQuote("enq", seqVal)
				if err != nil {
					return s, err
				}
				return s.Push(quoteFromStack(q.Dictionary, q.Stack.Enqueue(v))), nil
			}),

		fallible("deq", "quote -> v quote : remove and produce the head value",
			[]rail.Tag{rail.TagQuote}, []rail.Tag{rail.TagAny, rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, seqVal := pop1(s)
				q, err := wantQuote("deq", seqVal)
				if err != nil {
					return s, err
				}
				rest, v, ok := q.Stack.Dequeue()
				if !ok {
					return s, rail.StackUnderflowError{Op: "deq", Wanted: 1, Had: 0}
				}
				return s.Push(v).Push(quoteFromStack(q.Dictionary, rest)), nil
			}),

		fallible("nth", "quote i -> v : the 0-indexed element",
			[]rail.Tag{rail.TagQuote, rail.TagI64}, nil,
			func(s rail.State) (rail.State, error) {
				s, seqVal, idxVal := pop2(s)
				q, err := wantQuote("nth", seqVal)
				if err != nil {
					return s, err
				}
				i, ok := idxVal.AsI64()
				if !ok {
					return s, rail.TypeMismatchError{Op: "nth", Wanted: "i64", Actual: idxVal.Tag().String()}
				}
				v, ok := q.Stack.Nth(int(i))
				if !ok {
					return s, rail.StackUnderflowError{Op: "nth", Wanted: int(i) + 1, Had: q.Stack.Len()}
				}
				return s.Push(v), nil
			}),

		fallible("rev", "seq -> seq : reverse a quote or string",
			[]rail.Tag{rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				if str, ok := a.AsString(); ok {
					rs := []rune(str)
					for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
						rs[i], rs[j] = rs[j], rs[i]
					}
					return s.Push(rail.String(string(rs))), nil
				}
				q, err := wantQuote("rev", a)
				if err != nil {
					return s, err
				}
				return s.Push(quoteFromStack(q.Dictionary, q.Stack.Reverse())), nil
			}),

		fallible("concat", "a b -> ab : concatenate two quotes, or two strings",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, prefix, suffix := pop2(s)
				if ps, ok := prefix.AsString(); ok {
					ss, ok := suffix.AsString()
					if !ok {
						return s, rail.TypeMismatchError{Op: "concat", Wanted: "string", Actual: suffix.Tag().String()}
					}
					return s.Push(rail.String(ps + ss)), nil
				}
				pq, err := wantQuote("concat", prefix)
				if err != nil {
					return s, err
				}
				sq, err := wantQuote("concat", suffix)
				if err != nil {
					return s, err
				}
				vs := append(append([]rail.Value{}, pq.Stack.Values()...), sq.Stack.Values()...)
				return s.Push(rail.QuoteOf(s.Dictionary, vs...)), nil
			}),

		fallible("filter", "seq pred -> seq : elements for which pred leaves true",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, seqVal, pred := pop2(s)
				seq, err := wantQuote("filter", seqVal)
				if err != nil {
					return s, err
				}
				var kept []rail.Value
				for _, term := range seq.Stack.Values() {
					sub, err := s.Child().Push(term).JailedInvoke(pred)
					if err != nil {
						return s, err
					}
					_, top, ok := sub.Stack.Pop()
					if !ok {
						return s, rail.StackUnderflowError{Op: "filter", Wanted: 1, Had: 0}
					}
					keep, ok := top.AsBool()
					if !ok {
						return s, rail.TypeMismatchError{Op: "filter", Wanted: "bool", Actual: top.Tag().String()}
					}
					if keep {
						kept = append(kept, term)
					}
				}
				return s.Push(rail.QuoteOf(s.Dictionary, kept...)), nil
			}),

		fallible("map", "seq xform -> seq : elements after applying xform",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, seqVal, xform := pop2(s)
				seq, err := wantQuote("map", seqVal)
				if err != nil {
					return s, err
				}
				results := s.Child()
				for _, term := range seq.Stack.Values() {
					results = results.Push(term)
					results, err = results.JailedInvoke(xform)
					if err != nil {
						return s, err
					}
				}
				return s.Push(rail.QuoteOf(s.Dictionary, results.Stack.Values()...)), nil
			}),

		fallible("each!", "seq op -> ... : run op on each element, effectfully",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) { return each(s, false) }),
		fallible("each", "seq op -> ... : run op on each element, jailed",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, nil,
			func(s rail.State) (rail.State, error) { return each(s, true) }),

		fallible("zip", "a b -> pairs : pairwise [ ai bi ] up to the shorter length",
			[]rail.Tag{rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, aVal, bVal := pop2(s)
				a, err := wantQuote("zip", aVal)
				if err != nil {
					return s, err
				}
				b, err := wantQuote("zip", bVal)
				if err != nil {
					return s, err
				}
				av, bv := a.Stack.Values(), b.Stack.Values()
				n := len(av)
				if len(bv) < n {
					n = len(bv)
				}
				pairs := make([]rail.Value, n)
				for i := 0; i < n; i++ {
					pairs[i] = rail.QuoteOf(s.Dictionary, av[i], bv[i])
				}
				return s.Push(rail.QuoteOf(s.Dictionary, pairs...)), nil
			}),

		fallible("zip-with", "a b xform -> seq : pairwise xform(ai, bi) up to the shorter length",
			[]rail.Tag{rail.TagQuote, rail.TagQuote, rail.TagQuote}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, aVal, bVal, xform := pop3(s)
				a, err := wantQuote("zip-with", aVal)
				if err != nil {
					return s, err
				}
				b, err := wantQuote("zip-with", bVal)
				if err != nil {
					return s, err
				}
				av, bv := a.Stack.Values(), b.Stack.Values()
				n := len(av)
				if len(bv) < n {
					n = len(bv)
				}
				out := make([]rail.Value, 0, n)
				for i := 0; i < n; i++ {
					sub := s.Child().Push(av[i]).Push(bv[i])
					result, err := sub.Invoke(xform)
					if err != nil {
						return s, err
					}
					out = append(out, result.Stack.Values()...)
				}
				return s.Push(rail.QuoteOf(s.Dictionary, out...)), nil
			}),

		fallible("times", "op n -> ... : run op against the current state n times, jailed",
			[]rail.Tag{rail.TagQuote, rail.TagI64}, nil,
			func(s rail.State) (rail.State, error) {
				s, opVal, nVal := pop2(s)
				n, ok := nVal.AsI64()
				if !ok {
					return s, rail.TypeMismatchError{Op: "times", Wanted: "i64", Actual: nVal.Tag().String()}
				}
				var err error
				for i := int64(0); i < n; i++ {
					s, err = s.JailedInvoke(opVal)
					if err != nil {
						return s, err
					}
				}
				return s, nil
			}),
	}
}

func each(s rail.State, jailed bool) (rail.State, error) {
	s, seqVal, op := pop2(s)
	seq, err := wantQuote("each", seqVal)
	if err != nil {
		return s, err
	}
	for _, term := range seq.Stack.Values() {
		s = s.Push(term)
		if jailed {
			s, err = s.JailedInvoke(op)
		} else {
			s, err = s.Invoke(op)
		}
		if err != nil {
			return s, err
		}
	}
	return s, nil
}
