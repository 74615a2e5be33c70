package builtin

import (
	"math"

	"github.com/jcorbin/rail"
)

// Arith is the arithmetic vocabulary group (spec.md §4.4.4 "Arithmetic"),
// plus the numeric-tag conversions supplemented from
// original_source/src/corelib/math.rs (SPEC_FULL.md §4.5).
func Arith() []rail.CommandDef {
	return []rail.CommandDef{
		binaryNumOp("+", "a b -> a+b", func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b }),
		binaryNumOp("-", "a b -> a-b", func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b }),
		binaryNumOp("*", "a b -> a*b", func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b }),

		fallible("/", "a b -> a/b : i64/i64 truncates toward zero, any f64 lifts to f64",
			[]rail.Tag{rail.TagI64, rail.TagI64}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a, b := pop2(s)
				ai, aIsI := a.AsI64()
				bi, bIsI := b.AsI64()
				if aIsI && bIsI {
					if bi == 0 {
						return s, rail.HostIOError{Op: "/", Err: errDivByZero}
					}
					return s.Push(rail.I64(ai / bi)), nil
				}
				af, err := wantNumber("/", a)
				if err != nil {
					return s, err
				}
				bf, err := wantNumber("/", b)
				if err != nil {
					return s, err
				}
				return s.Push(rail.F64(af / bf)), nil
			}),

		fallible("mod", "a b -> a mod b : result has the sign of the dividend",
			[]rail.Tag{rail.TagI64, rail.TagI64}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a, b := pop2(s)
				ai, aIsI := a.AsI64()
				bi, bIsI := b.AsI64()
				if aIsI && bIsI {
					if bi == 0 {
						return s, rail.HostIOError{Op: "mod", Err: errDivByZero}
					}
					return s.Push(rail.I64(ai % bi)), nil
				}
				af, err := wantNumber("mod", a)
				if err != nil {
					return s, err
				}
				bf, err := wantNumber("mod", b)
				if err != nil {
					return s, err
				}
				return s.Push(rail.F64(math.Mod(af, bf))), nil
			}),

		unaryNumOp("abs", "a -> |a|", math.Abs, func(i int64) int64 {
			if i < 0 {
				return -i
			}
			return i
		}),
		unaryNumOp("negate", "a -> -a", func(f float64) float64 { return -f }, func(i int64) int64 { return -i }),

		fallible("sqrt", "a -> sqrt(a) : always F64",
			[]rail.Tag{rail.TagI64}, []rail.Tag{rail.TagF64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				f, err := wantNumber("sqrt", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.F64(math.Sqrt(f))), nil
			}),

		fallible("floor", "a -> floor(a) : always I64",
			[]rail.Tag{rail.TagF64}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				if i, ok := a.AsI64(); ok {
					return s.Push(rail.I64(i)), nil
				}
				f, err := wantNumber("floor", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.I64(int64(math.Floor(f)))), nil
			}),

		infallible("int-max", "-> max I64", nil, []rail.Tag{rail.TagI64},
			func(s rail.State) rail.State { return s.Push(rail.I64(math.MaxInt64)) }),
		infallible("int-min", "-> min I64", nil, []rail.Tag{rail.TagI64},
			func(s rail.State) rail.State { return s.Push(rail.I64(math.MinInt64)) }),
		infallible("float-max", "-> max F64", nil, []rail.Tag{rail.TagF64},
			func(s rail.State) rail.State { return s.Push(rail.F64(math.MaxFloat64)) }),
		infallible("float-min", "-> min F64", nil, []rail.Tag{rail.TagF64},
			func(s rail.State) rail.State { return s.Push(rail.F64(-math.MaxFloat64)) }),

		fallible("digits", "n -> quote : decimal digits of n, 0 -> [ 0 ], negatives use |n|",
			[]rail.Tag{rail.TagI64}, []rail.Tag{rail.TagQuote},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				n, ok := a.AsI64()
				if !ok {
					return s, rail.TypeMismatchError{Op: "digits", Wanted: "i64", Actual: a.Tag().String()}
				}
				if n < 0 {
					n = -n
				}
				if n == 0 {
					return s.Push(rail.QuoteOf(s.Dictionary, rail.I64(0))), nil
				}
				var ds []rail.Value
				for n > 0 {
					ds = append([]rail.Value{rail.I64(n % 10)}, ds...)
					n /= 10
				}
				return s.Push(rail.QuoteOf(s.Dictionary, ds...)), nil
			}),

		fallible("i64", "a -> a : asserts a is already I64",
			[]rail.Tag{rail.TagI64}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				if _, ok := a.AsI64(); !ok {
					return s, rail.TypeMismatchError{Op: "i64", Wanted: "i64", Actual: a.Tag().String()}
				}
				return s.Push(a), nil
			}),
		fallible("f64", "a -> a : asserts a is already F64",
			[]rail.Tag{rail.TagF64}, []rail.Tag{rail.TagF64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				if _, ok := a.AsF64(); !ok {
					return s, rail.TypeMismatchError{Op: "f64", Wanted: "f64", Actual: a.Tag().String()}
				}
				return s.Push(a), nil
			}),
		fallible("to-i64", "a -> i64(a) : truncates a F64 toward zero",
			[]rail.Tag{rail.TagF64}, []rail.Tag{rail.TagI64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				if i, ok := a.AsI64(); ok {
					return s.Push(rail.I64(i)), nil
				}
				f, err := wantNumber("to-i64", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.I64(int64(f))), nil
			}),
		fallible("to-f64", "a -> f64(a)",
			[]rail.Tag{rail.TagI64}, []rail.Tag{rail.TagF64},
			func(s rail.State) (rail.State, error) {
				s, a := pop1(s)
				f, err := wantNumber("to-f64", a)
				if err != nil {
					return s, err
				}
				return s.Push(rail.F64(f)), nil
			}),
	}
}

func binaryNumOp(name, desc string, f func(a, b float64) float64, fi func(a, b int64) int64) rail.CommandDef {
	return fallible(name, desc, []rail.Tag{rail.TagI64, rail.TagI64}, []rail.Tag{rail.TagI64},
		func(s rail.State) (rail.State, error) {
			s, a, b := pop2(s)
			ai, aIsI := a.AsI64()
			bi, bIsI := b.AsI64()
			af, err := wantNumber(name, a)
			if err != nil {
				return s, err
			}
			bf, err := wantNumber(name, b)
			if err != nil {
				return s, err
			}
			if aIsI && bIsI {
				return s.Push(rail.I64(fi(ai, bi))), nil
			}
			return s.Push(rail.F64(f(af, bf))), nil
		})
}

func unaryNumOp(name, desc string, ff func(float64) float64, fi func(int64) int64) rail.CommandDef {
	return fallible(name, desc, []rail.Tag{rail.TagI64}, []rail.Tag{rail.TagI64},
		func(s rail.State) (rail.State, error) {
			s, a := pop1(s)
			if i, ok := a.AsI64(); ok {
				return s.Push(rail.I64(fi(i))), nil
			}
			f, err := wantNumber(name, a)
			if err != nil {
				return s, err
			}
			return s.Push(rail.F64(ff(f))), nil
		})
}

var errDivByZero = divByZeroError{}

type divByZeroError struct{}

func (divByZeroError) Error() string { return "division by zero" }
