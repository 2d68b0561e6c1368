package numdsl

import (
	"math"
	"strconv"
)

// mathFunc is an entry in the function table.
type mathFunc struct {
	// arity lists the argument counts the function accepts.
	arity []int
	// integral indicates that results are whole numbers.
	integral bool
	// f computes the result. prec is the interpreter's extended precision,
	// or 0 for plain float64 arithmetic. len(args) is always in arity.
	f func(prec uint, args []float64) (float64, error)
}

func (m *mathFunc) canCall(n int) bool {
	for _, k := range m.arity {
		if k == n {
			return true
		}
	}
	return false
}

// call checks the argument count, applies the function, and rejects results
// that are NaN for non-NaN arguments.
func (m *mathFunc) call(name string, prec uint, args []Value) (Value, error) {
	if !m.canCall(len(args)) {
		return Value{}, &CallError{Func: name, Len: len(args), Want: m.arity}
	}
	xs := make([]float64, len(args))
	nan := false
	for i, a := range args {
		xs[i] = a.F
		nan = nan || math.IsNaN(a.F)
	}
	r, err := m.f(prec, xs)
	if err != nil {
		return Value{}, err
	}
	if math.IsNaN(r) && !nan {
		return Value{}, &DomainError{X: xs[0], Arg: 1, Func: name}
	}
	return Value{F: r, Integral: m.integral}, nil
}

// monadic wraps a function of one variable.
func monadic(f func(float64) float64) *mathFunc {
	return &mathFunc{
		arity: []int{1},
		f: func(prec uint, args []float64) (float64, error) {
			return f(args[0]), nil
		},
	}
}

// whole wraps a rounding function whose result is integral.
func whole(name string, f func(float64) float64) *mathFunc {
	return &mathFunc{
		arity:    []int{1},
		integral: true,
		f: func(prec uint, args []float64) (float64, error) {
			x := args[0]
			if math.IsInf(x, 0) || math.IsNaN(x) {
				return 0, &DomainError{X: x, Arg: 1, Func: name}
			}
			return f(x), nil
		},
	}
}

// funcs is the closed table of callable functions. Each name in
// functionNames has an entry.
var funcs = map[string]*mathFunc{
	"sin":   monadic(math.Sin),
	"cos":   monadic(math.Cos),
	"tan":   monadic(math.Tan),
	"asin":  monadic(math.Asin),
	"acos":  monadic(math.Acos),
	"atan":  monadic(math.Atan),
	"fabs":  monadic(math.Abs),
	"ceil":  whole("ceil", math.Ceil),
	"floor": whole("floor", math.Floor),
	"sqrt": {
		arity: []int{1},
		f: func(prec uint, args []float64) (float64, error) {
			x := args[0]
			if x < 0 {
				return 0, &DomainError{X: x, Arg: 1, Func: "sqrt"}
			}
			if prec != 0 {
				return preciseSqrt(prec, x), nil
			}
			return math.Sqrt(x), nil
		},
	},
	"exp": {
		arity: []int{1},
		f: func(prec uint, args []float64) (float64, error) {
			if prec != 0 {
				return preciseExp(prec, args[0]), nil
			}
			return math.Exp(args[0]), nil
		},
	},
	"log": {
		arity: []int{1, 2},
		f:     flog,
	},
	"pow": {
		arity: []int{2},
		f: func(prec uint, args []float64) (float64, error) {
			x, y := args[0], args[1]
			if x == 0 && y < 0 {
				return 0, &DomainError{X: x, Arg: 1, Func: "pow"}
			}
			return fpow(prec, x, y), nil
		},
	},
	"factorial": {
		arity:    []int{1},
		integral: true,
		f:        factorial,
	},
}

// flog computes the natural logarithm of its first argument, or the
// logarithm in the base given by the second.
func flog(prec uint, args []float64) (float64, error) {
	ln := math.Log
	if prec != 0 {
		ln = func(x float64) float64 { return preciseLog(prec, x) }
	}
	for i, x := range args {
		if x <= 0 {
			return 0, &DomainError{X: x, Arg: i + 1, Func: "log"}
		}
	}
	r := ln(args[0])
	if len(args) == 2 {
		b := ln(args[1])
		if b == 0 {
			return 0, &DivisionError{X: r, Op: "log"}
		}
		r /= b
	}
	return r, nil
}

// maxFactorial is the largest argument whose factorial is finite in float64.
const maxFactorial = 170

func factorial(prec uint, args []float64) (float64, error) {
	x := args[0]
	if x < 0 || x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, &DomainError{X: x, Arg: 1, Func: "factorial"}
	}
	if x > maxFactorial {
		return math.Inf(1), nil
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

// fpow computes x**y, using extended precision if prec is nonzero and the
// float64 result is finite and nonzero.
func fpow(prec uint, x, y float64) float64 {
	r := math.Pow(x, y)
	if prec == 0 || r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return r
	}
	return precisePow(prec, x, y)
}

// CallError is an error indicating a function call with the wrong number of
// arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
	// Want lists the argument counts the function accepts.
	Want []int
}

func (err *CallError) Error() string {
	s := "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
	if len(err.Want) == 0 {
		return s
	}
	s += " (want "
	for i, n := range err.Want {
		if i > 0 {
			s += " or "
		}
		s += strconv.Itoa(n)
	}
	return s + ")"
}

func (err *CallError) Unwrap() error {
	return ErrRuntime
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := formatFloat(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return ErrRuntime
}
