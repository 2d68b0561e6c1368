package numdsl

import "math"

// Interpreter evaluates programs against a Store. An Interpreter holds no
// program state, so one may be shared by any number of stores, but each
// store must be used by one Interpret call at a time.
type Interpreter struct {
	prec uint
}

// Option is an option used when creating an interpreter.
type Option interface {
	interpOption()
}

type precopt uint

func (precopt) interpOption() {}

// Prec sets the precision in bits used to compute **, pow, exp, log, and
// sqrt before rounding to float64. Zero, the default, uses float64
// arithmetic throughout.
func Prec(prec uint) Option {
	return precopt(prec)
}

// NewInterpreter creates an interpreter with the given options. Later options
// override earlier ones.
func NewInterpreter(opts ...Option) *Interpreter {
	var in Interpreter
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			in.prec = uint(opt)
		default:
			panic("numdsl: unknown option type")
		}
	}
	return &in
}

// Prec returns the extended precision of the interpreter, or 0 if it uses
// float64 arithmetic.
func (in *Interpreter) Prec() uint {
	return in.prec
}

var plain Interpreter

// Interpret executes statements in order against store using float64
// arithmetic. See (*Interpreter).Interpret.
func Interpret(stmts []Stmt, store Store) ([]string, error) {
	return plain.Interpret(stmts, store)
}

// Interpret executes statements in order against store and returns the lines
// printed by show statements. The first error stops execution; the lines
// printed before it are returned along with it, and assignments made before
// it remain in store. store must not be nil.
func (in *Interpreter) Interpret(stmts []Stmt, store Store) ([]string, error) {
	if store == nil {
		panic("numdsl: Interpret with nil Store")
	}
	var out []string
	for _, s := range stmts {
		switch s := s.(type) {
		case *Assignment:
			v, err := in.Eval(s.Value, store)
			if err != nil {
				return out, err
			}
			store[s.Name] = v
		case *Print:
			// Constants are not printable unless assigned.
			v, ok := store[s.Name]
			if !ok {
				return out, &NameError{Name: s.Name}
			}
			out = append(out, v.String())
		default:
			panic("numdsl: invalid statement " + s.String())
		}
	}
	return out, nil
}

// Eval evaluates an expression against store without modifying it. Names
// not in store resolve to constants.
func (in *Interpreter) Eval(e Expr, store Store) (Value, error) {
	switch e := e.(type) {
	case *Number:
		return Value{F: e.Value, Integral: e.Integral}, nil
	case *Variable:
		if v, ok := store[e.Name]; ok {
			return v, nil
		}
		if v, ok := Constant(e.Name); ok {
			return v, nil
		}
		return Value{}, &NameError{Name: e.Name}
	case *BinaryOp:
		l, err := in.Eval(e.Left, store)
		if err != nil {
			return Value{}, err
		}
		r, err := in.Eval(e.Right, store)
		if err != nil {
			return Value{}, err
		}
		return in.arith(e.Op, l, r)
	case *FunctionCall:
		args := make([]Value, len(e.Args))
		for i, a := range e.Args {
			v, err := in.Eval(a, store)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		f := funcs[e.Func]
		if f == nil {
			return Value{}, &FuncError{Func: e.Func}
		}
		return f.call(e.Func, in.prec, args)
	default:
		panic("numdsl: invalid expression " + e.String())
	}
}

// arith applies a binary operator.
func (in *Interpreter) arith(op Op, l, r Value) (Value, error) {
	integral := l.Integral && r.Integral
	switch op {
	case OpAdd:
		return Value{F: l.F + r.F, Integral: integral}, nil
	case OpSub:
		return Value{F: l.F - r.F, Integral: integral}, nil
	case OpMul:
		return Value{F: l.F * r.F, Integral: integral}, nil
	case OpDiv:
		if r.F == 0 {
			return Value{}, &DivisionError{X: l.F, Op: "/"}
		}
		return Float(l.F / r.F), nil
	case OpPow:
		if l.F == 0 && r.F < 0 {
			return Value{}, &DivisionError{X: r.F, Op: "**"}
		}
		v := fpow(in.prec, l.F, r.F)
		if math.IsNaN(v) && !math.IsNaN(l.F) && !math.IsNaN(r.F) {
			// Negative base with fractional exponent.
			return Value{}, &DomainError{X: l.F, Arg: 1, Func: "**"}
		}
		return Float(v), nil
	default:
		panic("numdsl: invalid operator " + op.String())
	}
}

// Run tokenizes, parses, and interprets src against store using float64
// arithmetic.
func Run(src string, store Store) ([]string, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	stmts, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return Interpret(stmts, store)
}

// NameError is an error from a lookup for a variable that is neither in the
// store nor a constant.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + err.Name
}

func (err *NameError) Unwrap() error {
	return ErrRuntime
}

// DivisionError is an error from dividing by zero, including raising zero to
// a negative power and taking a logarithm in base 1.
type DivisionError struct {
	// X is the dividend, or the exponent for **.
	X float64
	// Op is the operator or function that divided.
	Op string
}

func (err *DivisionError) Error() string {
	switch err.Op {
	case "**":
		return "division by zero: 0 cannot be raised to the negative power " + formatFloat(err.X)
	case "/":
		return "division by zero"
	default:
		return "division by zero in " + err.Op
	}
}

func (err *DivisionError) Unwrap() error {
	return ErrRuntime
}

// FuncError is an error from calling a function that is not in the function
// table.
type FuncError struct {
	Func string
}

func (err *FuncError) Error() string {
	return "unsupported function: " + err.Func
}

func (err *FuncError) Unwrap() error {
	return ErrRuntime
}
