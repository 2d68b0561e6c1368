package numdsl

import (
	"math"
	"strconv"
	"strings"
)

// Value is a number held in a Store. Integral values come from integer
// literals and from arithmetic and functions that keep them whole; they print
// without a fractional part. All other values print as floats, e.g. 8.0.
type Value struct {
	F        float64
	Integral bool
}

// Float returns a non-integral value.
func Float(f float64) Value {
	return Value{F: f}
}

// Int returns an integral value.
func Int(f float64) Value {
	return Value{F: f, Integral: true}
}

func (v Value) String() string {
	if v.Integral && !math.IsInf(v.F, 0) && !math.IsNaN(v.F) {
		if v.F == 0 {
			// Whole numbers have no negative zero.
			return "0"
		}
		// Exact digits, even past 2**53.
		return strconv.FormatFloat(v.F, 'f', 0, 64)
	}
	return formatFloat(v.F)
}

// formatFloat formats f in the shortest form that reads back exactly, always
// with a fractional part or an exponent. Exponents are used for magnitudes
// below 1e-4 or at least 1e16.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	k := strings.IndexByte(e, 'e')
	exp, err := strconv.Atoi(e[k+1:])
	if err != nil {
		panic("numdsl: bad exponent in " + e)
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Store maps variable names to values. It is owned by the caller and is not
// safe for concurrent use.
type Store map[string]Value

// constants are the names that resolve when a variable is not in the store.
var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// Constant returns the value of a predefined constant, PI or E.
func Constant(name string) (Value, bool) {
	f, ok := constants[name]
	return Float(f), ok
}
