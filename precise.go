package numdsl

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// maxExpArg bounds the arguments passed to bigfloat.Exp. Beyond it the
// float64 result is 0 or +Inf regardless of precision.
const maxExpArg = 710

func bigf(prec uint, x float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

func f64(x *big.Float) float64 {
	r, _ := x.Float64()
	return r
}

// preciseSqrt computes the square root of x >= 0 at prec bits.
func preciseSqrt(prec uint, x float64) float64 {
	if math.IsInf(x, 1) || math.IsNaN(x) {
		return math.Sqrt(x)
	}
	r := new(big.Float).SetPrec(prec)
	return f64(r.Sqrt(bigf(prec, x)))
}

// preciseExp computes e**x at prec bits.
func preciseExp(prec uint, x float64) float64 {
	if math.IsNaN(x) || math.Abs(x) > maxExpArg {
		return math.Exp(x)
	}
	r := new(big.Float).SetPrec(prec)
	bigfloat.Exp(r, bigf(prec, x))
	return f64(r)
}

// preciseLog computes the natural logarithm of x > 0 at prec bits.
func preciseLog(prec uint, x float64) float64 {
	if math.IsInf(x, 1) || math.IsNaN(x) {
		return math.Log(x)
	}
	r := new(big.Float).SetPrec(prec)
	bigfloat.Log(r, bigf(prec, x))
	return f64(r)
}

// precisePow computes x**y at prec bits. The caller guarantees that the
// float64 result is finite and nonzero. Negative bases are allowed only with
// integral exponents; others fall back to math.Pow.
func precisePow(prec uint, x, y float64) float64 {
	switch {
	case y == 0, x == 1:
		return 1
	case math.IsInf(x, 0), math.IsInf(y, 0):
		return math.Pow(x, y)
	}
	neg := false
	if x < 0 {
		if y != math.Trunc(y) {
			return math.Pow(x, y)
		}
		neg = math.Mod(y, 2) != 0
		x = -x
	}
	r := bigf(prec, x)
	bigfloat.Pow(r, r, bigf(prec, y))
	if neg {
		r.Neg(r)
	}
	return f64(r)
}
