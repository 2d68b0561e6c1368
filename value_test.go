package numdsl

import (
	"math"
	"testing"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int(5), "5"},
		{"int-neg", Int(-42), "-42"},
		{"int-zero", Int(0), "0"},
		{"int-negzero", Int(math.Copysign(0, -1)), "0"},
		{"int-big", Int(1e20), "100000000000000000000"},
		{"int-inf", Int(math.Inf(1)), "inf"},
		{"int-past-mantissa", Int(1 << 60), "1152921504606846976"},
		{"int-factorial-22", Int(1124000727777607680000), "1124000727777607680000"},
		{"float-whole", Float(8), "8.0"},
		{"float-neg-whole", Float(-3), "-3.0"},
		{"float-zero", Float(0), "0.0"},
		{"float-negzero", Float(math.Copysign(0, -1)), "-0.0"},
		{"float-frac", Float(0.1), "0.1"},
		{"float-third", Float(1.0 / 3), "0.3333333333333333"},
		{"float-pi", Float(math.Pi), "3.141592653589793"},
		{"float-small", Float(2.6535897933527304e-06), "2.6535897933527304e-06"},
		{"float-edge-small", Float(0.0001), "0.0001"},
		{"float-smaller", Float(0.00001), "1e-05"},
		{"float-edge-big", Float(1e15), "1000000000000000.0"},
		{"float-big", Float(1e16), "1e+16"},
		{"float-bigger", Float(1.5e300), "1.5e+300"},
		{"float-inf", Float(math.Inf(1)), "inf"},
		{"float-neginf", Float(math.Inf(-1)), "-inf"},
		{"float-nan", Float(math.NaN()), "nan"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestConstant(t *testing.T) {
	if v, ok := Constant("PI"); !ok || v.F != math.Pi || v.Integral {
		t.Errorf("PI is %v, %t", v, ok)
	}
	if v, ok := Constant("E"); !ok || v.F != math.E || v.Integral {
		t.Errorf("E is %v, %t", v, ok)
	}
	if v, ok := Constant("Pi"); ok {
		t.Errorf("Pi is a constant: %v", v)
	}
}
