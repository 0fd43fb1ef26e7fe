// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package numbermod

import "fmt"

// Fraction is an exact rational number, num/den with den always
// positive. All game arithmetic (movement cost, damage multipliers,
// terrain bonuses) goes through Fraction to keep the engine's
// non-goal of floating-point determinism: every result is exact. The
// zero value Fraction{} is read as 0.
type Fraction struct {
	Num, Den int64
}

// NewFraction returns num/den reduced to lowest terms with a positive
// denominator. A zero denominator collapses to 0/1.
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num, den = num/g, den/g
	}
	return Fraction{Num: num, Den: den}
}

// Int wraps a whole number as a Fraction.
func Int(n int64) Fraction { return Fraction{Num: n, Den: 1} }

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// norm maps the zero value Fraction{} to 0/1.
func (f Fraction) norm() Fraction {
	if f.Den == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	return f
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Add returns f + o.
func (f Fraction) Add(o Fraction) Fraction {
	f, o = f.norm(), o.norm()
	return NewFraction(f.Num*o.Den+o.Num*f.Den, f.Den*o.Den)
}

// Mul returns f * o.
func (f Fraction) Mul(o Fraction) Fraction {
	return NewFraction(f.Num*o.Num, f.Den*o.Den)
}

// Sub returns f - o.
func (f Fraction) Sub(o Fraction) Fraction {
	f, o = f.norm(), o.norm()
	return NewFraction(f.Num*o.Den-o.Num*f.Den, f.Den*o.Den)
}

// Div returns f / o.
func (f Fraction) Div(o Fraction) Fraction {
	return NewFraction(f.Num*o.Den, f.Den*o.Num)
}

// Cmp returns -1, 0 or 1 as f is less than, equal to, or greater than o.
func (f Fraction) Cmp(o Fraction) int {
	f, o = f.norm(), o.norm()
	l := f.Num * o.Den
	r := o.Num * f.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Ceil returns the smallest integer >= f.
func (f Fraction) Ceil() int64 {
	f = f.norm()
	q := f.Num / f.Den
	if f.Num%f.Den != 0 && f.Num > 0 {
		q++
	}
	return q
}

// Float64 converts to a float64, for logging/diagnostics only — never
// for engine arithmetic.
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// String implements the fmt.Stringer interface.
func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// NumberModF is a NumberMod layer over Fraction, the idiom used for
// damage multipliers, movement cost and vision range.
type NumberModF struct {
	Kind  Kind_e
	Value Fraction
}

// FoldFraction applies mods, in order, starting from base.
func FoldFraction(base Fraction, mods []NumberModF) Fraction {
	v := base
	for _, m := range mods {
		switch m.Kind {
		case Keep:
		case Replace:
			v = m.Value
		case Add:
			v = v.Add(m.Value)
		case Mul:
			v = v.Mul(m.Value)
		}
	}
	return v
}

// ParseCell parses a config cell's NumberMod syntax: "" (Keep),
// "1.5" (Replace), "+1" (Add), "-1" (Add of a negative), "*2" (Mul).
// Values are integers or decimals with any number of fractional
// digits, for the CSV tables described in spec.md §6.
func ParseCell(cell string) (NumberModF, error) {
	if cell == "" {
		return NumberModF{Kind: Keep}, nil
	}
	kind := Replace
	rest := cell
	switch cell[0] {
	case '+':
		kind = Add
		rest = cell[1:]
	case '*':
		kind = Mul
		rest = cell[1:]
	case '-':
		kind = Add
		rest = cell
	}
	f, err := parseDecimal(rest)
	if err != nil {
		return NumberModF{}, fmt.Errorf("parse number-mod cell %q: %w", cell, err)
	}
	return NumberModF{Kind: kind, Value: f}, nil
}

// parseDecimal parses an optionally-signed integer or decimal number
// into a Fraction, without touching float64 along the way.
func parseDecimal(s string) (Fraction, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	whole, frac := s, ""
	for i, c := range s {
		if c == '.' {
			whole, frac = s[:i], s[i+1:]
			break
		}
	}
	var num int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return Fraction{}, fmt.Errorf("invalid digit %q", c)
		}
		num = num*10 + int64(c-'0')
	}
	den := int64(1)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return Fraction{}, fmt.Errorf("invalid digit %q", c)
		}
		num = num*10 + int64(c-'0')
		den *= 10
	}
	if neg {
		num = -num
	}
	return NewFraction(num, den), nil
}
