// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package factor defines the dimensional-factor value type that unit
// expressions evaluate to, along with its algebra.
//
// A Factors records how a unit relates to the seven SI base units: a rational
// scale factor, a rational additive offset (nonzero only for affine scales
// like degrees Celsius), and one rational exponent per base dimension.
// Exponents are rational rather than integral because fractional dimensions
// are legal: the time exponent of 1/s**(1/2) is -1/2 and must survive
// exactly.
package factor

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrIncompatibleOffset is the sentinel wrapped by every error about illegal
// combinations of affine (offset-carrying) factors. Two offset units cannot
// be multiplied or divided, and an offset unit cannot be raised to a power:
// the composite scale such an operation would describe does not exist.
var ErrIncompatibleOffset = errors.New("incompatible offset units")

// errNonFinite reports a Pow whose multiplier escaped the range of float64.
// It can only happen for fractional exponents; integral exponents are applied
// in exact rational arithmetic.
var errNonFinite = errors.New("multiplier of power is not finite")

// errDivisionByZero reports a quotient with a zero divisor, such as the
// exponent expression (1/0).
var errDivisionByZero = errors.New("division by zero")

// Factors is the canonical dimensional record for a physical unit.
//
// The zero value is the dimensionless zero (multiplier 0); use New for the
// multiplicative identity. All methods treat their receiver and arguments as
// immutable, so a Factors may be shared freely once constructed. Callers
// must not modify the fields of a Factors obtained from this package.
type Factors struct {
	// Multiplier is the scale relative to coherent SI base units.
	Multiplier big.Rat
	// Offset is the additive shift applied after scaling; it is nonzero only
	// for affine scales such as degC and degF.
	Offset big.Rat

	// The seven SI base-dimension exponents.
	Length            big.Rat // m
	Mass              big.Rat // kg
	Time              big.Rat // s
	Current           big.Rat // A
	Temperature       big.Rat // K
	Amount            big.Rat // mol
	LuminousIntensity big.Rat // cd
}

// New returns the multiplicative identity: multiplier 1, offset 0, and every
// dimension exponent 0. It is the seed value for evaluating an expression.
func New() *Factors {
	f := new(Factors)
	f.Multiplier.SetInt64(1)
	return f
}

// FromInt returns a dimensionless Factors whose multiplier is n. Numeric
// literals in unit expressions become these.
func FromInt(n int64) *Factors {
	f := new(Factors)
	f.Multiplier.SetInt64(n)
	return f
}

// Clone returns a deep copy of f.
func (f *Factors) Clone() *Factors {
	res := new(Factors)
	res.Multiplier.Set(&f.Multiplier)
	res.Offset.Set(&f.Offset)
	res.Length.Set(&f.Length)
	res.Mass.Set(&f.Mass)
	res.Time.Set(&f.Time)
	res.Current.Set(&f.Current)
	res.Temperature.Set(&f.Temperature)
	res.Amount.Set(&f.Amount)
	res.LuminousIntensity.Set(&f.LuminousIntensity)
	return res
}

// Mul returns the product of f and other: multipliers multiply and dimension
// exponents add, which is how composite units like kg*m/s**2 accumulate.
//
// At most one operand may have a nonzero offset; the result keeps that
// offset. If both offsets are nonzero the result is an error wrapping
// ErrIncompatibleOffset.
func (f *Factors) Mul(other *Factors) (*Factors, error) {
	if f.Offset.Sign() != 0 && other.Offset.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot multiply two offset units", ErrIncompatibleOffset)
	}
	res := new(Factors)
	res.Multiplier.Mul(&f.Multiplier, &other.Multiplier)
	res.Offset.Add(&f.Offset, &other.Offset)
	res.Length.Add(&f.Length, &other.Length)
	res.Mass.Add(&f.Mass, &other.Mass)
	res.Time.Add(&f.Time, &other.Time)
	res.Current.Add(&f.Current, &other.Current)
	res.Temperature.Add(&f.Temperature, &other.Temperature)
	res.Amount.Add(&f.Amount, &other.Amount)
	res.LuminousIntensity.Add(&f.LuminousIntensity, &other.LuminousIntensity)
	return res, nil
}

// Div returns the quotient of f by other: multipliers divide and dimension
// exponents subtract. The offset of the result is always zero; a ratio of
// scales has no meaningful additive shift.
//
// The same offset-conflict rule as Mul applies.
func (f *Factors) Div(other *Factors) (*Factors, error) {
	if f.Offset.Sign() != 0 && other.Offset.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot divide two offset units", ErrIncompatibleOffset)
	}
	if other.Multiplier.Sign() == 0 {
		return nil, fmt.Errorf("%w: divisor has a zero multiplier", errDivisionByZero)
	}
	res := new(Factors)
	res.Multiplier.Quo(&f.Multiplier, &other.Multiplier)
	res.Length.Sub(&f.Length, &other.Length)
	res.Mass.Sub(&f.Mass, &other.Mass)
	res.Time.Sub(&f.Time, &other.Time)
	res.Current.Sub(&f.Current, &other.Current)
	res.Temperature.Sub(&f.Temperature, &other.Temperature)
	res.Amount.Sub(&f.Amount, &other.Amount)
	res.LuminousIntensity.Sub(&f.LuminousIntensity, &other.LuminousIntensity)
	return res, nil
}

// Neg returns f with the sign of its multiplier flipped. Offset and exponents
// are carried over unchanged. This implements unary minus on numeric terms.
func (f *Factors) Neg() *Factors {
	res := f.Clone()
	res.Multiplier.Neg(&f.Multiplier)
	return res
}

// Pos returns f unchanged. It implements unary plus.
func (f *Factors) Pos() *Factors {
	return f
}

// Pow raises f to the power given by exp's multiplier; exp's own dimensions
// are ignored because an exponent is evaluated as a plain number.
//
// Dimension exponents are always scaled in exact rational arithmetic, so
// fractional dimensions round-trip precisely. The multiplier is exact for
// integral exponents; for fractional exponents it passes through float64
// exponentiation and is converted back to the nearest rational, so its
// magnitude is approximate. That asymmetry is deliberate: dimensional
// compatibility checks depend on the exponents, not on multiplier precision.
//
// An offset unit cannot be raised to a power; that is an error wrapping
// ErrIncompatibleOffset.
func (f *Factors) Pow(exp *Factors) (*Factors, error) {
	if f.Offset.Sign() != 0 {
		return nil, fmt.Errorf("%w: cannot raise an offset unit to a power", ErrIncompatibleOffset)
	}
	n := &exp.Multiplier

	res := new(Factors)
	if n.IsInt() {
		if err := powInt(&res.Multiplier, &f.Multiplier, n.Num()); err != nil {
			return nil, err
		}
	} else {
		x, _ := f.Multiplier.Float64()
		y, _ := n.Float64()
		p := math.Pow(x, y)
		if math.IsInf(p, 0) || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: %v**%v", errNonFinite, f.Multiplier.RatString(), n.RatString())
		}
		res.Multiplier.SetFloat64(p)
	}
	res.Length.Mul(&f.Length, n)
	res.Mass.Mul(&f.Mass, n)
	res.Time.Mul(&f.Time, n)
	res.Current.Mul(&f.Current, n)
	res.Temperature.Mul(&f.Temperature, n)
	res.Amount.Mul(&f.Amount, n)
	res.LuminousIntensity.Mul(&f.LuminousIntensity, n)
	return res, nil
}

// powInt sets out to base**k exactly, where k is an arbitrary integer.
func powInt(out, base *big.Rat, k *big.Int) error {
	if k.Sign() == 0 {
		out.SetInt64(1)
		return nil
	}
	if base.Sign() == 0 && k.Sign() < 0 {
		return fmt.Errorf("%w: zero multiplier with negative exponent", errDivisionByZero)
	}
	abs := new(big.Int).Abs(k)
	num := new(big.Int).Exp(base.Num(), abs, nil)
	den := new(big.Int).Exp(base.Denom(), abs, nil)
	if k.Sign() < 0 {
		num, den = den, num
	}
	out.SetFrac(num, den)
	return nil
}
