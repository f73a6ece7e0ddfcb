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

package unit

import (
	"iter"
	"math/big"

	"github.com/tidwall/btree"

	"github.com/bufbuild/unitcompile/factor"
)

// def is one row of a unit table. The multiplier and offset fields hold
// rational literals in the syntax accepted by [big.Rat.SetString]; the empty
// string stands for the zero value of the column (multiplier 1, offset 0).
// Dimension columns are the exponents of the seven SI base units.
type def struct {
	symbol     string
	multiplier string
	offset     string

	m, kg, s, a, k, mol, cd int
}

// siDefs lists the SI base units, the gram, and the named derived SI units.
//
// The gram carries multiplier 1/1000 because the coherent base unit of mass
// is the kilogram. The radian and steradian are dimensionless.
var siDefs = []def{
	{symbol: "m", m: 1},
	{symbol: "kg", kg: 1},
	{symbol: "g", multiplier: "1/1000", kg: 1},
	{symbol: "s", s: 1},
	{symbol: "A", a: 1},
	{symbol: "K", k: 1},
	{symbol: "mol", mol: 1},
	{symbol: "cd", cd: 1},
	{symbol: "rad"},
	{symbol: "sr"},
	{symbol: "Hz", s: -1},
	{symbol: "N", m: 1, kg: 1, s: -2},
	{symbol: "Pa", m: -1, kg: 1, s: -2},
	{symbol: "J", m: 2, kg: 1, s: -2},
	{symbol: "W", m: 2, kg: 1, s: -3},
	{symbol: "C", s: 1, a: 1},
	{symbol: "V", m: 2, kg: 1, s: -3, a: -1},
	{symbol: "F", m: -2, kg: -1, s: 4, a: 2},
	{symbol: "Ω", m: 2, kg: 1, s: -3, a: -2},
	{symbol: "S", m: -2, kg: -1, s: -2, a: -1},
	{symbol: "Wb", m: 2, kg: 1, s: -2, a: -1},
	{symbol: "T", kg: 1, s: -2, a: -1},
	{symbol: "H", m: 2, kg: 1, s: -2, a: -2},
	{symbol: "degC", offset: "273.15", k: 1},
	{symbol: "lm", cd: 1},
	{symbol: "lx", m: -2, cd: 1},
	{symbol: "Bq", s: -1},
	{symbol: "Gy", m: 2, s: -2},
	{symbol: "Sv", m: 2, s: -2},
	{symbol: "kat", s: -1, mol: 1},
	{symbol: "L", multiplier: "1/1000", m: 3},
}

// nonSIDefs lists units outside the SI that are accepted on input and
// rewritten into base units. The "rad" here is the dosimetry rad; this
// table is consulted before the SI table, so it shadows the radian. "degF"
// and "degR" use the exact ratio 5/9.
var nonSIDefs = []def{
	{symbol: "Å", multiplier: "1e-10", m: 1},
	{symbol: "ua", multiplier: "1.495979e11", m: 1},
	{symbol: "ch", multiplier: "2.011684e1", m: 1},
	{symbol: "fathom", multiplier: "1.828804", m: 1},
	{symbol: "fermi", multiplier: "1e-15", m: 1},
	{symbol: "ft", multiplier: "3.048e-1", m: 1},
	{symbol: "in", multiplier: "2.54e-2", m: 1},
	{symbol: "µ", multiplier: "1e-6", m: 1},
	{symbol: "mil", multiplier: "2.54e-5", m: 1},
	{symbol: "mi", multiplier: "1.609344e3", m: 1},
	{symbol: "yd", multiplier: "9.144e-1", m: 1},
	{symbol: "oz", multiplier: "2.834952e-2", kg: 1},
	{symbol: "lb", multiplier: "4.535924e-1", kg: 1},
	{symbol: "d", multiplier: "8.64e4", s: 1},
	{symbol: "h", multiplier: "3.6e3", s: 1},
	{symbol: "min", multiplier: "60", s: 1},
	{symbol: "degF", multiplier: "10/18", offset: "459.67", k: 1},
	{symbol: "degR", multiplier: "10/18", k: 1},
	{symbol: "BTU", multiplier: "1.05587e3", m: 2, kg: 1, s: -2},
	{symbol: "cal", multiplier: "4.19002", m: 2, kg: 1, s: -2},
	{symbol: "eV", multiplier: "1.602176e-19", m: 2, kg: 1, s: -2},
	{symbol: "lbf", multiplier: "4.448222", m: 1, kg: 1, s: -2},
	{symbol: "horsepower", multiplier: "7.46e2", m: 2, kg: 1, s: -3},
	{symbol: "atm", multiplier: "1.01325e5", m: -1, kg: 1, s: -2},
	{symbol: "bar", multiplier: "1e5", m: -1, kg: 1, s: -2},
	{symbol: "inHg", multiplier: "3.386389e3", m: -1, kg: 1, s: -2},
	{symbol: "psi", multiplier: "6.894757", m: -1, kg: 1, s: -2},
	{symbol: "torr", multiplier: "1.333224e2", m: -1, kg: 1, s: -2},
	{symbol: "rad", multiplier: "1e-2", m: 2, s: -2},
	{symbol: "rem", multiplier: "1e-2", m: 2, s: -2},
	{symbol: "gal", multiplier: "3.785412e-3", m: 3},
}

// prefixDefs lists the SI decimal prefixes from yotta down to yocto.
var prefixDefs = []struct {
	symbol string
	value  string
}{
	{"Y", "1e24"},
	{"Z", "1e21"},
	{"E", "1e18"},
	{"P", "1e15"},
	{"T", "1e12"},
	{"G", "1e9"},
	{"M", "1e6"},
	{"k", "1e3"},
	{"h", "1e2"},
	{"da", "10"},
	{"d", "1/10"},
	{"c", "1/100"},
	{"m", "1/1000"},
	{"µ", "1e-6"},
	{"n", "1e-9"},
	{"p", "1e-12"},
	{"f", "1e-15"},
	{"a", "1e-18"},
	{"z", "1e-21"},
	{"y", "1e-24"},
}

var (
	siUnits    btree.Map[string, *factor.Factors]
	nonSIUnits btree.Map[string, *factor.Factors]
	prefixes   btree.Map[string, *big.Rat]
)

func init() {
	for _, d := range siDefs {
		siUnits.Set(d.symbol, d.factors())
	}
	for _, d := range nonSIDefs {
		nonSIUnits.Set(d.symbol, d.factors())
	}
	for _, p := range prefixDefs {
		prefixes.Set(p.symbol, mustRat(p.value))
	}
}

func (d def) factors() *factor.Factors {
	f := factor.New()
	if d.multiplier != "" {
		f.Multiplier.Set(mustRat(d.multiplier))
	}
	if d.offset != "" {
		f.Offset.Set(mustRat(d.offset))
	}
	f.Length.SetInt64(int64(d.m))
	f.Mass.SetInt64(int64(d.kg))
	f.Time.SetInt64(int64(d.s))
	f.Current.SetInt64(int64(d.a))
	f.Temperature.SetInt64(int64(d.k))
	f.Amount.SetInt64(int64(d.mol))
	f.LuminousIntensity.SetInt64(int64(d.cd))
	return f
}

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("unit: malformed rational literal " + s)
	}
	return r
}

// Units returns an iterator over the SI unit table, ordered by symbol.
// The yielded factors are copies; mutating them does not alter the table.
func Units() iter.Seq2[string, *factor.Factors] {
	return tableSeq(&siUnits)
}

// NonSIUnits returns an iterator over the non-SI unit table, ordered by
// symbol. The yielded factors are copies.
func NonSIUnits() iter.Seq2[string, *factor.Factors] {
	return tableSeq(&nonSIUnits)
}

// Prefixes returns an iterator over the SI prefix table, ordered by symbol.
// The yielded scales are copies.
func Prefixes() iter.Seq2[string, *big.Rat] {
	return func(yield func(string, *big.Rat) bool) {
		prefixes.Scan(func(symbol string, scale *big.Rat) bool {
			return yield(symbol, new(big.Rat).Set(scale))
		})
	}
}

func tableSeq(m *btree.Map[string, *factor.Factors]) iter.Seq2[string, *factor.Factors] {
	return func(yield func(string, *factor.Factors) bool) {
		m.Scan(func(symbol string, f *factor.Factors) bool {
			return yield(symbol, f.Clone())
		})
	}
}
