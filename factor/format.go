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

package factor

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// String renders the full dimensional record with exact rationals, one field
// per SI base symbol:
//
//	Factors(multiplier=1/1000, offset=0, m=1, kg=0, s=-1, A=0, K=0, mol=0, cd=0)
//
// This is the canonical presentation for drivers and test goldens.
func (f *Factors) String() string {
	return fmt.Sprintf(
		"Factors(multiplier=%s, offset=%s, m=%s, kg=%s, s=%s, A=%s, K=%s, mol=%s, cd=%s)",
		f.Multiplier.RatString(),
		f.Offset.RatString(),
		f.Length.RatString(),
		f.Mass.RatString(),
		f.Time.RatString(),
		f.Current.RatString(),
		f.Temperature.RatString(),
		f.Amount.RatString(),
		f.LuminousIntensity.RatString(),
	)
}

// GoString implements [fmt.GoStringer].
//
// This exists to get readable output out of the assert package; %#v on the
// raw struct dumps big.Rat internals.
func (f *Factors) GoString() string {
	return f.String()
}

// Canonical renders the compact product form, a human-oriented SI expression
// such as (1/1000)*m*s**-1 for millimeters per second. The multiplier is
// omitted when it is 1, fractional values are parenthesized, and a factor
// with no nonzero parts renders as "1". Offsets do not appear; this form
// describes the dimensional shape, not the affine shift.
func (f *Factors) Canonical() string {
	var b strings.Builder
	if f.Multiplier.Cmp(ratOne) != 0 {
		writeRat(&b, &f.Multiplier)
	}
	writeDim(&b, "m", &f.Length)
	writeDim(&b, "kg", &f.Mass)
	writeDim(&b, "s", &f.Time)
	writeDim(&b, "A", &f.Current)
	writeDim(&b, "K", &f.Temperature)
	writeDim(&b, "mol", &f.Amount)
	writeDim(&b, "cd", &f.LuminousIntensity)
	s := strings.TrimPrefix(b.String(), "*")
	if s == "" {
		return "1"
	}
	return s
}

var ratOne = big.NewRat(1, 1)

// writeRat writes a rational, parenthesized if it is not an integer.
func writeRat(b *strings.Builder, r *big.Rat) {
	if r.IsInt() {
		b.WriteString(r.RatString())
		return
	}
	b.WriteByte('(')
	b.WriteString(r.RatString())
	b.WriteByte(')')
}

// writeDim writes one *sym**exp product element, leaving out zero exponents
// and the redundant **1.
func writeDim(b *strings.Builder, sym string, exp *big.Rat) {
	if exp.Sign() == 0 {
		return
	}
	b.WriteByte('*')
	b.WriteString(sym)
	if exp.Cmp(ratOne) == 0 {
		return
	}
	b.WriteString("**")
	writeRat(b, exp)
}

// MarshalJSON encodes the record with every field as an exact rational
// string, so consumers that cannot represent rationals natively still see
// the precise values.
func (f *Factors) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Multiplier string `json:"multiplier"`
		Offset     string `json:"offset"`
		M          string `json:"m"`
		Kg         string `json:"kg"`
		S          string `json:"s"`
		A          string `json:"A"`
		K          string `json:"K"`
		Mol        string `json:"mol"`
		Cd         string `json:"cd"`
	}{
		Multiplier: f.Multiplier.RatString(),
		Offset:     f.Offset.RatString(),
		M:          f.Length.RatString(),
		Kg:         f.Mass.RatString(),
		S:          f.Time.RatString(),
		A:          f.Current.RatString(),
		K:          f.Temperature.RatString(),
		Mol:        f.Amount.RatString(),
		Cd:         f.LuminousIntensity.RatString(),
	})
}
