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

// Package unit defines the unit and prefix tables and resolves unit symbols
// to their SI base-unit factors.
//
// Three tables drive resolution: a set of accepted non-SI units, the SI
// units (base and named derived units), and the SI decimal prefixes. The
// unit tables are consulted in that order, so the dosimetry "rad" shadows
// the radian. A symbol found in neither is split into a prefix and an SI
// suffix as a last resort; "T" is therefore the tesla, never the tera
// prefix. Every successful resolution returns a fresh copy, so callers can
// combine and scale results freely without corrupting the tables.
package unit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/unitcompile/factor"
)

// ErrUnknownUnit is returned when a symbol matches no unit table and no
// prefix plus SI unit decomposition.
var ErrUnknownUnit = errors.New("unknown unit")

// Resolve maps a unit symbol to its dimensional factors.
//
// Lookup tries the non-SI table, then the SI table, then a prefixed SI
// unit. The prefix is the first rune of the symbol, except that a symbol
// beginning with "da" always takes the two-rune deca prefix. The remainder
// must be an SI unit; prefixes do not attach to non-SI units.
func Resolve(symbol string) (*factor.Factors, error) {
	if f, ok := nonSIUnits.Get(symbol); ok {
		return f.Clone(), nil
	}
	if f, ok := siUnits.Get(symbol); ok {
		return f.Clone(), nil
	}
	_, n := utf8.DecodeRuneInString(symbol)
	if strings.HasPrefix(symbol, "da") {
		n = 2
	}
	if scale, ok := prefixes.Get(symbol[:n]); ok {
		if f, ok := siUnits.Get(symbol[n:]); ok {
			res := f.Clone()
			res.Multiplier.Mul(&res.Multiplier, scale)
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownUnit, symbol)
}
