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

// Package parser contains the logic for parsing unit expressions such as
// "kg*m/s**2" into the dimensional factors of their SI base-unit
// representation.
//
// The parser is a small recursive descent over a pull-based token stream.
// Units multiply, divide, and raise to rational powers; parentheses group
// subexpressions and exponents. The result of a successful parse is a
// factor.Factors holding an exact rational multiplier, an additive offset
// for units like degC, and the exponent of each of the seven SI base units.
//
// Errors carry the byte span of the offending input and wrap a sentinel
// that classifies them; see Parse for details.
package parser
