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

// Package unitcompile provides the entry point for a compiler of unit
// expressions. "Compile" in this case means parsing an expression such as
// "kg*m/s**2" and reducing it to the factors of its SI base-unit
// representation: an exact rational multiplier, an additive offset for
// units like degC, and a rational exponent for each of the seven SI base
// units.
//
// The sub-packages contain the stages and their models:
//   - parser lexes and parses expressions.
//     Also see: parser.Parse
//   - unit holds the unit and prefix tables and resolves symbols.
//     Also see: unit.Resolve
//   - factor is the dimensional algebra that results are expressed in.
//     Also see: factor.Factors
//   - reporter carries errors with their location in the expression.
//     Also see: reporter.Render
//
// # Parse
//
// For one expression, call Parse:
//
//	f, err := unitcompile.Parse("kg*m/s**2")
//
// On success f holds multiplier 1 and the base exponents of the newton. On
// failure the error wraps a sentinel that classifies it and carries the
// span of the offending input.
//
// # Converter
//
// A Converter accepts a list of expressions and produces the list of their
// factors, converting in parallel across CPU cores. The zero value is ready
// to use:
//
//	var c unitcompile.Converter
//	factors, err := c.Convert(ctx, "mm/s", "km**2", "degC")
//
// It will use default parallelism, equal to the number of CPU cores
// detected, and it will fail fast at the first sign of any error. Both
// aspects can be customized by setting its fields.
package unitcompile
