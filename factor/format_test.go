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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	testCases := []struct {
		name string
		f    *Factors
		want string
	}{
		{
			name: "identity",
			f:    New(),
			want: "Factors(multiplier=1, offset=0, m=0, kg=0, s=0, A=0, K=0, mol=0, cd=0)",
		},
		{
			name: "millimeters per second",
			f:    newFactors(t, "1/1000", "0", 1, 0, -1, 0, 0, 0, 0),
			want: "Factors(multiplier=1/1000, offset=0, m=1, kg=0, s=-1, A=0, K=0, mol=0, cd=0)",
		},
		{
			name: "newton",
			f:    newFactors(t, "1", "0", 1, 1, -2, 0, 0, 0, 0),
			want: "Factors(multiplier=1, offset=0, m=1, kg=1, s=-2, A=0, K=0, mol=0, cd=0)",
		},
		{
			name: "celsius",
			f:    newFactors(t, "1", "5463/20", 0, 0, 0, 0, 1, 0, 0),
			want: "Factors(multiplier=1, offset=5463/20, m=0, kg=0, s=0, A=0, K=1, mol=0, cd=0)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.String())
		})
	}
}

func TestGoString(t *testing.T) {
	f := newFactors(t, "1/1000", "0", 1, 0, -1, 0, 0, 0, 0)
	assert.Equal(t, "Factors(multiplier=1/1000, offset=0, m=1, kg=0, s=-1, A=0, K=0, mol=0, cd=0)", f.GoString())
}

func TestCanonical(t *testing.T) {
	half := newFactors(t, "1/2", "0", 0, 0, 0, 0, 0, 0, 0)

	sqrtHertz, err := newFactors(t, "1", "0", 0, 0, -1, 0, 0, 0, 0).Pow(half)
	require.NoError(t, err)

	testCases := []struct {
		name string
		f    *Factors
		want string
	}{
		{name: "dimensionless one", f: New(), want: "1"},
		{name: "bare number", f: FromInt(5), want: "5"},
		{name: "meter", f: newFactors(t, "1", "0", 1, 0, 0, 0, 0, 0, 0), want: "m"},
		{name: "gram", f: newFactors(t, "1/1000", "0", 0, 1, 0, 0, 0, 0, 0), want: "(1/1000)*kg"},
		{name: "newton", f: newFactors(t, "1", "0", 1, 1, -2, 0, 0, 0, 0), want: "m*kg*s**-2"},
		{name: "volt", f: newFactors(t, "1", "0", 2, 1, -3, -1, 0, 0, 0), want: "m**2*kg*s**-3*A**-1"},
		{name: "fractional exponent", f: sqrtHertz, want: "s**(-1/2)"},
		{name: "hour", f: newFactors(t, "3600", "0", 0, 0, 1, 0, 0, 0, 0), want: "3600*s"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Canonical())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(newFactors(t, "1/1000", "5463/20", 1, 0, -1, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"multiplier":"1/1000","offset":"5463/20","m":"1","kg":"0","s":"-1","A":"0","K":"0","mol":"0","cd":"0"}`,
		string(data))
}
