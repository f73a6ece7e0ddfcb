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

package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		err  error
		want string
	}{
		{
			name: "span in the middle",
			expr: "degC*degC",
			err:  Errorf(Span{Start: 5, End: 9}, "cannot multiply two offset units"),
			want: "degC*degC\n" +
				"     ^^^^ cannot multiply two offset units",
		},
		{
			name: "span at the start",
			expr: "bogus",
			err:  Errorf(Span{Start: 0, End: 5}, `unknown unit "bogus"`),
			want: "bogus\n" +
				`^^^^^ unknown unit "bogus"`,
		},
		{
			// Carets line up with display columns, not byte offsets: the
			// prefix µm* is five bytes but three columns wide.
			name: "multi-byte prefix",
			expr: "µm*mx",
			err:  Errorf(Span{Start: 4, End: 6}, "boom"),
			want: "µm*mx\n" +
				"   ^^ boom",
		},
		{
			// An empty span still gets one caret.
			name: "empty span at the end",
			expr: "(m",
			err:  Errorf(Span{Start: 2, End: 2}, "missing closing parenthesis"),
			want: "(m\n" +
				"  ^ missing closing parenthesis",
		},
		{
			name: "span past the end is clamped",
			expr: "m",
			err:  Errorf(Span{Start: 50, End: 60}, "boom"),
			want: "m\n" +
				" ^ boom",
		},
		{
			name: "negative span is clamped",
			expr: "m",
			err:  Errorf(Span{Start: -3, End: -1}, "boom"),
			want: "m\n" +
				"^ boom",
		},
		{
			name: "plain error",
			expr: "m",
			err:  errors.New("no span here"),
			want: "no span here",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.expr, tc.err))
		})
	}
}

func TestRenderOmitsOffsetPrefix(t *testing.T) {
	// The span is drawn, not spelled out: the "offset N-M" prefix of the
	// error's own message must not appear in the snippet.
	got := Render("bogus", Errorf(Span{Start: 0, End: 5}, `unknown unit "bogus"`))
	assert.NotContains(t, got, "offset")
}
