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

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/unitcompile/reporter"
)

func TestTokenStream(t *testing.T) {
	testCases := []struct {
		expr   string
		tokens []Token
	}{
		{
			expr: "kg*m/s**2",
			tokens: []Token{
				{Text: "kg", Span: reporter.Span{Start: 0, End: 2}},
				{Text: "*", Span: reporter.Span{Start: 2, End: 3}},
				{Text: "m", Span: reporter.Span{Start: 3, End: 4}},
				{Text: "/", Span: reporter.Span{Start: 4, End: 5}},
				{Text: "s", Span: reporter.Span{Start: 5, End: 6}},
				{Text: "**", Span: reporter.Span{Start: 6, End: 8}},
				{Text: "2", Span: reporter.Span{Start: 8, End: 9}},
			},
		},
		{
			expr: "1/s**(1/2)",
			tokens: []Token{
				{Text: "1", Span: reporter.Span{Start: 0, End: 1}},
				{Text: "/", Span: reporter.Span{Start: 1, End: 2}},
				{Text: "s", Span: reporter.Span{Start: 2, End: 3}},
				{Text: "**", Span: reporter.Span{Start: 3, End: 5}},
				{Text: "(", Span: reporter.Span{Start: 5, End: 6}},
				{Text: "1", Span: reporter.Span{Start: 6, End: 7}},
				{Text: "/", Span: reporter.Span{Start: 7, End: 8}},
				{Text: "2", Span: reporter.Span{Start: 8, End: 9}},
				{Text: ")", Span: reporter.Span{Start: 9, End: 10}},
			},
		},
		{
			// µ and Ω are multi-byte; spans count bytes.
			expr: "µm*kΩ",
			tokens: []Token{
				{Text: "µm", Span: reporter.Span{Start: 0, End: 3}},
				{Text: "*", Span: reporter.Span{Start: 3, End: 4}},
				{Text: "kΩ", Span: reporter.Span{Start: 4, End: 7}},
			},
		},
		{
			expr: "-+()",
			tokens: []Token{
				{Text: "-", Span: reporter.Span{Start: 0, End: 1}},
				{Text: "+", Span: reporter.Span{Start: 1, End: 2}},
				{Text: "(", Span: reporter.Span{Start: 2, End: 3}},
				{Text: ")", Span: reporter.Span{Start: 3, End: 4}},
			},
		},
		{
			// Adjacent * * with nothing between lexes as one power operator.
			expr: "m***2",
			tokens: []Token{
				{Text: "m", Span: reporter.Span{Start: 0, End: 1}},
				{Text: "**", Span: reporter.Span{Start: 1, End: 3}},
				{Text: "*", Span: reporter.Span{Start: 3, End: 4}},
				{Text: "2", Span: reporter.Span{Start: 4, End: 5}},
			},
		},
		{
			expr: "12",
			tokens: []Token{
				{Text: "12", Span: reporter.Span{Start: 0, End: 2}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			ts := newTokenStream(tc.expr)
			for i, want := range tc.tokens {
				tok, err := ts.Get()
				require.NoError(t, err, "token %d", i)
				assert.Equal(t, want, tok, "token %d", i)
			}
			tok, err := ts.Get()
			require.NoError(t, err)
			assert.True(t, tok.EOF(), "expected EOF, got %q", tok.Text)
			assert.Equal(t, reporter.Span{Start: len(tc.expr), End: len(tc.expr)}, tok.Span)

			// EOF repeats.
			tok, err = ts.Get()
			require.NoError(t, err)
			assert.True(t, tok.EOF())
		})
	}
}

func TestTokenStreamErrors(t *testing.T) {
	testCases := []struct {
		expr   string
		errMsg string
		span   reporter.Span
	}{
		{expr: " ", errMsg: "unexpected character", span: reporter.Span{Start: 0, End: 1}},
		{expr: "kg m", errMsg: "unexpected character", span: reporter.Span{Start: 2, End: 3}},
		{expr: "123", errMsg: "longer than 2 digits", span: reporter.Span{Start: 0, End: 3}},
		{expr: "m**123", errMsg: "longer than 2 digits", span: reporter.Span{Start: 3, End: 6}},
		{expr: "&", errMsg: "unexpected character", span: reporter.Span{Start: 0, End: 1}},
		{expr: "j", errMsg: "unexpected character", span: reporter.Span{Start: 0, End: 1}},
		{expr: strings.Repeat("m", 129), errMsg: "longer than 128 characters", span: reporter.Span{Start: 0, End: 129}},
	}
	for _, tc := range testCases {
		t.Run(tc.errMsg, func(t *testing.T) {
			ts := newTokenStream(tc.expr)
			var err error
			for range len(tc.expr) {
				var tok Token
				if tok, err = ts.Get(); err != nil || tok.EOF() {
					break
				}
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
			assert.ErrorContains(t, err, tc.errMsg)

			var ews reporter.ErrorWithSpan
			require.True(t, errors.As(err, &ews))
			assert.Equal(t, tc.span, ews.Span())
		})
	}
}

// A run one rune past the symbol cap must fail even when the runes are
// multi-byte.
func TestTokenStreamSymbolCapInRunes(t *testing.T) {
	ts := newTokenStream(strings.Repeat("µ", 129))
	_, err := ts.Get()
	require.Error(t, err)
	assert.ErrorContains(t, err, "longer than 128 characters")

	ts = newTokenStream(strings.Repeat("µ", 128))
	tok, err := ts.Get()
	require.NoError(t, err)
	assert.Equal(t, 128, strings.Count(tok.Text, "µ"))
}

func TestPutback(t *testing.T) {
	ts := newTokenStream("m/s")

	first, err := ts.Get()
	require.NoError(t, err)
	second, err := ts.Get()
	require.NoError(t, err)
	assert.Equal(t, "m", first.Text)
	assert.Equal(t, "/", second.Text)

	// Pushed back tokens pop in LIFO order with their spans intact.
	ts.Putback(first)
	ts.Putback(second)

	tok, err := ts.Get()
	require.NoError(t, err)
	assert.Equal(t, second, tok)
	tok, err = ts.Get()
	require.NoError(t, err)
	assert.Equal(t, first, tok)

	tok, err = ts.Get()
	require.NoError(t, err)
	assert.Equal(t, "s", tok.Text)
}
