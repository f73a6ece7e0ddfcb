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
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/unitcompile/reporter"
)

const (
	// maxDigits bounds a run of decimal digits. Exponents and coefficients
	// in unit expressions are small; anything longer is a typo.
	maxDigits = 2
	// maxSymbolLen bounds a run of alphabetic characters, counted in runes.
	maxSymbolLen = 128
)

// letters is the alphabet of unit symbols accepted in expressions. It is a
// fixed list, not a range: any character outside it, space included, fails
// here rather than during resolution. A few table rows (Å, J, ua, BTU,
// horsepower) contain characters the list lacks, so those symbols resolve
// but cannot be lexed.
const letters = "aABbcCdeEfFgGhHikKlLmMµnNopPqrSstTvVWxyYzZΩ"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return strings.ContainsRune(letters, r)
}

// Token is one lexical element of a unit expression: an operator, a run of
// digits, or a run of alphabetic characters. The token with empty Text marks
// the end of the expression; its span is the empty range at the end.
type Token struct {
	Text string
	Span reporter.Span
}

// EOF reports whether this token marks the end of the expression.
func (t Token) EOF() bool {
	return t.Text == ""
}

// isNumber reports whether this token is a run of digits.
func (t Token) isNumber() bool {
	return t.Text != "" && isDigit(rune(t.Text[0]))
}

// isSymbol reports whether this token is a run of alphabetic characters,
// which makes it a candidate unit symbol.
func (t Token) isSymbol() bool {
	r, _ := utf8.DecodeRuneInString(t.Text)
	return t.Text != "" && isLetter(r)
}

// tokenStream produces the tokens of a unit expression on demand. The
// parser pulls tokens with Get and undoes lookahead with Putback; pushed
// back tokens form a stack, so nested productions can each return their
// one token of lookahead without clobbering one another.
type tokenStream struct {
	expression string
	cursor     int
	pushback   []Token
}

func newTokenStream(expression string) *tokenStream {
	return &tokenStream{expression: expression}
}

// done reports whether all input has been consumed.
func (ts *tokenStream) done() bool {
	return ts.cursor >= len(ts.expression)
}

// rest returns the unlexed text.
func (ts *tokenStream) rest() string {
	return ts.expression[ts.cursor:]
}

// peek returns the next character without consuming it, or -1 at the end.
func (ts *tokenStream) peek() rune {
	if ts.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(ts.rest())
	return r
}

// pop consumes and returns the next character, or -1 at the end.
func (ts *tokenStream) pop() rune {
	r := ts.peek()
	if r != -1 {
		ts.cursor += utf8.RuneLen(r)
	}
	return r
}

// takeWhile consumes characters while they match f.
func (ts *tokenStream) takeWhile(f func(rune) bool) {
	for !ts.done() && f(ts.peek()) {
		_ = ts.pop()
	}
}

// Putback returns tok to the stream so that the next Get yields it again.
func (ts *tokenStream) Putback(tok Token) {
	ts.pushback = append(ts.pushback, tok)
}

// Get returns the next token. At the end of the expression it returns the
// EOF token; repeated calls at the end are fine and keep returning it. A
// character outside the expression alphabet or an overlong run wraps
// ErrMalformedToken.
func (ts *tokenStream) Get() (Token, error) {
	if n := len(ts.pushback); n > 0 {
		tok := ts.pushback[n-1]
		ts.pushback = ts.pushback[:n-1]
		return tok, nil
	}
	if ts.done() {
		return Token{Span: reporter.Span{Start: ts.cursor, End: ts.cursor}}, nil
	}

	start := ts.cursor
	switch r := ts.pop(); {
	case r == '-' || r == '+' || r == '/' || r == '(' || r == ')':
		// Single-character operator.
	case r == '*':
		// "**" lexes as one token; a lone "*" is multiplication.
		if ts.peek() == '*' {
			_ = ts.pop()
		}
	case isDigit(r):
		ts.takeWhile(isDigit)
		if ts.cursor-start > maxDigits {
			return Token{}, reporter.Errorf(ts.spanFrom(start),
				"%w: number %q is longer than %d digits",
				ErrMalformedToken, ts.expression[start:ts.cursor], maxDigits)
		}
	case isLetter(r):
		ts.takeWhile(isLetter)
		if utf8.RuneCountInString(ts.expression[start:ts.cursor]) > maxSymbolLen {
			return Token{}, reporter.Errorf(ts.spanFrom(start),
				"%w: symbol is longer than %d characters",
				ErrMalformedToken, maxSymbolLen)
		}
	default:
		return Token{}, reporter.Errorf(ts.spanFrom(start),
			"%w: unexpected character %q", ErrMalformedToken, r)
	}

	return Token{
		Text: ts.expression[start:ts.cursor],
		Span: ts.spanFrom(start),
	}, nil
}

func (ts *tokenStream) spanFrom(start int) reporter.Span {
	return reporter.Span{Start: start, End: ts.cursor}
}
