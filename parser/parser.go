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
	"strconv"

	"github.com/bufbuild/unitcompile/factor"
	"github.com/bufbuild/unitcompile/reporter"
	"github.com/bufbuild/unitcompile/unit"
)

// Parse converts a unit expression to the factors of its SI base-unit
// representation.
//
// Parsing stops at the first error; the handler decides how that error
// surfaces and what Parse ultimately returns for it. A nil handler returns
// errors directly. Errors carry a span into the expression and wrap one of
// ErrMalformedToken, unit.ErrUnknownUnit, or factor.ErrIncompatibleOffset.
func Parse(expression string, handler *reporter.Handler) (*factor.Factors, error) {
	p := &unitParser{ts: newTokenStream(expression)}
	f, err := p.parse()
	if err == nil {
		return f, nil
	}
	if handler == nil {
		return nil, err
	}
	_ = handler.HandleError(err)
	return nil, handler.Error()
}

// unitParser is a recursive-descent parser over a token stream. Each
// production consumes the tokens of its own construct and puts back the one
// token of lookahead that told it to stop.
//
// The grammar, with the usual meaning of repetition and alternation:
//
//	expression = ( numberterm | term ) { ("*"|"/") term }
//	term       = unit { "**" numberterm }
//	unit       = SYMBOL | "(" expression ")"
//	numberterm = number { ("*"|"/") number }   (arithmetic only in parens)
//	number     = NUMBER | "-" number | "+" number | "(" numberterm ")"
//
// A numberterm may lead an expression only when an operator follows it:
// "5*m" is five meters, but "5" alone is not a unit expression.
type unitParser struct {
	ts *tokenStream
}

func (p *unitParser) parse() (*factor.Factors, error) {
	f, _, err := p.expression()
	if err != nil {
		return nil, err
	}
	tok, err := p.ts.Get()
	if err != nil {
		return nil, err
	}
	if !tok.EOF() {
		return nil, reporter.Errorf(tok.Span,
			"%w: unexpected %q after expression", ErrMalformedToken, tok.Text)
	}
	return f, nil
}

func (p *unitParser) expression() (*factor.Factors, reporter.Span, error) {
	tok, err := p.ts.Get()
	if err != nil {
		return nil, tok.Span, err
	}
	p.ts.Putback(tok)

	var (
		f  *factor.Factors
		sp reporter.Span
	)
	leadingNumber := tok.isNumber()
	if leadingNumber {
		f, sp, err = p.numberTerm(false)
	} else {
		f, sp, err = p.term()
	}
	if err != nil {
		return nil, sp, err
	}

	combined := false
	for {
		tok, err := p.ts.Get()
		if err != nil {
			return nil, sp, err
		}
		var combine func(*factor.Factors) (*factor.Factors, error)
		switch tok.Text {
		case "*":
			combine = f.Mul
		case "/":
			combine = f.Div
		default:
			if !tok.EOF() {
				p.ts.Putback(tok)
			}
			if leadingNumber && !combined {
				return nil, sp, reporter.Errorf(sp,
					"%w: a bare number is not a unit expression", ErrMalformedToken)
			}
			return f, sp, nil
		}
		g, gsp, err := p.term()
		if err != nil {
			return nil, gsp, err
		}
		if f, err = combine(g); err != nil {
			return nil, gsp, reporter.Error(gsp, err)
		}
		sp = join(sp, gsp)
		combined = true
	}
}

func (p *unitParser) term() (*factor.Factors, reporter.Span, error) {
	f, sp, err := p.unit()
	if err != nil {
		return nil, sp, err
	}
	for {
		tok, err := p.ts.Get()
		if err != nil {
			return nil, sp, err
		}
		if tok.Text != "**" {
			if !tok.EOF() {
				p.ts.Putback(tok)
			}
			return f, sp, nil
		}
		exp, esp, err := p.numberTerm(false)
		if err != nil {
			return nil, esp, err
		}
		full := join(sp, esp)
		if f, err = f.Pow(exp); err != nil {
			return nil, full, reporter.Error(full, err)
		}
		sp = full
	}
}

func (p *unitParser) unit() (*factor.Factors, reporter.Span, error) {
	tok, err := p.ts.Get()
	if err != nil {
		return nil, tok.Span, err
	}
	switch {
	case tok.Text == "(":
		f, _, err := p.expression()
		if err != nil {
			return nil, tok.Span, err
		}
		sp, err := p.closeParen(tok.Span)
		if err != nil {
			return nil, sp, err
		}
		return f, sp, nil
	case tok.isSymbol():
		f, err := unit.Resolve(tok.Text)
		if err != nil {
			return nil, tok.Span, reporter.Error(tok.Span, err)
		}
		return f, tok.Span, nil
	case tok.EOF():
		return nil, tok.Span, reporter.Errorf(tok.Span,
			"%w: expression ends where a unit is expected", ErrMalformedToken)
	}
	return nil, tok.Span, reporter.Errorf(tok.Span,
		"%w: expected a unit, not %q", ErrMalformedToken, tok.Text)
}

// numberTerm parses a number and, inside parentheses, products and
// quotients of numbers. Outside parentheses a single number is parsed and
// any operator is left for the enclosing expression, which is what makes
// "5*m" multiply a coefficient into a unit rather than fail on "m" as a
// number.
func (p *unitParser) numberTerm(inParens bool) (*factor.Factors, reporter.Span, error) {
	f, sp, err := p.number()
	if err != nil || !inParens {
		return f, sp, err
	}
	for {
		tok, err := p.ts.Get()
		if err != nil {
			return nil, sp, err
		}
		var combine func(*factor.Factors) (*factor.Factors, error)
		switch tok.Text {
		case "*":
			combine = f.Mul
		case "/":
			combine = f.Div
		default:
			if !tok.EOF() {
				p.ts.Putback(tok)
			}
			return f, sp, nil
		}
		g, gsp, err := p.number()
		if err != nil {
			return nil, gsp, err
		}
		if f, err = combine(g); err != nil {
			return nil, gsp, reporter.Error(gsp, err)
		}
		sp = join(sp, gsp)
	}
}

func (p *unitParser) number() (*factor.Factors, reporter.Span, error) {
	tok, err := p.ts.Get()
	if err != nil {
		return nil, tok.Span, err
	}
	switch {
	case tok.Text == "(":
		f, _, err := p.numberTerm(true)
		if err != nil {
			return nil, tok.Span, err
		}
		sp, err := p.closeParen(tok.Span)
		if err != nil {
			return nil, sp, err
		}
		return f, sp, nil
	case tok.isNumber():
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, tok.Span, reporter.Errorf(tok.Span,
				"%w: %q is not a number", ErrMalformedToken, tok.Text)
		}
		return factor.FromInt(n), tok.Span, nil
	case tok.Text == "-":
		f, sp, err := p.number()
		if err != nil {
			return nil, sp, err
		}
		return f.Neg(), join(tok.Span, sp), nil
	case tok.Text == "+":
		f, sp, err := p.number()
		if err != nil {
			return nil, sp, err
		}
		return f.Pos(), join(tok.Span, sp), nil
	case tok.EOF():
		return nil, tok.Span, reporter.Errorf(tok.Span,
			"%w: expression ends where a number is expected", ErrMalformedToken)
	}
	return nil, tok.Span, reporter.Errorf(tok.Span,
		"%w: expected a number, not %q", ErrMalformedToken, tok.Text)
}

// closeParen consumes the closing parenthesis of a group opened at open.
func (p *unitParser) closeParen(open reporter.Span) (reporter.Span, error) {
	closer, err := p.ts.Get()
	if err != nil {
		return closer.Span, err
	}
	if closer.EOF() {
		return closer.Span, reporter.Errorf(closer.Span,
			"%w: missing closing parenthesis", ErrMalformedToken)
	}
	if closer.Text != ")" {
		return closer.Span, reporter.Errorf(closer.Span,
			"%w: expected closing parenthesis, not %q", ErrMalformedToken, closer.Text)
	}
	return join(open, closer.Span), nil
}

func join(a, b reporter.Span) reporter.Span {
	return reporter.Span{Start: a.Start, End: b.End}
}
