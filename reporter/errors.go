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
	"fmt"
)

// ErrInvalidExpression is a sentinel error returned by the parse entry points
// when an error was reported but the configured ErrorReporter returned nil
// for it. Unit-expression parsing has no recovery points, so a swallowed
// error still terminates the parse; this sentinel is what the caller sees.
var ErrInvalidExpression = errors.New("parse failed: invalid unit expression")

// Span identifies the byte range [Start, End) of an expression that an error
// is about, such as the token that failed to resolve. End may equal Start
// for errors about a missing token, e.g. an absent closing parenthesis.
type Span struct {
	Start, End int
}

func (s Span) String() string {
	if s.End <= s.Start {
		return fmt.Sprintf("offset %d", s.Start)
	}
	return fmt.Sprintf("offset %d-%d", s.Start, s.End)
}

// ErrorWithSpan is an error about a unit expression that carries the
// location in the expression that caused it.
//
// The value of Error() contains both the span and the underlying error.
// The value of Unwrap() is only the underlying error, so wrapped sentinels
// remain visible to errors.Is.
type ErrorWithSpan interface {
	error
	Span() Span
	Unwrap() error
}

// Error creates a new ErrorWithSpan from the given span and underlying error.
func Error(span Span, err error) ErrorWithSpan {
	return errorWithSpan{span: span, underlying: err}
}

// Errorf creates a new ErrorWithSpan whose underlying error is built with
// fmt.Errorf. The usual %w wrapping applies.
func Errorf(span Span, format string, args ...any) ErrorWithSpan {
	return errorWithSpan{span: span, underlying: fmt.Errorf(format, args...)}
}

type errorWithSpan struct {
	underlying error
	span       Span
}

func (e errorWithSpan) Error() string {
	return fmt.Sprintf("%s: %v", e.span, e.underlying)
}

func (e errorWithSpan) Span() Span {
	return e.span
}

func (e errorWithSpan) Unwrap() error {
	return e.underlying
}

var _ ErrorWithSpan = errorWithSpan{}
