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
	"strings"

	"github.com/rivo/uniseg"
)

// Render formats err as a two-line snippet: the expression itself, and a
// caret run underneath the span the error is about, followed by the message.
//
//	degC*degC
//	     ^^^^ incompatible offset units: cannot multiply two offset units
//
// Caret alignment uses rendered column widths rather than byte offsets, so
// multi-byte symbols such as µ and Ω do not skew the underline. An error
// without a span renders as its plain message.
func Render(expression string, err error) string {
	var ews ErrorWithSpan
	if !errors.As(err, &ews) {
		return err.Error()
	}
	span := clamp(ews.Span(), len(expression))

	indent := uniseg.StringWidth(expression[:span.Start])
	width := uniseg.StringWidth(expression[span.Start:span.End])
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(expression)
	b.WriteByte('\n')
	for range indent {
		b.WriteByte(' ')
	}
	for range width {
		b.WriteByte('^')
	}
	b.WriteByte(' ')
	b.WriteString(ews.Unwrap().Error())
	return b.String()
}

// clamp bounds a span to the expression so that a span pointing just past
// the end, like the one for a missing closing parenthesis, still renders.
func clamp(s Span, n int) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.Start > n {
		s.Start = n
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	if s.End > n {
		s.End = n
	}
	return s
}
