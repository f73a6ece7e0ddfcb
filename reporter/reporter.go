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

// Package reporter contains the error-reporting plumbing shared by the lexer,
// the parser, and the factor algebra. Errors are values that carry the span
// of the expression they are about; a Reporter decides how they surface and
// a Handler serializes them for a single parse.
package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. Whatever error
// it returns, including nil, terminates the current parse: unit expressions
// are parsed without recovery, so there is never a second error to continue
// toward. Returning nil only changes the error the caller ultimately
// receives to ErrInvalidExpression.
type ErrorReporter func(err ErrorWithSpan) error

// Reporter receives the errors encountered while parsing an expression.
type Reporter interface {
	Error(ErrorWithSpan) error
}

// NewReporter creates a Reporter from a function.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc{errs: errs}
}

type reporterFunc struct {
	errs ErrorReporter
}

func (r reporterFunc) Error(err ErrorWithSpan) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

// Handler wraps a Reporter with the bookkeeping for one or more parses: it
// remembers the first error so later stages can ask whether parsing already
// failed, and it is safe for concurrent use so a single Handler can serve a
// batch conversion.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. A nil rep reports every error verbatim.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf is HandleError with an error built from the given span and
// fmt.Errorf arguments.
func (h *Handler) HandleErrorf(span Span, format string, args ...any) error {
	return h.HandleError(Errorf(span, format, args...))
}

// HandleError passes the error through the reporter and records the result.
// The returned error is what the parse should fail with; it is never nil for
// an ErrorWithSpan because parsing cannot continue past a broken expression.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ews, ok := err.(ErrorWithSpan); ok {
		h.errsReported = true
		err = h.reporter.Error(ews)
	}
	h.err = err
	return h.err
}

// Error returns the error the handler has settled on: the recorded error, or
// ErrInvalidExpression if an error was reported but the reporter replaced it
// with nil.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidExpression
	}
	return h.err
}
