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

package unitcompile

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/unitcompile/factor"
	"github.com/bufbuild/unitcompile/parser"
	"github.com/bufbuild/unitcompile/reporter"
)

// Parse converts a single unit expression into the factors of its SI
// base-unit representation. It is shorthand for a Converter with default
// settings; use a Converter to convert batches concurrently or to customize
// error reporting.
func Parse(expression string) (*factor.Factors, error) {
	return parser.Parse(expression, nil)
}

// Converter converts unit expressions into dimensional factors.
//
// The zero value is ready to use. Fields customize parallelism and error
// reporting; they must not be changed once the Converter is in use.
type Converter struct {
	// The maximum parallelism to use when converting. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error reporter. If unspecified, the first error encountered
	// aborts the conversion and is returned as is.
	Reporter reporter.Reporter
}

// Convert converts the given unit expressions into dimensional factors.
//
// The returned slice is aligned with the arguments: the factors at index i
// are those of expressions[i]. Duplicate expressions are parsed only once,
// but every element of the returned slice is a distinct copy, so callers
// may mutate results freely. The first error reported fails the whole
// batch, and pending work is cancelled.
func (c *Converter) Convert(ctx context.Context, expressions ...string) ([]*factor.Factors, error) {
	if len(expressions) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	e := executor{
		h:       reporter.NewHandler(c.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(expressions))
	for i, expr := range expressions {
		results[i] = e.convert(ctx, expr)
	}

	factors := make([]*factor.Factors, len(expressions))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		factors[i] = r.res.Clone()
	}

	return factors, nil
}

type result struct {
	ready chan struct{}
	res   *factor.Factors
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *factor.Factors) {
	r.res = f
	close(r.ready)
}

type executor struct {
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) convert(ctx context.Context, expression string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[expression]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[expression] = r
	go func() {
		e.doConvert(ctx, expression, r)
	}()
	return r
}

func (e *executor) doConvert(ctx context.Context, expression string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	f, err := parser.Parse(expression, e.h)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(f)
}
