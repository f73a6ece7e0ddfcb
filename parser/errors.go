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

import "errors"

// ErrMalformedToken is the sentinel wrapped by every lexical and structural
// error: a character outside the expression alphabet, an overlong digit
// run, an operator where a unit belongs, a missing closing parenthesis.
// The error the caller receives also carries the span of the offending
// input; use errors.Is to classify and reporter.Render to display it.
var ErrMalformedToken = errors.New("malformed token")
