// Copyright 2020-2024 Buf Technologies, Inc.
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

// Package corpora runs golden-file tests over a corpus of expression files,
// a way of doing table-driven tests where the table lives in the filesystem.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus is a golden-file test whose cases live on disk. Every file under
// Root matching Pattern is one test case; for each case, Test produces one
// string per entry in Outputs, and each string is compared against the
// companion file with that extension ("basic.units" with output "stdout" is
// checked against "basic.units.stdout"). A companion file that does not
// exist stands for empty expected output.
//
// Setting the environment variable named by Refresh to a doublestar glob
// rewrites the companion files of every case whose name matches the glob,
// instead of comparing, and fails the test so that a refresh run can never
// pass CI.
type Corpus struct {
	// Root of the corpus directory, relative to the test file that calls
	// [Corpus.Run].
	Root string
	// Pattern selects the case files under Root, e.g. "*.units".
	Pattern string
	// Refresh names the environment variable that switches to refresh mode.
	Refresh string
	// Outputs lists the companion-file extensions, e.g. "stdout", "stderr".
	Outputs []string

	// Test runs one case and returns one string per entry in Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Run enumerates the corpus and runs one subtest per case file.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(callerDir(), c.Root)

	cases, err := doublestar.FilepathGlob(filepath.Join(root, c.Pattern))
	if err != nil {
		t.Fatalf("corpora: bad case pattern %q: %v", c.Pattern, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no cases match %q under %q", c.Pattern, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing goldens because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, casePath := range cases {
		name, err := filepath.Rel(root, casePath)
		if err != nil {
			name = filepath.Base(casePath)
		}
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("corpora: reading case %q: %v", casePath, err)
			}

			got := c.Test(t, name, string(text))
			if len(got) != len(c.Outputs) {
				t.Fatalf("corpora: Test returned %d outputs, want %d", len(got), len(c.Outputs))
			}

			doRefresh, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				golden := casePath + "." + ext
				if doRefresh {
					writeGolden(t, golden, got[i])
					continue
				}
				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: reading golden %q: %v", golden, err)
					continue
				}
				if got[i] != string(want) {
					t.Errorf("corpora: mismatch for %q:\n%s", golden, diff(string(want), got[i]))
				}
			}
		})
	}
}

// writeGolden replaces the golden with the new output, deleting the file
// when the output is empty so that an absent file keeps meaning "expect
// nothing".
func writeGolden(t *testing.T, path, data string) {
	if data == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: deleting golden %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Errorf("corpora: writing golden %q: %v", path, err)
	}
}

func diff(want, got string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// callerDir is the directory of the test file that called [Corpus.Run],
// which anchors Root the same way go test anchors testdata directories.
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: cannot locate calling test file")
	}
	return filepath.Dir(file)
}
