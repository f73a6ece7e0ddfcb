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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command with the given arguments and input, returning
// what it wrote to standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	// SetArgs(nil) makes cobra fall back to os.Args, which in a test binary
	// holds the -test flags.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	stdout, stderr, err := run(t, "", "kg*m/s**2", "mm/s")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t,
		"Factors(multiplier=1, offset=0, m=1, kg=1, s=-2, A=0, K=0, mol=0, cd=0)\n"+
			"Factors(multiplier=1/1000, offset=0, m=1, kg=0, s=-1, A=0, K=0, mol=0, cd=0)\n",
		stdout)
}

func TestRootCommandJSON(t *testing.T) {
	stdout, _, err := run(t, "", "--json", "g")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"multiplier":"1/1000","offset":"0","m":"0","kg":"1","s":"0","A":"0","K":"0","mol":"0","cd":"0"}`,
		stdout)
}

func TestRootCommandStdin(t *testing.T) {
	stdout, _, err := run(t, "degC\n")
	require.NoError(t, err)
	assert.Equal(t,
		"Factors(multiplier=1, offset=5463/20, m=0, kg=0, s=0, A=0, K=1, mol=0, cd=0)\n",
		stdout)
}

func TestRootCommandFailure(t *testing.T) {
	// A bad expression does not stop the rest of the batch, but the
	// command as a whole fails.
	stdout, stderr, err := run(t, "", "m", "bogus", "s")
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 3 expressions failed")

	assert.Equal(t,
		"Factors(multiplier=1, offset=0, m=1, kg=0, s=0, A=0, K=0, mol=0, cd=0)\n"+
			"Factors(multiplier=1, offset=0, m=0, kg=0, s=1, A=0, K=0, mol=0, cd=0)\n",
		stdout)
	assert.Contains(t, stderr, "bogus\n^^^^^ unknown unit \"bogus\"")
}

func TestTablesCommand(t *testing.T) {
	stdout, _, err := run(t, "", "tables")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Prefixes:")
	assert.Contains(t, stdout, "SI units:")
	assert.Contains(t, stdout, "Non-SI units:")

	assert.Contains(t, stdout, "  k            1000\n")
	assert.Contains(t, stdout, "  Hz           s**-1\n")
	assert.Contains(t, stdout, "  degC         K\n")
	assert.Contains(t, stdout, "  L            (1/1000)*m**3\n")
	assert.Contains(t, stdout, "  min          60*s\n")
}

func TestTablesCommandRejectsArgs(t *testing.T) {
	_, _, err := run(t, "", "tables", "extra")
	assert.Error(t, err)
}
