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

// Command unitc converts unit expressions to SI base-unit factors.
//
// Each argument is parsed as one expression; without arguments a single
// expression is read from standard input. Results print one per line on
// standard output. A failing expression prints an annotated snippet on
// standard error, the remaining expressions are still processed, and the
// exit status is nonzero.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/unitcompile"
	"github.com/bufbuild/unitcompile/reporter"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOpts struct {
	json bool
}

func newRootCommand() *cobra.Command {
	opts := rootOpts{}

	cmd := &cobra.Command{
		Use:   "unitc [expression...]",
		Short: "Convert unit expressions to SI base-unit factors",
		Long: `unitc parses unit expressions such as "kg*m/s**2" and prints the factors
of their SI base-unit representation: an exact rational multiplier, an
additive offset for units like degC, and the exponent of each base unit.`,
		Example: `  unitc "kg*m/s**2"
  unitc --json mm/s km**2
  echo "degC" | unitc`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			expressions := args
			if len(expressions) == 0 {
				expr, err := readExpression(cmd)
				if err != nil {
					return err
				}
				expressions = []string{expr}
			}

			failed := 0
			for _, expr := range expressions {
				f, err := unitcompile.Parse(expr)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), reporter.Render(expr, err))
					failed++
					continue
				}
				if opts.json {
					data, err := json.Marshal(f)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(expressions))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.json,
		"json", false,
		"Emit each result as a JSON object instead of the record form")

	cmd.AddCommand(newTablesCommand())
	return cmd
}

// readExpression reads one line from the command's input, the interactive
// equivalent of passing a single argument.
func readExpression(cmd *cobra.Command) (string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return scanner.Text(), nil
}
