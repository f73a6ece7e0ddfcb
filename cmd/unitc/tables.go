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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bufbuild/unitcompile/unit"
)

func newTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the recognized prefixes and units",
		Long: `tables prints every SI prefix with its scale and every unit symbol with
its base-unit expansion, ordered by symbol. These are exactly the symbols
unit expressions may use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Prefixes:")
			for symbol, scale := range unit.Prefixes() {
				fmt.Fprintf(out, "  %-12s %s\n", symbol, scale.RatString())
			}

			fmt.Fprintln(out, "SI units:")
			for symbol, f := range unit.Units() {
				fmt.Fprintf(out, "  %-12s %s\n", symbol, f.Canonical())
			}

			fmt.Fprintln(out, "Non-SI units:")
			for symbol, f := range unit.NonSIUnits() {
				fmt.Fprintf(out, "  %-12s %s\n", symbol, f.Canonical())
			}
			return nil
		},
	}
}
