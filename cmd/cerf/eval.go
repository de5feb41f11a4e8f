// Copyright 2025 go-faddeeva Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-faddeeva/contrib/batch"
)

const defaultFunction = "w"

// addFunctionFlags registers the flags selecting what to evaluate.
func addFunctionFlags(fs *pflag.FlagSet, name *string, useReal *bool) {
	fs.StringVarP(name, "func", "f", defaultFunction,
		"Function to evaluate ("+strings.Join(batch.Names(), ", ")+")")
	fs.BoolVarP(useReal, "real", "r", false, "Use the real-argument variant (Im w(x) for w)")
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var (
		name    string
		useReal bool
	)
	cmd := &cobra.Command{
		Use:   "eval [flags] [--] z...",
		Short: "Evaluate a function at the given points",
		Long: `Evaluate a function at each argument and print one result per line.

Complex arguments use Go syntax (1+2i, -3i, 0.5, NaN, Inf). Put negative
arguments after -- so they are not read as flags.

Example:
  cerf eval --func erf 1+2i
  cerf eval --real --func dawson -- -1 0 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := batch.Lookup(name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if useReal {
					x, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return fmt.Errorf("argument %q: %w", arg, err)
					}
					fmt.Fprintf(out, "%s(%s) = %s\n", f.Name, arg, strconv.FormatFloat(f.Real(x), 'g', -1, 64))
					continue
				}
				z, err := strconv.ParseComplex(arg, 128)
				if err != nil {
					return fmt.Errorf("argument %q: %w", arg, err)
				}
				fmt.Fprintf(out, "%s(%s) = %s\n", f.Name, arg, strconv.FormatComplex(f.Complex(z), 'g', -1, 128))
			}
			opts.logger.WithField("function", f.Name).Debugf("evaluated %d points", len(args))
			return nil
		},
	}
	addFunctionFlags(cmd.Flags(), &name, &useReal)
	return cmd
}
