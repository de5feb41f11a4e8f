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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-faddeeva/contrib/voigt"
)

type profileFlags struct {
	sigma float64
	gamma float64
}

func (p *profileFlags) register(fs *pflag.FlagSet) {
	fs.Float64VarP(&p.sigma, "sigma", "s", 1, "Gaussian standard deviation")
	fs.Float64VarP(&p.gamma, "gamma", "g", 1, "Lorentzian half width at half maximum")
}

func newVoigtCmd() *cobra.Command {
	p := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "voigt [flags] [--] x...",
		Short: "Evaluate the Voigt profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("argument %q: %w", arg, err)
				}
				fmt.Fprintf(out, "voigt(%s) = %s\n", arg, formatFloat(voigt.Voigt(x, p.sigma, p.gamma)))
			}
			return nil
		},
	}
	p.register(cmd.Flags())
	return cmd
}

func newHWHMCmd() *cobra.Command {
	p := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "hwhm",
		Short: "Print the half width at half maximum of the Voigt profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hwhm = %s\n", formatFloat(voigt.HWHM(p.sigma, p.gamma)))
			fmt.Fprintf(out, "estimate = %s\n", formatFloat(voigt.OliveroWidth(p.sigma, p.gamma)))
			return nil
		},
	}
	p.register(cmd.Flags())
	return cmd
}
