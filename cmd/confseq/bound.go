// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBoundCmd(a *app) *cobra.Command {
	spec := DefaultFamilySpec()
	var v, alpha float64

	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Evaluate one boundary at (v, alpha)",
		Example: `  confseq bound --family normal --v 250 --alpha 0.05 --v-opt 100
  confseq bound --family beta-binomial --v 10 --v-opt 10 --g 1 --h 1 --two-sided
  confseq bound --family stitching --v 1000 --v-min 10 --eta 2.04`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := spec.Validate(); err != nil {
				return err
			}
			b, err := spec.Boundary()
			if err != nil {
				return err
			}

			u, err := b(v, alpha)
			if err != nil {
				a.log.Error("bound failed", "family", spec.Family, "v", v, "alpha", alpha, "err", err)

				return err
			}
			a.log.Debug("bound evaluated", "family", spec.Family, "v", v, "alpha", alpha, "u", u)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.10g\n", u)

			return err
		},
	}

	addFamilyFlags(cmd.Flags(), &spec)
	cmd.Flags().Float64Var(&v, "v", 1, "intrinsic time (accumulated variance) to evaluate at")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "miscoverage level")

	return cmd
}
