// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/confseq/betting"
	"github.com/katalvlaran/confseq/predmix"
)

// Confidence sequence methods understood by the CLI.
const (
	methodEmpBern   = "empbern"
	methodHoeffding = "hoeffding"
	methodBetting   = "betting"
)

// csFlags holds the `confseq cs` flags.
type csFlags struct {
	Method              string  `validate:"oneof=empbern hoeffding betting"`
	File                string  `validate:"required"`
	Alpha               float64 `validate:"gt=0,lt=1"`
	RunningIntersection bool
	Breaks              int `validate:"gte=1"`
	Population          int `validate:"gte=0"`
	Parallel            bool
	Every               int `validate:"gte=1"`
}

func newCSCmd(a *app) *cobra.Command {
	f := csFlags{
		Method: methodEmpBern,
		File:   "-",
		Alpha:  0.05,
		Breaks: 1000,
		Every:  1,
	}

	cmd := &cobra.Command{
		Use:   "cs",
		Short: "Confidence sequence for the mean of [0, 1]-bounded observations",
		Long: `Reads whitespace-separated observations in [0, 1] from --file (or stdin
for "-") and prints "t lower upper" for every --every-th time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := configValidate.Struct(f); err != nil {
				return err
			}

			x, err := readObservationsFrom(f.File, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.Debug("observations read", "n", len(x), "method", f.Method)

			l, u, err := runCS(cmd, f, x)
			if err != nil {
				a.log.Error("confidence sequence failed", "method", f.Method, "err", err)

				return err
			}

			return writeCS(cmd.OutOrStdout(), l, u, f.Every)
		},
	}

	cmd.Flags().StringVar(&f.Method, "method", f.Method, "empbern, hoeffding or betting")
	cmd.Flags().StringVar(&f.File, "file", f.File, `observations file ("-" for stdin)`)
	cmd.Flags().Float64Var(&f.Alpha, "alpha", f.Alpha, "miscoverage level")
	cmd.Flags().BoolVar(&f.RunningIntersection, "running-intersection", false, "tighten monotonically over time")
	cmd.Flags().IntVar(&f.Breaks, "breaks", f.Breaks, "betting: grid resolution")
	cmd.Flags().IntVar(&f.Population, "population", 0, "betting: population size when sampling without replacement")
	cmd.Flags().BoolVar(&f.Parallel, "parallel", false, "betting: evaluate the grid concurrently")
	cmd.Flags().IntVar(&f.Every, "every", f.Every, "print every k-th time")

	return cmd
}

func runCS(cmd *cobra.Command, f csFlags, x []float64) (l, u []float64, err error) {
	switch f.Method {
	case methodHoeffding:
		opts := predmix.DefaultHoeffdingOptions()
		opts.Alpha = f.Alpha
		opts.RunningIntersection = f.RunningIntersection

		return predmix.HoeffdingCS(x, opts)
	case methodBetting:
		opts := betting.DefaultOptions()
		opts.Alpha = f.Alpha
		opts.Breaks = f.Breaks
		opts.N = f.Population
		opts.Parallel = f.Parallel
		opts.RunningIntersection = f.RunningIntersection

		return betting.CS(cmd.Context(), x, opts)
	default:
		opts := predmix.DefaultEmpBernOptions()
		opts.Alpha = f.Alpha
		opts.RunningIntersection = f.RunningIntersection

		return predmix.EmpBernCS(x, opts)
	}
}

// readObservationsFrom reads path, or stdin when path is "-".
func readObservationsFrom(path string, stdin io.Reader) ([]float64, error) {
	if path == "-" {
		return readObservations(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observations: %w", err)
	}
	defer fh.Close()

	return readObservations(fh)
}

// readObservations parses whitespace-separated floats.
func readObservations(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var x []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", len(x)+1, err)
		}
		x = append(x, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}

	return x, nil
}

func writeCS(w io.Writer, l, u []float64, every int) error {
	bw := bufio.NewWriter(w)
	for i := range l {
		t := i + 1
		if t%every != 0 && t != len(l) {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %.6f %.6f\n", t, l[i], u[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}
