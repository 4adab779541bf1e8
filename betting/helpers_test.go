// SPDX-License-Identifier: MIT

package betting_test

import (
	"errors"

	"github.com/katalvlaran/confseq/betting"
)

const refTol = 1e-12

// sample returns the first n points of a deterministic sequence with mean ≈ 1/2.
func sample(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = float64((i+1)*37%101) / 100
	}

	return y
}

// constBets bets lambda at every time, whatever the candidate mean.
func constBets(lambda float64) betting.BetFunc {
	return func(x []float64, _ float64) ([]float64, error) {
		out := make([]float64, len(x))
		for i := range out {
			out[i] = lambda
		}

		return out, nil
	}
}

// fixedStrategy uses constBets(lambda) on both sides.
func fixedStrategy(lambda float64) betting.Strategy {
	return betting.Strategy{Positive: constBets(lambda)}
}

var errBoom = errors.New("boom")

// gridOptions returns DefaultOptions with a coarse grid for fast tests.
func gridOptions(breaks int) betting.Options {
	o := betting.DefaultOptions()
	o.Breaks = breaks

	return o
}
