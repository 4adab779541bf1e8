// SPDX-License-Identifier: MIT

package betting

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateObservations – non-empty, every x in [0, 1].
func validateObservations(tag string, x []float64) error {
	if len(x) == 0 {
		return validatorErrorf(tag, ErrEmptyInput)
	}
	for i, v := range x {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%s: x[%d]=%g: %w", tag, i, v, ErrOutOfUnitInterval)
		}
	}

	return nil
}

// validateMartOptions – fields read by the capital process, for n observations.
func validateMartOptions(tag string, o Options, n int) error {
	switch {
	case !(o.Alpha > 0 && o.Alpha < 1):
		return validatorErrorf(tag, ErrBadAlpha)
	case !(o.Theta >= 0 && o.Theta <= 1):
		return validatorErrorf(tag, ErrBadTheta)
	case !(o.TruncScale > 0 && o.TruncScale <= 1):
		return validatorErrorf(tag, ErrBadTruncScale)
	case o.N < 0 || (o.N > 0 && o.N < n):
		return fmt.Errorf("%s: N=%d for %d observations: %w", tag, o.N, n, ErrBadPopulation)
	}

	return validateWeights(tag, o)
}

// validateWeights – nil, or one finite non-negative weight per strategy with a positive sum.
func validateWeights(tag string, o Options) error {
	if o.Weights == nil {
		return nil
	}
	k := max(len(o.Strategies), 1)
	if len(o.Weights) != k {
		return fmt.Errorf("%s: %d weights for %d strategies: %w", tag, len(o.Weights), k, ErrBadWeights)
	}
	var sum float64
	for _, w := range o.Weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return validatorErrorf(tag, ErrBadWeights)
		}
		sum += w
	}
	if sum == 0 {
		return validatorErrorf(tag, ErrBadWeights)
	}

	return nil
}

// validateGridOptions – fields read by CSFromMartingale.
func validateGridOptions(tag string, o Options, n int) error {
	switch {
	case !(o.Alpha > 0 && o.Alpha < 1):
		return validatorErrorf(tag, ErrBadAlpha)
	case o.Breaks < 1:
		return fmt.Errorf("%s: Breaks=%d: %w", tag, o.Breaks, ErrBadBreaks)
	case o.N < 0 || (o.N > 0 && o.N < n):
		return fmt.Errorf("%s: N=%d for %d observations: %w", tag, o.N, n, ErrBadPopulation)
	}

	return nil
}
