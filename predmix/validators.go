// SPDX-License-Identifier: MIT

package predmix

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

// validateAlpha – alpha strictly inside (0, 1).
func validateAlpha(tag string, alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return validatorErrorf(tag, ErrBadAlpha)
	}

	return nil
}

func validateLambdaOptions(tag string, o LambdaOptions) error {
	if err := validateAlpha(tag, o.Alpha); err != nil {
		return err
	}
	switch {
	case math.IsNaN(o.Truncation) || o.Truncation <= 0:
		return fmt.Errorf("%s: Truncation=%g: %w", tag, o.Truncation, ErrBadOption)
	case o.FixedN < 0:
		return fmt.Errorf("%s: FixedN=%d: %w", tag, o.FixedN, ErrBadOption)
	case !(o.PriorMean >= 0 && o.PriorMean <= 1):
		return fmt.Errorf("%s: PriorMean=%g: %w", tag, o.PriorMean, ErrBadOption)
	case !(o.PriorVariance > 0 && o.PriorVariance <= 0.25):
		return fmt.Errorf("%s: PriorVariance=%g: %w", tag, o.PriorVariance, ErrBadOption)
	case !(o.FakeObs >= 0) || math.IsInf(o.FakeObs, 1):
		return fmt.Errorf("%s: FakeObs=%g: %w", tag, o.FakeObs, ErrBadOption)
	case !(o.Scale > 0) || math.IsInf(o.Scale, 1):
		return fmt.Errorf("%s: Scale=%g: %w", tag, o.Scale, ErrBadOption)
	}

	return nil
}
