// SPDX-License-Identifier: MIT
// Package: boundary
//
// Purpose:
//   - Single source of truth for parameter checks shared by every mixture.
//   - Return sentinels wrapped with a tag, so errors.Is keeps working upstream.
//
// All checks are pure and allocation-free on the success path.

package boundary

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// validateVOpt – v_opt finite and strictly positive.
func validateVOpt(vOpt float64) error {
	if !isFinite(vOpt) || vOpt <= 0 {
		return validatorErrorf("validateVOpt", ErrBadVOpt)
	}

	return nil
}

// validateAlpha – alpha strictly inside (0, 1).
func validateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return validatorErrorf("validateAlpha", ErrBadAlpha)
	}

	return nil
}

// validateCalibration – Composite: VOpt → Alpha.
func validateCalibration(vOpt, alphaOpt float64) error {
	if err := validateVOpt(vOpt); err != nil {
		return err
	}

	return validateAlpha(alphaOpt)
}

// validatePositive – x finite and > 0, otherwise the supplied sentinel.
func validatePositive(tag string, x float64, sentinel error) error {
	if !isFinite(x) || x <= 0 {
		return validatorErrorf(tag, sentinel)
	}

	return nil
}

// validateVariance – v finite and >= 0.
func validateVariance(v float64) error {
	if !isFinite(v) || v < 0 {
		return validatorErrorf("validateVariance", ErrBadVariance)
	}

	return nil
}

// validateThreshold – log threshold finite.
func validateThreshold(logThreshold float64) error {
	if !isFinite(logThreshold) {
		return validatorErrorf("validateThreshold", ErrBadThreshold)
	}

	return nil
}
