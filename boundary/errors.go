// SPDX-License-Identifier: MIT
// Package boundary: sentinel error set.
// Constructors and Bound methods return these sentinels, usually wrapped with
// a validator tag; callers must match them with errors.Is.

package boundary

import "errors"

// Precondition violations (rejected at construction or call entry).
var (
	// ErrBadVOpt is returned when the calibration variance v_opt is not finite and > 0.
	ErrBadVOpt = errors.New("boundary: v_opt must be finite and > 0")

	// ErrBadAlpha is returned when a miscoverage level is outside (0, 1).
	// One-sided calibration doubles alpha_opt, so it additionally requires alpha_opt < 1/2.
	ErrBadAlpha = errors.New("boundary: alpha must lie in (0, 1)")

	// ErrBadScale is returned when the sub-exponential / sub-Poisson scale c is not finite and > 0.
	ErrBadScale = errors.New("boundary: scale c must be finite and > 0")

	// ErrBadBernstein is returned when a Bernstein range parameter g or h is not finite and > 0.
	ErrBadBernstein = errors.New("boundary: g and h must be finite and > 0")

	// ErrNonPositiveR is returned when the beta-binomial scale r = rho − g·h is not > 0.
	// Increase v_opt or decrease g·h.
	ErrNonPositiveR = errors.New("boundary: derived r = rho - g*h must be > 0")

	// ErrBadVMin is returned when the stitching variance floor v_min is not finite and > 0.
	ErrBadVMin = errors.New("boundary: v_min must be finite and > 0")

	// ErrBadExponent is returned when the stitching exponent s is not finite and > 1.
	ErrBadExponent = errors.New("boundary: stitching exponent s must be finite and > 1")

	// ErrBadEta is returned when the stitching base eta is not finite and > 1.
	ErrBadEta = errors.New("boundary: stitching base eta must be finite and > 1")

	// ErrBadDrift is returned when the stitching drift constant c is negative or not finite.
	ErrBadDrift = errors.New("boundary: drift c must be finite and >= 0")

	// ErrBadVariance is returned when the variance process value v is negative or not finite.
	ErrBadVariance = errors.New("boundary: v must be finite and >= 0")

	// ErrBadThreshold is returned when log_threshold is NaN or infinite.
	ErrBadThreshold = errors.New("boundary: log threshold must be finite")

	// ErrNilMixture is returned when a nil mixture is handed to an inversion or boundary.
	ErrNilMixture = errors.New("boundary: nil mixture")
)

// Numerical failures (reported by Bound, never by constructors).
var (
	// ErrNoBracket is returned when no finite search ceiling brackets the
	// boundary: the doubling search exhausted its budget, or the mixture's
	// a-priori ceiling lies below the threshold crossing.
	ErrNoBracket = errors.New("boundary: no solution found (root not bracketed)")

	// ErrDomain is returned when the log-supermartingale left the domain of the
	// special functions (NaN) while the boundary was being inverted.
	ErrDomain = errors.New("boundary: special function evaluated outside its domain")
)
