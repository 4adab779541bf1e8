// SPDX-License-Identifier: MIT

package boundary

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/confseq/roots"
)

// boundToleranceBits is the bisection precision used by FindMixtureBound:
// the final bracket end points agree to 40 bits of mantissa.
const boundToleranceBits = 40

// MixtureSupermartingale is the capability every mixture family implements.
//
//   - LogSuperMG(s, v)  — log of the mixture supermartingale at statistic s and
//     accumulated variance v. Non-decreasing in s for s ≥ 0. NaN signals that
//     the special functions were evaluated outside their domain.
//   - SUpperBound(v)    — a-priori ceiling on any s the boundary can take, or
//     +Inf when no closed form exists.
//   - Bound(v, logThr)  — smallest s ≥ 0 with LogSuperMG(s, v) = logThr.
//
// Implementations are immutable after construction and safe for concurrent use.
type MixtureSupermartingale interface {
	LogSuperMG(s, v float64) float64
	SUpperBound(v float64) float64
	Bound(v, logThreshold float64) (float64, error)
}

// Boundary is a time-uniform boundary: Bound(v, alpha) returns a threshold
// that the process crosses with probability at most alpha, uniformly over v.
// Both *MixtureBoundary and *PolyStitching satisfy it.
type Boundary interface {
	Bound(v, alpha float64) (float64, error)
}

// UniformBoundary is the function form of a Boundary: (v, alpha) -> threshold.
type UniformBoundary func(v, alpha float64) (float64, error)

// FindMixtureBound inverts m.LogSuperMG in s: it returns the root of
// f(s) = m.LogSuperMG(s, v) − logThreshold on [0, U].
//
// Algorithm:
//  1. U = m.SUpperBound(v). When U is +Inf, double from U = v (U = 1 when
//     v == 0) until LogSuperMG(U, v) > logThreshold, at most 50 times.
//  2. Bisect [0, U] to 40 bits of agreement between the bracket end points.
//  3. Return the midpoint of the final bracket.
//
// Contract: LogSuperMG must be non-decreasing in s on [0, U], so that
// f(0) ≤ 0 ≤ f(U) whenever a boundary exists.
//
// Errors:
//   - ErrNilMixture, ErrBadVariance, ErrBadThreshold — invalid input.
//   - ErrNoBracket — the doubling budget ran out, or f does not change sign on [0, U].
//   - ErrDomain    — LogSuperMG returned NaN during the search.
//
// Every returned error also matches the underlying roots sentinel, if any.
func FindMixtureBound(m MixtureSupermartingale, v, logThreshold float64) (float64, error) {
	if m == nil {
		return 0, validatorErrorf("FindMixtureBound", ErrNilMixture)
	}
	if err := validateVariance(v); err != nil {
		return 0, validatorErrorf("FindMixtureBound", err)
	}
	if err := validateThreshold(logThreshold); err != nil {
		return 0, validatorErrorf("FindMixtureBound", err)
	}

	upper := m.SUpperBound(v)
	if math.IsInf(upper, 1) {
		var err error
		if upper, err = findSUpperBound(m, v, logThreshold); err != nil {
			return 0, err
		}
	}

	rootFn := func(s float64) float64 {
		return m.LogSuperMG(s, v) - logThreshold
	}
	a, b, err := roots.Bisect(rootFn, 0, upper, roots.EpsTolerance(boundToleranceBits), roots.DefaultMaxIterations)
	if err != nil {
		return 0, translateRootsError("FindMixtureBound", err)
	}

	return (a + b) / 2, nil
}

// findSUpperBound doubles a trial ceiling until the log-supermartingale
// exceeds the threshold there.
func findSUpperBound(m MixtureSupermartingale, v, logThreshold float64) (float64, error) {
	start := v
	if start == 0 {
		start = 1
	}

	sawNaN := false
	exceeds := func(u float64) bool {
		val := m.LogSuperMG(u, v)
		if math.IsNaN(val) {
			sawNaN = true
		}

		return val > logThreshold
	}

	upper, err := roots.Expand(exceeds, start, roots.DefaultMaxDoublings)
	if err != nil {
		if sawNaN {
			return 0, fmt.Errorf("findSUpperBound: %w: %w", ErrDomain, roots.ErrNaN)
		}

		return 0, translateRootsError("findSUpperBound", err)
	}

	return upper, nil
}

// translateRootsError maps a roots sentinel onto the boundary taxonomy while
// keeping the original reachable through errors.Is.
func translateRootsError(tag string, err error) error {
	switch {
	case errors.Is(err, roots.ErrNaN):
		return fmt.Errorf("%s: %w: %w", tag, ErrDomain, err)
	case errors.Is(err, roots.ErrNoBracket), errors.Is(err, roots.ErrBadInterval):
		return fmt.Errorf("%s: %w: %w", tag, ErrNoBracket, err)
	default:
		return validatorErrorf(tag, err)
	}
}

// MixtureBoundary turns a mixture into a Boundary by feeding it
// log_threshold = log(1/alpha). It is the sole owner of its mixture.
type MixtureBoundary struct {
	mixture MixtureSupermartingale
}

// NewMixtureBoundary wraps m. The caller hands over m and should not keep
// using it elsewhere; mixtures are immutable, so sharing is harmless but the
// boundary is documented as the owner.
func NewMixtureBoundary(m MixtureSupermartingale) (*MixtureBoundary, error) {
	if m == nil {
		return nil, validatorErrorf("NewMixtureBoundary", ErrNilMixture)
	}

	return &MixtureBoundary{mixture: m}, nil
}

// Bound returns mixture.Bound(v, log(1/alpha)).
func (b *MixtureBoundary) Bound(v, alpha float64) (float64, error) {
	if err := validateAlpha(alpha); err != nil {
		return 0, validatorErrorf("MixtureBoundary.Bound", err)
	}

	return b.mixture.Bound(v, math.Log(1/alpha))
}

// Func exposes the boundary as a UniformBoundary closure.
func (b *MixtureBoundary) Func() UniformBoundary {
	return b.Bound
}

// lgamma is math.Lgamma without the sign (every argument here is > 0).
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}
