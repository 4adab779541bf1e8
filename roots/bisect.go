// SPDX-License-Identifier: MIT

package roots

import "math"

// DefaultMaxIterations bounds Bisect. Halving a float64 bracket cannot take
// more than ~1100 steps before the midpoint stalls, so this is never the
// binding limit for well-formed input.
const DefaultMaxIterations = 2048

// DefaultMaxDoublings is the doubling budget used by Expand callers in confseq.
const DefaultMaxDoublings = 50

// Tolerance reports whether the bracket [a, b] is narrow enough to stop.
type Tolerance func(a, b float64) bool

// EpsTolerance returns a relative Tolerance that accepts a bracket once its
// end points agree to the given number of mantissa bits.
//
// bits is clamped to [1, 53]; the effective epsilon never drops below 4·ε
// of float64, matching what double precision can actually resolve.
func EpsTolerance(bits int) Tolerance {
	if bits < 1 {
		bits = 1
	}
	if bits > 53 {
		bits = 53
	}
	eps := math.Max(math.Ldexp(1, 1-bits), 4*epsilon)

	return func(a, b float64) bool {
		return math.Abs(a-b) <= eps*math.Min(math.Abs(a), math.Abs(b))
	}
}

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 0x1p-52

// Bisect narrows [lo, hi] around a root of f.
//
// Contract:
//   - lo < hi, both finite.
//   - f(lo) and f(hi) must not share a sign; a zero at either end point is
//     returned immediately as the degenerate bracket [x, x].
//
// The returned (a, b) is the final bracket; callers typically take (a+b)/2.
//
// Complexity: O(log2((hi−lo)/width)) evaluations of f, bounded by maxIter.
func Bisect(f func(float64) float64, lo, hi float64, tol Tolerance, maxIter int) (a, b float64, err error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return 0, 0, ErrBadInterval
	}

	fa := f(lo)
	if math.IsNaN(fa) {
		return 0, 0, ErrNaN
	}
	if fa == 0 {
		return lo, lo, nil
	}
	fb := f(hi)
	if math.IsNaN(fb) {
		return 0, 0, ErrNaN
	}
	if fb == 0 {
		return hi, hi, nil
	}
	if sign(fa)*sign(fb) > 0 {
		return 0, 0, ErrNoBracket
	}

	a, b = lo, hi
	var (
		mid, fm float64
		i       int
	)
	for i = 0; i < maxIter; i++ {
		if tol(a, b) {
			return a, b, nil
		}
		mid = a + (b-a)/2
		if mid == a || mid == b {
			// Adjacent floats: nothing left to halve.
			return a, b, nil
		}
		fm = f(mid)
		if math.IsNaN(fm) {
			return 0, 0, ErrNaN
		}
		if fm == 0 {
			return mid, mid, nil
		}
		if sign(fm)*sign(fa) < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	if tol(a, b) {
		return a, b, nil
	}

	return a, b, ErrMaxIterations
}

// Expand doubles x, starting at start, until exceeds(x) is true. It tests
// at most maxDoublings candidates (start, 2·start, 4·start, …) and returns
// the first accepted one.
//
// start must be finite and > 0, otherwise ErrBadInterval. If no candidate is
// accepted, ErrNoBracket is returned together with the last candidate tried.
func Expand(exceeds func(float64) bool, start float64, maxDoublings int) (float64, error) {
	if !(start > 0) || math.IsInf(start, 0) {
		return 0, ErrBadInterval
	}

	x := start
	for i := 0; i < maxDoublings; i++ {
		if exceeds(x) {
			return x, nil
		}
		x *= 2
	}

	return x, ErrNoBracket
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
