// SPDX-License-Identifier: MIT

// Package roots brackets and bisects the root of a monotone scalar function.
//
// It is deliberately small: confseq only ever inverts a log-supermartingale in
// its first argument, so the package offers exactly two primitives.
//
//   - Expand  — grow an upper end point by doubling until a predicate holds.
//   - Bisect  — halve a sign-changing bracket [a, b] until a Tolerance accepts it.
//
// Termination policy:
//
//	EpsTolerance(bits) accepts a bracket once its end points agree to `bits`
//	bits of mantissa: |a−b| ≤ max(2^(1−bits), 4·ε)·min(|a|, |b|).
//	Bisect also stops on an exact zero and when the midpoint can no longer move
//	(the bracket is two adjacent floats), so it always terminates.
//
// Errors:
//   - ErrBadInterval   — lo ≥ hi or a non-finite end point.
//   - ErrNoBracket     — f(lo) and f(hi) share a sign, or Expand never succeeded.
//   - ErrNaN           — f returned NaN somewhere in the bracket.
//   - ErrMaxIterations — the iteration budget ran out first.
//
// Usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	a, b, err := roots.Bisect(f, 0, 2, roots.EpsTolerance(40), roots.DefaultMaxIterations)
//	root := (a + b) / 2 // ≈ 1.41421356
package roots
