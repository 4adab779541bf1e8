// SPDX-License-Identifier: MIT

package roots

import "errors"

var (
	// ErrBadInterval is returned when the search interval is empty, inverted or non-finite.
	ErrBadInterval = errors.New("roots: invalid interval")

	// ErrNoBracket is returned when the interval does not bracket a sign change.
	ErrNoBracket = errors.New("roots: interval does not bracket a root")

	// ErrNaN is returned when the function evaluates to NaN inside the interval.
	ErrNaN = errors.New("roots: function returned NaN")

	// ErrMaxIterations is returned when the iteration budget is exhausted
	// before the tolerance accepted the bracket.
	ErrMaxIterations = errors.New("roots: maximum iterations exceeded")
)
