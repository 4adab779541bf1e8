// SPDX-License-Identifier: MIT

package betting

import "errors"

// Input errors.
var (
	// ErrEmptyInput is returned when the observation slice is empty.
	ErrEmptyInput = errors.New("betting: observations must be non-empty")

	// ErrOutOfUnitInterval is returned when an observation is NaN or outside [0, 1].
	ErrOutOfUnitInterval = errors.New("betting: observations must lie in [0, 1]")

	// ErrBadTime is returned by CISeq for a time outside [1, len(x)].
	ErrBadTime = errors.New("betting: times must lie in [1, len(x)]")
)

// Option errors.
var (
	// ErrBadAlpha is returned when alpha is outside (0, 1).
	ErrBadAlpha = errors.New("betting: alpha must lie in (0, 1)")

	// ErrBadTheta is returned when theta is outside [0, 1].
	ErrBadTheta = errors.New("betting: theta must lie in [0, 1]")

	// ErrBadTruncScale is returned when the truncation scale is outside (0, 1].
	ErrBadTruncScale = errors.New("betting: truncation scale must lie in (0, 1]")

	// ErrBadPopulation is returned when N is negative or smaller than len(x).
	ErrBadPopulation = errors.New("betting: population size must be 0 or >= len(x)")

	// ErrBadBreaks is returned when the grid has fewer than one break.
	ErrBadBreaks = errors.New("betting: breaks must be >= 1")

	// ErrBadWeights is returned when strategy weights do not match the
	// strategies or are negative, non-finite or all zero.
	ErrBadWeights = errors.New("betting: invalid strategy weights")
)

// Evaluation errors.
var (
	// ErrBetLength is returned when a bet function returns the wrong number of bets.
	ErrBetLength = errors.New("betting: bets and observations differ in length")

	// ErrMartLength is returned when a MartFunc returns the wrong number of values.
	ErrMartLength = errors.New("betting: martingale and observations differ in length")

	// ErrNaNCapital is returned when a capital process evaluates to NaN.
	ErrNaNCapital = errors.New("betting: capital process is NaN")

	// ErrNilMartingale is returned when CSFromMartingale gets a nil MartFunc.
	ErrNilMartingale = errors.New("betting: martingale function is nil")
)
