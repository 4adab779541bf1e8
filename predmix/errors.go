// SPDX-License-Identifier: MIT

package predmix

import "errors"

var (
	// ErrEmptyInput is returned when the observation slice is empty.
	ErrEmptyInput = errors.New("predmix: observations must be non-empty")

	// ErrOutOfUnitInterval is returned when an observation is NaN or outside [0, 1].
	ErrOutOfUnitInterval = errors.New("predmix: observations must lie in [0, 1]")

	// ErrBadAlpha is returned when alpha is outside (0, 1).
	ErrBadAlpha = errors.New("predmix: alpha must lie in (0, 1)")

	// ErrBadOption is returned for an out-of-range tuning field
	// (truncation, prior, fake observations, scale or fixed n).
	ErrBadOption = errors.New("predmix: invalid option")

	// ErrLambdaLength is returned when user-supplied bets do not match the observations.
	ErrLambdaLength = errors.New("predmix: bets and observations differ in length")

	// ErrBadLambda is returned when a user-supplied bet is NaN, infinite or negative.
	ErrBadLambda = errors.New("predmix: bets must be finite and >= 0")
)
