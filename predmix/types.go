// SPDX-License-Identifier: MIT

package predmix

import "math"

// LambdaOptions tunes LambdaEB.
//
// Fields:
//   - Truncation    — upper cap applied before Scale (default +Inf).
//   - Alpha         — miscoverage the bets are tuned for (default 0.05).
//   - FixedN        — if > 0, tune for this sample size instead of the
//     1/sqrt(t·log(1+t)) schedule (default 0).
//   - PriorMean     — mean the running estimate is shrunk towards (default 1/2).
//   - PriorVariance — variance the running estimate is shrunk towards (default 1/4).
//   - FakeObs       — weight of the prior, in observations (default 1).
//   - Scale         — final multiplier (default 1).
type LambdaOptions struct {
	Truncation    float64
	Alpha         float64
	FixedN        int
	PriorMean     float64
	PriorVariance float64
	FakeObs       float64
	Scale         float64
}

// DefaultLambdaOptions returns the documented LambdaEB defaults.
func DefaultLambdaOptions() LambdaOptions {
	return LambdaOptions{
		Truncation:    math.Inf(1),
		Alpha:         0.05,
		FixedN:        0,
		PriorMean:     0.5,
		PriorVariance: 0.25,
		FakeObs:       1,
		Scale:         1,
	}
}

// EmpBernOptions tunes EmpBernCS.
//
// Truncation must lie in (0, 1): the CS takes log(1 − λ).
type EmpBernOptions struct {
	Alpha               float64
	Truncation          float64
	FixedN              int
	RunningIntersection bool
}

// DefaultEmpBernOptions returns α = 0.05, truncation 1/2, time-varying bets
// and no running intersection.
func DefaultEmpBernOptions() EmpBernOptions {
	return EmpBernOptions{Alpha: 0.05, Truncation: 0.5}
}

// HoeffdingOptions tunes HoeffdingCS. A nil Lambdas selects HoeffdingLambdas.
type HoeffdingOptions struct {
	Alpha               float64
	Lambdas             []float64
	RunningIntersection bool
}

// DefaultHoeffdingOptions returns α = 0.05 with the default bet schedule.
func DefaultHoeffdingOptions() HoeffdingOptions {
	return HoeffdingOptions{Alpha: 0.05}
}
