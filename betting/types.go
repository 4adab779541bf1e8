// SPDX-License-Identifier: MIT

package betting

// BetFunc returns one bet per observation for the candidate mean m. Bets for
// x_t must only depend on x_1..x_{t−1}.
type BetFunc func(x []float64, m float64) ([]float64, error)

// MartFunc returns the value of a test (super)martingale for candidate mean m
// at every time.
type MartFunc func(x []float64, m float64) ([]float64, error)

// Strategy pairs the bets of the positive and the negative capital process.
// A nil Positive selects the empirical-Bernstein bets of predmix.LambdaEB at
// Options.Alpha; a nil Negative reuses Positive.
type Strategy struct {
	Positive BetFunc
	Negative BetFunc
}

// Options configures every entry point of the package.
//
// Capital process:
//   - Alpha      — miscoverage (default 0.05).
//   - N          — population size for sampling without replacement; 0 means
//     sampling with replacement (default 0).
//   - ConvexComb — combine as θ·K⁺ + (1−θ)·K⁻ instead of max(θ·K⁺, (1−θ)·K⁻).
//   - Theta      — weight θ of the positive process (default 1/2).
//   - TruncScale — bets are capped at TruncScale/μ_t and TruncScale/(1−μ_t)
//     when MTrunc, at ±TruncScale otherwise (default 1/2).
//   - MTrunc     — truncate relative to the null mean (default true).
//   - Strategies — betting strategies; empty means one default Strategy.
//   - Weights    — per-strategy weights; nil means uniform.
//
// Grid:
//   - Breaks              — candidate means are {0, 1/B, …, 1} (default 1000).
//   - RunningIntersection — tighten monotonically over time.
//   - Parallel            — evaluate grid points concurrently.
type Options struct {
	Alpha      float64
	N          int
	ConvexComb bool
	Theta      float64
	TruncScale float64
	MTrunc     bool
	Strategies []Strategy
	Weights    []float64

	Breaks              int
	RunningIntersection bool
	Parallel            bool
}

// DefaultOptions returns the defaults for CS and CSFromMartingale.
func DefaultOptions() Options {
	return Options{
		Alpha:      0.05,
		Theta:      0.5,
		TruncScale: 0.5,
		MTrunc:     true,
		Breaks:     1000,
	}
}

// DefaultCIOptions returns the defaults for a fixed-time CI: untruncated
// relative to m, bets capped at 1, running intersection on.
func DefaultCIOptions() Options {
	o := DefaultOptions()
	o.TruncScale = 1
	o.MTrunc = false
	o.RunningIntersection = true

	return o
}

// DefaultCISeqOptions returns the defaults for CISeq.
func DefaultCISeqOptions() Options {
	o := DefaultOptions()
	o.TruncScale = 0.9
	o.RunningIntersection = true

	return o
}
