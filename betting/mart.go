// SPDX-License-Identifier: MIT

package betting

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/confseq/predmix"
)

// maxTruncation replaces an infinite m-relative truncation (μ_t = 0 or 1).
const maxTruncation = 1000

// Mart returns the hedged betting capital process for candidate mean m.
//
// With μ_t the null mean at time t (m, or the mean of the unsampled units when
// opts.N > 0):
//
//	μ_t = (N·m − S_{t−1}) / (N − (t−1))
//
// the positive and negative processes are
//
//	K⁺_t = Π (1 + λ⁺_i·(x_i − μ_i)),  K⁻_t = Π (1 − λ⁻_i·(x_i − μ_i))
//
// with λ⁺ clipped to [−TruncScale/(1−μ), TruncScale/μ] and λ⁻ to
// [−TruncScale/μ, TruncScale/(1−μ)] (±TruncScale when !MTrunc). They are
// combined as max(θ·K⁺, (1−θ)·K⁻), or θ·K⁺ + (1−θ)·K⁻ when ConvexComb.
// Wherever μ_t ∉ (0, 1) the candidate is logically impossible and the capital
// is +Inf.
//
// Errors: input and option sentinels, ErrBetLength, ErrNaNCapital, and any
// error returned by the bet functions.
func Mart(x []float64, m float64, s Strategy, opts Options) ([]float64, error) {
	const tag = "Mart"
	if err := validateObservations(tag, x); err != nil {
		return nil, err
	}
	if err := validateMartOptions(tag, opts, len(x)); err != nil {
		return nil, err
	}

	out, err := mart(x, m, resolveStrategy(s, opts.Alpha), opts)
	if err != nil {
		return nil, validatorErrorf(tag, err)
	}

	return out, nil
}

// DiversifiedMart averages Mart over opts.Strategies with opts.Weights
// (uniform when nil). An empty Strategies list means one default Strategy.
func DiversifiedMart(x []float64, m float64, opts Options) ([]float64, error) {
	const tag = "DiversifiedMart"
	if err := validateObservations(tag, x); err != nil {
		return nil, err
	}
	if err := validateMartOptions(tag, opts, len(x)); err != nil {
		return nil, err
	}

	o := opts
	o.Strategies = resolveStrategies(opts.Strategies, opts.Alpha)
	out, err := diversifiedMart(x, m, o)
	if err != nil {
		return nil, validatorErrorf(tag, err)
	}

	return out, nil
}

// diversifiedMart expects validated input and resolved strategies.
func diversifiedMart(x []float64, m float64, o Options) ([]float64, error) {
	k := len(o.Strategies)
	total := make([]float64, len(x))
	for i, s := range o.Strategies {
		w := 1 / float64(k)
		if o.Weights != nil {
			w = o.Weights[i]
		}
		if w == 0 {
			continue
		}
		capital, err := mart(x, m, s, o)
		if err != nil {
			return nil, fmt.Errorf("strategy %d: %w", i, err)
		}
		floats.AddScaled(total, w, capital)
	}

	return total, nil
}

// mart expects validated input and a resolved strategy.
func mart(x []float64, m float64, s Strategy, o Options) ([]float64, error) {
	n := len(x)
	mu := nullMeans(x, m, o.N)

	pos, err := s.Positive(x, m)
	if err != nil {
		return nil, err
	}
	neg, err := s.Negative(x, m)
	if err != nil {
		return nil, err
	}
	if len(pos) != n || len(neg) != n {
		return nil, fmt.Errorf("%d/%d bets for %d observations: %w", len(pos), len(neg), n, ErrBetLength)
	}

	factorPos := make([]float64, n)
	factorNeg := make([]float64, n)
	for i := range x {
		upper, lower := o.TruncScale, o.TruncScale
		if o.MTrunc {
			upper = capTruncation(o.TruncScale / mu[i])
			lower = capTruncation(o.TruncScale / (1 - mu[i]))
		}
		lp := math.Min(upper, math.Max(-lower, pos[i]))
		ln := math.Min(lower, math.Max(-upper, neg[i]))
		d := x[i] - mu[i]
		factorPos[i] = 1 + lp*d
		factorNeg[i] = 1 - ln*d
	}
	kPos := floats.CumProd(make([]float64, n), factorPos)
	kNeg := floats.CumProd(make([]float64, n), factorNeg)

	capital := make([]float64, n)
	for i := range capital {
		switch {
		case mu[i] <= 0 || mu[i] >= 1:
			capital[i] = math.Inf(1)
		case o.Theta == 1:
			capital[i] = kPos[i]
		case o.Theta == 0:
			capital[i] = kNeg[i]
		case o.ConvexComb:
			capital[i] = o.Theta*kPos[i] + (1-o.Theta)*kNeg[i]
		default:
			capital[i] = math.Max(o.Theta*kPos[i], (1-o.Theta)*kNeg[i])
		}
		if math.IsNaN(capital[i]) {
			return nil, fmt.Errorf("t=%d m=%g: %w", i+1, m, ErrNaNCapital)
		}
	}

	return capital, nil
}

// nullMeans returns μ_t for every t. N == 0 means sampling with replacement.
func nullMeans(x []float64, m float64, population int) []float64 {
	mu := make([]float64, len(x))
	if population == 0 {
		for i := range mu {
			mu[i] = m
		}

		return mu
	}

	size := float64(population)
	var sPrev float64
	for i := range x {
		mu[i] = (size*m - sPrev) / (size - float64(i))
		sPrev += x[i]
	}

	return mu
}

func capTruncation(v float64) float64 {
	if math.IsInf(v, 1) {
		return maxTruncation
	}

	return v
}

// defaultBets returns predmix.LambdaEB bets at alpha, ignoring m.
func defaultBets(alpha float64) BetFunc {
	return func(x []float64, _ float64) ([]float64, error) {
		lo := predmix.DefaultLambdaOptions()
		lo.Alpha = alpha

		return predmix.LambdaEB(x, lo)
	}
}

func resolveStrategy(s Strategy, alpha float64) Strategy {
	if s.Positive == nil {
		s.Positive = defaultBets(alpha)
	}
	if s.Negative == nil {
		s.Negative = s.Positive
	}

	return s
}

func resolveStrategies(strategies []Strategy, alpha float64) []Strategy {
	if len(strategies) == 0 {
		return []Strategy{resolveStrategy(Strategy{}, alpha)}
	}
	out := make([]Strategy, len(strategies))
	for i, s := range strategies {
		out[i] = resolveStrategy(s, alpha)
	}

	return out
}
