// SPDX-License-Identifier: MIT

package predmix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LambdaEB returns predictable empirical-Bernstein bets for x.
//
// The bet for x_t only uses x_1..x_{t−1}:
//
//	μ̂_t  = (FakeObs·PriorMean + Σ_{i≤t} x_i) / (t + FakeObs)
//	σ̂²_t = (FakeObs·PriorVariance + Σ_{i≤t} (x_i − μ̂_i)²) / (t + FakeObs)
//	λ_t  = sqrt(2·log(1/α) / (t·log(1+t)·σ̂²_{t−1}))   (FixedN == 0)
//	λ_t  = sqrt(2·log(1/α) / (FixedN·σ̂²_{t−1}))        (FixedN > 0)
//
// with σ̂²_0 = PriorVariance. A NaN bet becomes 0; every bet is capped at
// Truncation and then multiplied by Scale.
//
// Complexity: O(n) time, O(n) memory.
func LambdaEB(x []float64, opts LambdaOptions) ([]float64, error) {
	const tag = "LambdaEB"
	if err := validateObservations(tag, x); err != nil {
		return nil, err
	}
	if err := validateLambdaOptions(tag, opts); err != nil {
		return nil, err
	}

	n := len(x)
	cum := floats.CumSum(make([]float64, n), x)
	lambdas := make([]float64, n)
	twoLogInvAlpha := 2 * math.Log(1/opts.Alpha)

	sigma2Prev := opts.PriorVariance
	var sqDev float64
	for i := 0; i < n; i++ {
		t := float64(i + 1)

		var lam float64
		if opts.FixedN > 0 {
			lam = math.Sqrt(twoLogInvAlpha / (float64(opts.FixedN) * sigma2Prev))
		} else {
			lam = math.Sqrt(twoLogInvAlpha / (t * math.Log1p(t) * sigma2Prev))
		}
		if math.IsNaN(lam) {
			lam = 0
		}
		lambdas[i] = math.Min(opts.Truncation, lam) * opts.Scale

		mu := (opts.FakeObs*opts.PriorMean + cum[i]) / (t + opts.FakeObs)
		d := x[i] - mu
		sqDev += d * d
		sigma2Prev = (opts.FakeObs*opts.PriorVariance + sqDev) / (t + opts.FakeObs)
	}

	return lambdas, nil
}

// HoeffdingLambdas returns the default Hoeffding bet schedule for n
// observations: λ_t = min(1, sqrt(8·log(2/α) / (t·log(t+1)))).
func HoeffdingLambdas(n int, alpha float64) ([]float64, error) {
	if err := validateAlpha("HoeffdingLambdas", alpha); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, validatorErrorf("HoeffdingLambdas", ErrEmptyInput)
	}

	num := 8 * math.Log(2/alpha)
	lambdas := make([]float64, n)
	for i := range lambdas {
		t := float64(i + 1)
		lambdas[i] = math.Min(1, math.Sqrt(num/(t*math.Log1p(t))))
	}

	return lambdas, nil
}
