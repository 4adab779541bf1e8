// SPDX-License-Identifier: MIT

package predmix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// EmpBernCS returns the predictable-mixture empirical-Bernstein confidence
// sequence (l_t, u_t) for the mean of x.
//
// Bets come from LambdaEB at α/2, capped at opts.Truncation. With
// μ̂_{t−1} the plain running mean (μ̂_0 = 0):
//
//	ψ_t      = (x_t − μ̂_{t−1})² · (−log(1 − λ_t) − λ_t)
//	margin_t = (log(2/α) + Σψ) / Σλ
//	center_t = Σλx / Σλ
//
// and [l_t, u_t] = [center − margin, center + margin] ∩ [0, 1].
//
// Errors: ErrEmptyInput, ErrOutOfUnitInterval, ErrBadAlpha, ErrBadOption.
func EmpBernCS(x []float64, opts EmpBernOptions) (l, u []float64, err error) {
	const tag = "EmpBernCS"
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	if err = validateAlpha(tag, opts.Alpha); err != nil {
		return nil, nil, err
	}
	if !(opts.Truncation > 0 && opts.Truncation < 1) {
		return nil, nil, fmt.Errorf("%s: Truncation=%g must lie in (0, 1): %w", tag, opts.Truncation, ErrBadOption)
	}

	lo := DefaultLambdaOptions()
	lo.Truncation = opts.Truncation
	lo.Alpha = opts.Alpha / 2
	lo.FixedN = opts.FixedN
	lambdas, err := LambdaEB(x, lo)
	if err != nil {
		return nil, nil, validatorErrorf(tag, err)
	}

	n := len(x)
	cumX := floats.CumSum(make([]float64, n), x)
	psi := make([]float64, n)
	for i := range x {
		muPrev := 0.0
		if i > 0 {
			muPrev = cumX[i-1] / float64(i)
		}
		d := x[i] - muPrev
		psi[i] = d * d * (-math.Log1p(-lambdas[i]) - lambdas[i])
	}

	l, u = mixtureBounds(x, lambdas, psi, math.Log(2/opts.Alpha))
	if opts.RunningIntersection {
		RunningIntersection(l, u)
	}

	return l, u, nil
}

// HoeffdingCS returns the predictable-mixture Hoeffding confidence sequence
// for the mean of x.
//
//	margin_t = (Σλ²/8 + log(2/α)) / Σλ
//	center_t = Σλx / Σλ   (1/2 while Σλ = 0)
//
// opts.Lambdas, when set, must hold one finite non-negative bet per
// observation; otherwise HoeffdingLambdas is used.
//
// Errors: ErrEmptyInput, ErrOutOfUnitInterval, ErrBadAlpha, ErrLambdaLength,
// ErrBadLambda.
func HoeffdingCS(x []float64, opts HoeffdingOptions) (l, u []float64, err error) {
	const tag = "HoeffdingCS"
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	if err = validateAlpha(tag, opts.Alpha); err != nil {
		return nil, nil, err
	}

	lambdas := opts.Lambdas
	if lambdas == nil {
		if lambdas, err = HoeffdingLambdas(len(x), opts.Alpha); err != nil {
			return nil, nil, validatorErrorf(tag, err)
		}
	} else {
		if len(lambdas) != len(x) {
			return nil, nil, fmt.Errorf("%s: %d bets for %d observations: %w", tag, len(lambdas), len(x), ErrLambdaLength)
		}
		for i, lam := range lambdas {
			if !(lam >= 0) || math.IsInf(lam, 1) {
				return nil, nil, fmt.Errorf("%s: lambda[%d]=%g: %w", tag, i, lam, ErrBadLambda)
			}
		}
	}

	psi := make([]float64, len(x))
	for i, lam := range lambdas {
		psi[i] = lam * lam / 8
	}

	l, u = mixtureBounds(x, lambdas, psi, math.Log(2/opts.Alpha))
	if opts.RunningIntersection {
		RunningIntersection(l, u)
	}

	return l, u, nil
}

// mixtureBounds computes center ± (logTerm + Σψ)/Σλ clipped to [0, 1].
// While Σλ = 0 nothing has been learned and the bounds stay at [0, 1].
func mixtureBounds(x, lambdas, psi []float64, logTerm float64) (l, u []float64) {
	n := len(x)
	weighted := floats.MulTo(make([]float64, n), x, lambdas)
	cumXLam := floats.CumSum(make([]float64, n), weighted)
	cumLam := floats.CumSum(make([]float64, n), lambdas)
	cumPsi := floats.CumSum(make([]float64, n), psi)

	l = make([]float64, n)
	u = make([]float64, n)
	for i := 0; i < n; i++ {
		if cumLam[i] == 0 {
			l[i], u[i] = 0, 1

			continue
		}
		center := cumXLam[i] / cumLam[i]
		margin := (logTerm + cumPsi[i]) / cumLam[i]
		l[i] = math.Max(center-margin, 0)
		u[i] = math.Min(center+margin, 1)
	}

	return l, u
}
