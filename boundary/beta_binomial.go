// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BetaBinomialMixture is the beta-binomial mixture for processes whose
// increments lie in [−g, h] (Bernstein-type range parameters).
//
// The mixing scale is r = rho − g·h, where rho is the one- or two-sided
// normal calibration at (v_opt, alpha_opt). One-sided mixtures evaluate the
// incomplete beta integral at x = h/(g+h); two-sided ones use the complete
// integral (x = 1), which makes LogSuperMG symmetric under s → −s.
//
// Increments are bounded, so s can never exceed v/g: SUpperBound returns v/g
// and Bound bisects [0, v/g] without doubling.
type BetaBinomialMixture struct {
	r        float64
	g        float64
	h        float64
	oneSided bool
}

// NewBetaBinomialMixture calibrates r at (vOpt, alphaOpt) for range (g, h).
//
// Errors: ErrBadBernstein (g or h not finite and > 0), ErrBadVOpt, ErrBadAlpha,
// ErrNonPositiveR when rho ≤ g·h.
func NewBetaBinomialMixture(vOpt, alphaOpt, g, h float64, oneSided bool) (*BetaBinomialMixture, error) {
	const tag = "NewBetaBinomialMixture"
	if err := validatePositive(tag, g, ErrBadBernstein); err != nil {
		return nil, err
	}
	if err := validatePositive(tag, h, ErrBadBernstein); err != nil {
		return nil, err
	}

	var (
		rho float64
		err error
	)
	if oneSided {
		rho, err = OneSidedBestRho(vOpt, alphaOpt)
	} else {
		rho, err = BestRho(vOpt, alphaOpt)
	}
	if err != nil {
		return nil, validatorErrorf(tag, err)
	}

	r := rho - g*h
	if !(r > 0) {
		return nil, validatorErrorf(tag, ErrNonPositiveR)
	}

	return &BetaBinomialMixture{r: r, g: g, h: h, oneSided: oneSided}, nil
}

// R returns the derived mixing scale r = rho − g·h.
func (m *BetaBinomialMixture) R() float64 { return m.r }

// OneSided reports whether the mixture controls only the upper tail.
func (m *BetaBinomialMixture) OneSided() bool { return m.oneSided }

// LogSuperMG implements MixtureSupermartingale:
//
//	log M = v/(g·h)·log(g+h) − (v+h·s)/(h(g+h))·log g − (v−g·s)/(g(g+h))·log h
//	      + logIB((r+v−g·s)/(g(g+h)), (r+v+h·s)/(h(g+h)), x)
//	      − logIB(r/(g(g+h)), r/(h(g+h)), x)
//
// with logIB the log incomplete beta integral. NaN is returned once either
// beta argument drops to ≤ 0 (|s| beyond the reachable range).
func (m *BetaBinomialMixture) LogSuperMG(s, v float64) float64 {
	g, h, r := m.g, m.h, m.r
	gh := g + h
	x := 1.0
	if m.oneSided {
		x = h / gh
	}

	return v/(g*h)*math.Log(gh) -
		((v+h*s)/(h*gh))*math.Log(g) -
		((v-g*s)/(g*gh))*math.Log(h) +
		logIncompleteBeta((r+v-g*s)/(g*gh), (r+v+h*s)/(h*gh), x) -
		logIncompleteBeta(r/(g*gh), r/(h*gh), x)
}

// SUpperBound implements MixtureSupermartingale: s ≤ v/g.
func (m *BetaBinomialMixture) SUpperBound(v float64) float64 { return v / m.g }

// Bound implements MixtureSupermartingale via FindMixtureBound.
func (m *BetaBinomialMixture) Bound(v, logThreshold float64) (float64, error) {
	return FindMixtureBound(m, v, logThreshold)
}

// logBeta returns log B(a, b) = lgamma(a) + lgamma(b) − lgamma(a+b).
func logBeta(a, b float64) float64 {
	return lgamma(a) + lgamma(b) - lgamma(a+b)
}

// logIncompleteBeta returns log of the (unregularized) incomplete beta
// integral B_x(a, b) = I_x(a, b)·B(a, b). At x == 1 the integral is complete
// and log B(a, b) is returned directly.
func logIncompleteBeta(a, b, x float64) float64 {
	if !(a > 0) || !(b > 0) || !(x >= 0 && x <= 1) {
		return math.NaN()
	}
	if x == 1 {
		return logBeta(a, b)
	}

	return math.Log(mathext.RegIncBeta(a, b, x)) + logBeta(a, b)
}
