// SPDX-License-Identifier: MIT

package boundary

import "math"

// The functions below are the stateless facade: each call constructs the
// mixture and evaluates it once. Construct a mixture directly to amortize
// calibration across many evaluations.

// NormalLogMixture returns the one-sided (default) or two-sided normal
// log-supermartingale at (s, v), calibrated at (vOpt, alphaOpt).
func NormalLogMixture(s, v, vOpt float64, opts ...Option) (float64, error) {
	m, err := newNormalMixture(vOpt, gatherOptions(opts...))
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// NormalMixtureBound returns the normal mixture boundary at (v, alpha).
func NormalMixtureBound(v, alpha, vOpt float64, opts ...Option) (float64, error) {
	m, err := newNormalMixture(vOpt, gatherOptions(opts...))
	if err != nil {
		return 0, err
	}

	return boundAt(m, v, alpha)
}

// GammaExponentialLogMixture returns the gamma-exponential log-supermartingale
// at (s, v). Sidedness options are ignored.
func GammaExponentialLogMixture(s, v, vOpt, c float64, opts ...Option) (float64, error) {
	m, err := NewGammaExponentialMixture(vOpt, gatherOptions(opts...).alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// GammaExponentialMixtureBound returns the gamma-exponential boundary at (v, alpha).
func GammaExponentialMixtureBound(v, alpha, vOpt, c float64, opts ...Option) (float64, error) {
	m, err := NewGammaExponentialMixture(vOpt, gatherOptions(opts...).alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return boundAt(m, v, alpha)
}

// GammaPoissonLogMixture returns the gamma-Poisson log-supermartingale at
// (s, v). Sidedness options are ignored.
func GammaPoissonLogMixture(s, v, vOpt, c float64, opts ...Option) (float64, error) {
	m, err := NewGammaPoissonMixture(vOpt, gatherOptions(opts...).alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// GammaPoissonMixtureBound returns the gamma-Poisson boundary at (v, alpha).
func GammaPoissonMixtureBound(v, alpha, vOpt, c float64, opts ...Option) (float64, error) {
	m, err := NewGammaPoissonMixture(vOpt, gatherOptions(opts...).alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return boundAt(m, v, alpha)
}

// BetaBinomialLogMixture returns the beta-binomial log-supermartingale at (s, v).
func BetaBinomialLogMixture(s, v, vOpt, g, h float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	m, err := NewBetaBinomialMixture(vOpt, o.alphaOpt, g, h, o.oneSided)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// BetaBinomialMixtureBound returns the beta-binomial boundary at (v, alpha).
func BetaBinomialMixtureBound(v, alpha, vOpt, g, h float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	m, err := NewBetaBinomialMixture(vOpt, o.alphaOpt, g, h, o.oneSided)
	if err != nil {
		return 0, err
	}

	return boundAt(m, v, alpha)
}

// PolyStitchingBound returns the polynomial stitching boundary at (v, alpha)
// with variance floor vMin.
func PolyStitchingBound(v, alpha, vMin float64, opts ...StitchingOption) (float64, error) {
	o := gatherStitchingOptions(opts...)
	p, err := NewPolyStitching(vMin, o.c, o.s, o.eta)
	if err != nil {
		return 0, err
	}

	return p.Bound(v, alpha)
}

func newNormalMixture(vOpt float64, o options) (MixtureSupermartingale, error) {
	if o.oneSided {
		return NewOneSidedNormalMixture(vOpt, o.alphaOpt)
	}

	return NewTwoSidedNormalMixture(vOpt, o.alphaOpt)
}

// boundAt validates alpha and evaluates m at log(1/alpha).
func boundAt(m MixtureSupermartingale, v, alpha float64) (float64, error) {
	if err := validateAlpha(alpha); err != nil {
		return 0, err
	}

	return m.Bound(v, math.Log(1/alpha))
}
