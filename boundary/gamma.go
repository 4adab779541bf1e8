// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma mixtures for sub-exponential (GammaExponentialMixture) and
// sub-Poisson (GammaPoissonMixture) processes with scale c.
//
// Both calibrate rho like OneSidedNormalMixture and precompute a leading
// constant from rho/c²:
//
//	GE: L = (rho/c²)·log(rho/c²) − lgamma(rho/c²) − log P(rho/c², rho/c²)
//	GP: L = (rho/c²)·log(rho/c²) − lgamma(rho/c²) − log Q(rho/c², rho/c²)
//
// where P and Q are the regularized lower and upper incomplete gamma functions.
// The incomplete gamma functions are sensitive to argument scaling, so the
// arguments are always formed from (c·s + v)/c² and (v + rho)/c² exactly as
// documented on each LogSuperMG.

// GammaExponentialMixture is the gamma-exponential mixture (one-sided).
type GammaExponentialMixture struct {
	rho             float64
	c               float64
	leadingConstant float64
}

// NewGammaExponentialMixture calibrates rho at (vOpt, alphaOpt) for scale c.
//
// Errors: ErrBadVOpt, ErrBadAlpha (alphaOpt must be < 1/2), ErrBadScale,
// ErrDomain when the leading constant is not finite.
func NewGammaExponentialMixture(vOpt, alphaOpt, c float64) (*GammaExponentialMixture, error) {
	const tag = "NewGammaExponentialMixture"
	if err := validatePositive(tag, c, ErrBadScale); err != nil {
		return nil, err
	}
	rho, err := OneSidedBestRho(vOpt, alphaOpt)
	if err != nil {
		return nil, validatorErrorf(tag, err)
	}

	rhoCSq := rho / (c * c)
	lead := rhoCSq*math.Log(rhoCSq) - lgamma(rhoCSq) - math.Log(regGammaP(rhoCSq, rhoCSq))
	if !isFinite(lead) {
		return nil, validatorErrorf(tag, ErrDomain)
	}

	return &GammaExponentialMixture{rho: rho, c: c, leadingConstant: lead}, nil
}

// Rho returns the calibrated mixture scale.
func (m *GammaExponentialMixture) Rho() float64 { return m.rho }

// LogSuperMG implements MixtureSupermartingale:
//
//	a = (v + rho)/c²,  x = (c·s + v)/c² + rho/c²
//	log M = L + lgamma(a) + log P(a, x) − a·log(x) + (c·s + v)/c²
//
// NaN is returned when x < 0, i.e. s < −(v + rho)/c.
func (m *GammaExponentialMixture) LogSuperMG(s, v float64) float64 {
	cSq := m.c * m.c
	csV := (m.c*s + v) / cSq
	vRho := (v + m.rho) / cSq
	x := csV + m.rho/cSq

	return m.leadingConstant +
		lgamma(vRho) +
		math.Log(regGammaP(vRho, x)) -
		vRho*math.Log(x) +
		csV
}

// SUpperBound implements MixtureSupermartingale; there is no a-priori ceiling.
func (m *GammaExponentialMixture) SUpperBound(float64) float64 { return math.Inf(1) }

// Bound implements MixtureSupermartingale via FindMixtureBound.
func (m *GammaExponentialMixture) Bound(v, logThreshold float64) (float64, error) {
	return FindMixtureBound(m, v, logThreshold)
}

// GammaPoissonMixture is the gamma-Poisson mixture (one-sided).
type GammaPoissonMixture struct {
	rho             float64
	c               float64
	leadingConstant float64
}

// NewGammaPoissonMixture calibrates rho at (vOpt, alphaOpt) for scale c.
//
// Errors: ErrBadVOpt, ErrBadAlpha (alphaOpt must be < 1/2), ErrBadScale,
// ErrDomain when the leading constant is not finite.
func NewGammaPoissonMixture(vOpt, alphaOpt, c float64) (*GammaPoissonMixture, error) {
	const tag = "NewGammaPoissonMixture"
	if err := validatePositive(tag, c, ErrBadScale); err != nil {
		return nil, err
	}
	rho, err := OneSidedBestRho(vOpt, alphaOpt)
	if err != nil {
		return nil, validatorErrorf(tag, err)
	}

	rhoCSq := rho / (c * c)
	lead := rhoCSq*math.Log(rhoCSq) - lgamma(rhoCSq) - math.Log(regGammaQ(rhoCSq, rhoCSq))
	if !isFinite(lead) {
		return nil, validatorErrorf(tag, ErrDomain)
	}

	return &GammaPoissonMixture{rho: rho, c: c, leadingConstant: lead}, nil
}

// Rho returns the calibrated mixture scale.
func (m *GammaPoissonMixture) Rho() float64 { return m.rho }

// LogSuperMG implements MixtureSupermartingale:
//
//	x = (v + rho)/c²,  a = s/c + x
//	log M = L + lgamma(a) + log Q(a, x) − a·log(x) + v/c²
//
// NaN is returned when a ≤ 0, i.e. s ≤ −(v + rho)/c.
func (m *GammaPoissonMixture) LogSuperMG(s, v float64) float64 {
	cSq := m.c * m.c
	vRho := (v + m.rho) / cSq
	a := s/m.c + vRho

	return m.leadingConstant +
		lgamma(a) +
		math.Log(regGammaQ(a, vRho)) -
		a*math.Log(vRho) +
		v/cSq
}

// SUpperBound implements MixtureSupermartingale; there is no a-priori ceiling.
func (m *GammaPoissonMixture) SUpperBound(float64) float64 { return math.Inf(1) }

// Bound implements MixtureSupermartingale via FindMixtureBound.
func (m *GammaPoissonMixture) Bound(v, logThreshold float64) (float64, error) {
	return FindMixtureBound(m, v, logThreshold)
}

// regGammaP is mathext.GammaIncReg with out-of-domain arguments mapped to NaN
// instead of a panic.
func regGammaP(a, x float64) float64 {
	if !(a > 0) || !(x >= 0) || math.IsInf(a, 0) {
		return math.NaN()
	}

	return mathext.GammaIncReg(a, x)
}

// regGammaQ is mathext.GammaIncRegComp with out-of-domain arguments mapped to NaN.
func regGammaQ(a, x float64) float64 {
	if !(a > 0) || !(x >= 0) || math.IsInf(a, 0) {
		return math.NaN()
	}

	return mathext.GammaIncRegComp(a, x)
}
