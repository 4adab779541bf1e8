// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BestRho returns the normal-mixture scale rho that makes the two-sided
// boundary tightest at variance v for miscoverage alpha:
//
//	rho = v / (2·log(1/alpha) + log(1 + 2·log(1/alpha)))
//
// Errors: ErrBadVOpt (v not finite or ≤ 0), ErrBadAlpha (alpha ∉ (0,1)).
func BestRho(v, alpha float64) (float64, error) {
	if err := validateCalibration(v, alpha); err != nil {
		return 0, validatorErrorf("BestRho", err)
	}
	logInvAlpha := math.Log(1 / alpha)

	return v / (2*logInvAlpha + math.Log(1+2*logInvAlpha)), nil
}

// OneSidedBestRho calibrates a one-sided mixture: the two-sided optimum at
// 2·alpha. It therefore requires alpha < 1/2.
func OneSidedBestRho(v, alpha float64) (float64, error) {
	return BestRho(v, 2*alpha)
}

// TwoSidedNormalMixture is the normal mixture controlling both tails:
//
//	log M(s, v) = ½·log(rho/(v+rho)) + s²/(2(v+rho))
//
// It is the only family with a closed-form inverse, so Bound never bisects.
type TwoSidedNormalMixture struct {
	rho float64
}

// NewTwoSidedNormalMixture calibrates rho at (vOpt, alphaOpt).
func NewTwoSidedNormalMixture(vOpt, alphaOpt float64) (*TwoSidedNormalMixture, error) {
	rho, err := BestRho(vOpt, alphaOpt)
	if err != nil {
		return nil, validatorErrorf("NewTwoSidedNormalMixture", err)
	}

	return &TwoSidedNormalMixture{rho: rho}, nil
}

// Rho returns the calibrated mixture scale.
func (m *TwoSidedNormalMixture) Rho() float64 { return m.rho }

// LogSuperMG implements MixtureSupermartingale.
func (m *TwoSidedNormalMixture) LogSuperMG(s, v float64) float64 {
	return 0.5*math.Log(m.rho/(v+m.rho)) + s*s/(2*(v+m.rho))
}

// SUpperBound implements MixtureSupermartingale; there is no a-priori ceiling.
func (m *TwoSidedNormalMixture) SUpperBound(float64) float64 { return math.Inf(1) }

// Bound solves LogSuperMG(s, v) = logThreshold exactly:
//
//	s = sqrt((v+rho)·(log(1+v/rho) + 2·logThreshold))
//
// ErrNoBracket is returned when logThreshold is below LogSuperMG(0, v), i.e.
// no s ≥ 0 reaches it.
func (m *TwoSidedNormalMixture) Bound(v, logThreshold float64) (float64, error) {
	if err := validateVariance(v); err != nil {
		return 0, validatorErrorf("TwoSidedNormalMixture.Bound", err)
	}
	if err := validateThreshold(logThreshold); err != nil {
		return 0, validatorErrorf("TwoSidedNormalMixture.Bound", err)
	}

	radicand := (v + m.rho) * (math.Log(1+v/m.rho) + 2*logThreshold)
	if radicand < 0 {
		return 0, validatorErrorf("TwoSidedNormalMixture.Bound", ErrNoBracket)
	}

	return math.Sqrt(radicand), nil
}

// OneSidedNormalMixture controls the upper tail only. It adds a normal-CDF
// correction to the two-sided form:
//
//	log M(s, v) = ½·log(4·rho/(v+rho)) + s²/(2(v+rho)) + log Φ(s/√(v+rho))
type OneSidedNormalMixture struct {
	rho float64
}

// NewOneSidedNormalMixture calibrates rho with OneSidedBestRho.
func NewOneSidedNormalMixture(vOpt, alphaOpt float64) (*OneSidedNormalMixture, error) {
	rho, err := OneSidedBestRho(vOpt, alphaOpt)
	if err != nil {
		return nil, validatorErrorf("NewOneSidedNormalMixture", err)
	}

	return &OneSidedNormalMixture{rho: rho}, nil
}

// Rho returns the calibrated mixture scale.
func (m *OneSidedNormalMixture) Rho() float64 { return m.rho }

// LogSuperMG implements MixtureSupermartingale.
func (m *OneSidedNormalMixture) LogSuperMG(s, v float64) float64 {
	vRho := v + m.rho

	return 0.5*math.Log(4*m.rho/vRho) + s*s/(2*vRho) +
		math.Log(distuv.UnitNormal.CDF(s/math.Sqrt(vRho)))
}

// SUpperBound implements MixtureSupermartingale; there is no a-priori ceiling.
func (m *OneSidedNormalMixture) SUpperBound(float64) float64 { return math.Inf(1) }

// Bound implements MixtureSupermartingale via FindMixtureBound.
func (m *OneSidedNormalMixture) Bound(v, logThreshold float64) (float64, error) {
	return FindMixtureBound(m, v, logThreshold)
}
