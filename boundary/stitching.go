// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Stitching defaults, used by PolyStitchingBound when no option overrides them.
const (
	// DefaultStitchingDrift is the default drift-correction constant c.
	DefaultStitchingDrift = 0.0

	// DefaultStitchingExponent is the default stitching exponent s.
	DefaultStitchingExponent = 1.4

	// DefaultStitchingEta is the default geometric spacing eta of the epochs.
	DefaultStitchingEta = 2.0
)

// PolyStitching is the polynomial stitching boundary: a closed-form bound
// built by union-bounding over epochs of variance growing geometrically by
// eta, with epoch k charged error proportional to k^(−s). No root finding.
//
//	ℓ(v)  = s·log(log(eta·v/v_min)) + A + log(1/alpha)
//	bound = sqrt(k1²·v·ℓ + (k2·c·ℓ)²) + k2·c·ℓ
//
// with v clamped below at v_min and the constants
//
//	k1 = (eta^¼ + eta^−¼)/√2,  k2 = (√eta + 1)/2,  A = log(ζ(s)/log(eta)^s).
//
// PolyStitching is immutable and safe for concurrent use.
type PolyStitching struct {
	vMin float64
	c    float64
	s    float64
	eta  float64

	k1 float64
	k2 float64
	a  float64
}

// NewPolyStitching precomputes k1, k2 and A.
//
// Errors: ErrBadVMin (v_min ≤ 0), ErrBadDrift (c < 0), ErrBadExponent (s ≤ 1,
// where ζ(s) diverges), ErrBadEta (eta ≤ 1).
func NewPolyStitching(vMin, c, s, eta float64) (*PolyStitching, error) {
	const tag = "NewPolyStitching"
	if err := validatePositive(tag, vMin, ErrBadVMin); err != nil {
		return nil, err
	}
	if !isFinite(c) || c < 0 {
		return nil, validatorErrorf(tag, ErrBadDrift)
	}
	if !isFinite(s) || s <= 1 {
		return nil, validatorErrorf(tag, ErrBadExponent)
	}
	if !isFinite(eta) || eta <= 1 {
		return nil, validatorErrorf(tag, ErrBadEta)
	}

	return &PolyStitching{
		vMin: vMin,
		c:    c,
		s:    s,
		eta:  eta,
		k1:   (math.Pow(eta, 0.25) + math.Pow(eta, -0.25)) / math.Sqrt2,
		k2:   (math.Sqrt(eta) + 1) / 2,
		a:    math.Log(mathext.Zeta(s, 1) / math.Pow(math.Log(eta), s)),
	}, nil
}

// Bound implements Boundary.
//
// Errors: ErrBadVariance (v < 0), ErrBadAlpha (alpha ∉ (0,1)), ErrDomain when
// ℓ turns negative (only possible for extreme eta, where A is very negative).
func (p *PolyStitching) Bound(v, alpha float64) (float64, error) {
	const tag = "PolyStitching.Bound"
	if err := validateVariance(v); err != nil {
		return 0, validatorErrorf(tag, err)
	}
	if err := validateAlpha(alpha); err != nil {
		return 0, validatorErrorf(tag, err)
	}

	useV := math.Max(v, p.vMin)
	ell := p.s*math.Log(math.Log(p.eta*useV/p.vMin)) + p.a + math.Log(1/alpha)
	if ell < 0 {
		return 0, validatorErrorf(tag, ErrDomain)
	}
	term2 := p.k2 * p.c * ell

	return math.Sqrt(p.k1*p.k1*useV*ell+term2*term2) + term2, nil
}

// Func exposes the stitching bound as a UniformBoundary closure.
func (p *PolyStitching) Func() UniformBoundary {
	return p.Bound
}
