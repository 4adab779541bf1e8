// SPDX-License-Identifier: MIT

// Package boundary: functional options for the stateless facade.
//
// Go has no default arguments, so the facade takes the mandatory parameters
// positionally and everything with a default through options:
//
//   - Option          — alpha_opt (0.05) and sidedness (one-sided).
//   - StitchingOption — drift c (0), exponent s (1.4), base eta (2).
//
// Option constructors panic on nonsensical values (programmer error); the
// constructors they feed still validate and return sentinels.

package boundary

import "math"

// Calibration defaults.
const (
	// DefaultAlphaOpt is the miscoverage the mixtures are tuned for by default.
	DefaultAlphaOpt = 0.05

	// DefaultOneSided selects one-sided mixtures by default.
	DefaultOneSided = true
)

const (
	panicAlphaOptInvalid = "boundary: WithAlphaOpt: alpha must lie in (0, 1)"
	panicDriftInvalid    = "boundary: WithDrift: c must be finite and >= 0"
	panicExponentInvalid = "boundary: WithExponent: s must be finite and > 1"
	panicEtaInvalid      = "boundary: WithEta: eta must be finite and > 1"
)

// Option configures a facade call on a mixture family.
type Option func(*options)

type options struct {
	alphaOpt float64
	oneSided bool
}

// WithAlphaOpt sets the calibration miscoverage alpha_opt.
func WithAlphaOpt(alpha float64) Option {
	if !(alpha > 0 && alpha < 1) {
		panic(panicAlphaOptInvalid)
	}

	return func(o *options) { o.alphaOpt = alpha }
}

// WithOneSided selects one-sided (true) or two-sided (false) mixtures.
// Ignored by the gamma families, which are one-sided only.
func WithOneSided(oneSided bool) Option {
	return func(o *options) { o.oneSided = oneSided }
}

// WithTwoSided is shorthand for WithOneSided(false).
func WithTwoSided() Option { return WithOneSided(false) }

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{alphaOpt: DefaultAlphaOpt, oneSided: DefaultOneSided}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// StitchingOption configures PolyStitchingBound.
type StitchingOption func(*stitchingOptions)

type stitchingOptions struct {
	c   float64
	s   float64
	eta float64
}

// WithDrift sets the drift-correction constant c (≥ 0).
func WithDrift(c float64) StitchingOption {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		panic(panicDriftInvalid)
	}

	return func(o *stitchingOptions) { o.c = c }
}

// WithExponent sets the stitching exponent s (> 1).
func WithExponent(s float64) StitchingOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 1 {
		panic(panicExponentInvalid)
	}

	return func(o *stitchingOptions) { o.s = s }
}

// WithEta sets the geometric epoch spacing eta (> 1).
func WithEta(eta float64) StitchingOption {
	if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 1 {
		panic(panicEtaInvalid)
	}

	return func(o *stitchingOptions) { o.eta = eta }
}

func gatherStitchingOptions(opts ...StitchingOption) stitchingOptions {
	o := stitchingOptions{
		c:   DefaultStitchingDrift,
		s:   DefaultStitchingExponent,
		eta: DefaultStitchingEta,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
