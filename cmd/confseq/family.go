// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/confseq/boundary"
)

// Boundary families understood by the CLI.
const (
	familyNormal       = "normal"
	familyNormal2      = "normal2"
	familyGammaExp     = "gamma-exp"
	familyGammaPoisson = "gamma-poisson"
	familyBetaBinomial = "beta-binomial"
	familyStitching    = "stitching"
)

var errUnknownFamily = errors.New("unknown boundary family")

// configValidate checks CLI and YAML configuration before any math runs.
var configValidate = validator.New(validator.WithRequiredStructEnabled())

// FamilySpec selects a boundary family and its tuning. Fields that a family
// does not use are ignored.
type FamilySpec struct {
	Family   string  `yaml:"family" validate:"required,oneof=normal normal2 gamma-exp gamma-poisson beta-binomial stitching"`
	VOpt     float64 `yaml:"v_opt" validate:"gt=0"`
	AlphaOpt float64 `yaml:"alpha_opt" validate:"gt=0,lt=1"`
	TwoSided bool    `yaml:"two_sided"`
	C        float64 `yaml:"c" validate:"gt=0"`
	G        float64 `yaml:"g" validate:"gt=0"`
	H        float64 `yaml:"h" validate:"gt=0"`
	VMin     float64 `yaml:"v_min" validate:"gt=0"`
	Drift    float64 `yaml:"drift" validate:"gte=0"`
	Exponent float64 `yaml:"exponent" validate:"gt=1"`
	Eta      float64 `yaml:"eta" validate:"gt=1"`
}

// DefaultFamilySpec returns a one-sided normal mixture tuned at v_opt = 1.
func DefaultFamilySpec() FamilySpec {
	return FamilySpec{
		Family:   familyNormal,
		VOpt:     1,
		AlphaOpt: boundary.DefaultAlphaOpt,
		C:        1,
		G:        1,
		H:        1,
		VMin:     1,
		Drift:    boundary.DefaultStitchingDrift,
		Exponent: boundary.DefaultStitchingExponent,
		Eta:      boundary.DefaultStitchingEta,
	}
}

// Boundary builds the selected family once and returns it as a closure.
func (s FamilySpec) Boundary() (boundary.UniformBoundary, error) {
	switch s.Family {
	case familyNormal:
		return mixtureFunc(boundary.NewOneSidedNormalMixture(s.VOpt, s.AlphaOpt))
	case familyNormal2:
		return mixtureFunc(boundary.NewTwoSidedNormalMixture(s.VOpt, s.AlphaOpt))
	case familyGammaExp:
		return mixtureFunc(boundary.NewGammaExponentialMixture(s.VOpt, s.AlphaOpt, s.C))
	case familyGammaPoisson:
		return mixtureFunc(boundary.NewGammaPoissonMixture(s.VOpt, s.AlphaOpt, s.C))
	case familyBetaBinomial:
		return mixtureFunc(boundary.NewBetaBinomialMixture(s.VOpt, s.AlphaOpt, s.G, s.H, !s.TwoSided))
	case familyStitching:
		p, err := boundary.NewPolyStitching(s.VMin, s.Drift, s.Exponent, s.Eta)
		if err != nil {
			return nil, err
		}

		return p.Func(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFamily, s.Family)
	}
}

func mixtureFunc(m boundary.MixtureSupermartingale, err error) (boundary.UniformBoundary, error) {
	if err != nil {
		return nil, err
	}
	b, err := boundary.NewMixtureBoundary(m)
	if err != nil {
		return nil, err
	}

	return b.Func(), nil
}

// addFamilyFlags binds every FamilySpec field to a flag.
func addFamilyFlags(fs *pflag.FlagSet, s *FamilySpec) {
	fs.StringVar(&s.Family, "family", s.Family,
		"boundary family: normal, normal2, gamma-exp, gamma-poisson, beta-binomial or stitching")
	fs.Float64Var(&s.VOpt, "v-opt", s.VOpt, "intrinsic time the mixture is tuned for")
	fs.Float64Var(&s.AlphaOpt, "alpha-opt", s.AlphaOpt, "miscoverage the mixture is tuned for")
	fs.BoolVar(&s.TwoSided, "two-sided", s.TwoSided, "two-sided beta-binomial mixture")
	fs.Float64Var(&s.C, "c", s.C, "scale of the gamma families")
	fs.Float64Var(&s.G, "g", s.G, "lower increment range of the beta-binomial family")
	fs.Float64Var(&s.H, "h", s.H, "upper increment range of the beta-binomial family")
	fs.Float64Var(&s.VMin, "v-min", s.VMin, "stitching variance floor")
	fs.Float64Var(&s.Drift, "drift", s.Drift, "stitching drift correction c")
	fs.Float64Var(&s.Exponent, "exponent", s.Exponent, "stitching exponent s")
	fs.Float64Var(&s.Eta, "eta", s.Eta, "stitching epoch spacing")
}
