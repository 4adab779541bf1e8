// SPDX-License-Identifier: MIT

package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confseq/boundary"
)

// roundTripTol is the agreement required between LogSuperMG(Bound(v, L), v) and L.
const roundTripTol = 1e-6

// namedMixture pairs a constructed mixture with the variances it is tested at.
type namedMixture struct {
	name   string
	m      boundary.MixtureSupermartingale
	vs     []float64 // variances at which Bound is expected to succeed
	sMax   float64   // top of the monotonicity grid at v = 10
	finite bool      // SUpperBound is finite
}

// allMixtures builds one instance of every family with parameters known to
// keep every evaluation inside the special-function domains.
func allMixtures(t *testing.T) []namedMixture {
	t.Helper()

	two, err := boundary.NewTwoSidedNormalMixture(10, 0.05)
	require.NoError(t, err)
	one, err := boundary.NewOneSidedNormalMixture(10, 0.05)
	require.NoError(t, err)
	ge, err := boundary.NewGammaExponentialMixture(10, 0.05, 0.5)
	require.NoError(t, err)
	gp, err := boundary.NewGammaPoissonMixture(10, 0.05, 0.5)
	require.NoError(t, err)
	bb1, err := boundary.NewBetaBinomialMixture(10, 0.05, 1, 1, true)
	require.NoError(t, err)
	bb2, err := boundary.NewBetaBinomialMixture(10, 0.05, 1, 1, false)
	require.NoError(t, err)
	bbAsym, err := boundary.NewBetaBinomialMixture(20, 0.05, 0.5, 2, true)
	require.NoError(t, err)

	wide := []float64{0.5, 3, 10, 40, 200}

	return []namedMixture{
		{name: "TwoSidedNormal", m: two, vs: wide, sMax: 30},
		{name: "OneSidedNormal", m: one, vs: wide, sMax: 30},
		{name: "GammaExponential", m: ge, vs: wide, sMax: 30},
		{name: "GammaPoisson", m: gp, vs: wide, sMax: 30},
		{name: "BetaBinomialOneSided", m: bb1, vs: []float64{10, 40, 200}, sMax: 10, finite: true},
		{name: "BetaBinomialTwoSided", m: bb2, vs: []float64{10, 40, 200}, sMax: 10, finite: true},
		{name: "BetaBinomialAsymmetric", m: bbAsym, vs: []float64{40, 200}, sMax: 20, finite: true},
	}
}

// linearMixture is a test double: LogSuperMG(s, v) = slope·s − offset.
type linearMixture struct {
	slope, offset float64
	upper         float64
}

func (l linearMixture) LogSuperMG(s, _ float64) float64 { return l.slope*s - l.offset }
func (l linearMixture) SUpperBound(float64) float64 { return l.upper }
func (l linearMixture) Bound(v, logThreshold float64) (float64, error) {
	return boundary.FindMixtureBound(l, v, logThreshold)
}

// funcMixture is a test double backed by an arbitrary function.
type funcMixture struct {
	f     func(s, v float64) float64
	upper float64
}

func (m funcMixture) LogSuperMG(s, v float64) float64 { return m.f(s, v) }
func (m funcMixture) SUpperBound(float64) float64 { return m.upper }
func (m funcMixture) Bound(v, logThreshold float64) (float64, error) {
	return boundary.FindMixtureBound(m, v, logThreshold)
}
