// SPDX-License-Identifier: MIT

package predmix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confseq/predmix"
)

const refTol = 1e-9

// short is a hand-picked sample used for exact reference values.
var short = []float64{0.2, 0.9, 0.4, 0.6, 0.55, 0.1, 0.8, 0.35, 0.7, 0.5}

// longSample returns a deterministic 500-point sequence with mean 0.50028.
func longSample() []float64 {
	y := make([]float64, 500)
	for i := range y {
		y[i] = float64((i+1)*37%101) / 100
	}

	return y
}

func TestLambdaEB_Reference(t *testing.T) {
	t.Parallel()

	got, err := predmix.LambdaEB(short, predmix.DefaultLambdaOptions())
	require.NoError(t, err)
	want := []float64{
		5.880087138733481, 4.473639839715801, 3.2589012932756427, 2.9880666986822866,
		2.810474895384304, 2.694870040748788, 2.275060001702436, 2.0593796690050925,
		1.9821968417166058, 1.8915332467802062,
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], refTol, "t=%d", i+1)
	}

	// First bet only sees the prior: sqrt(2·log 20 / (log 2 · 1/4)).
	assert.InDelta(t, math.Sqrt(2*math.Log(20)/(math.Ln2*0.25)), got[0], 1e-12)
}

func TestLambdaEB_FixedNAndTruncation(t *testing.T) {
	t.Parallel()

	opts := predmix.DefaultLambdaOptions()
	opts.FixedN = 100
	opts.Truncation = 0.5
	got, err := predmix.LambdaEB(short, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.4895493661361633, got[0], refTol)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 0.5, got[i])
	}

	opts.Scale = 2
	scaled, err := predmix.LambdaEB(short, opts)
	require.NoError(t, err)
	for i := range got {
		assert.InDelta(t, 2*got[i], scaled[i], 1e-15)
	}
}

func TestLambdaEB_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := append([]float64(nil), short...)
	_, err := predmix.LambdaEB(in, predmix.DefaultLambdaOptions())
	require.NoError(t, err)
	assert.Equal(t, short, in)
}

func TestLambdaEB_Errors(t *testing.T) {
	t.Parallel()

	mod := func(f func(*predmix.LambdaOptions)) predmix.LambdaOptions {
		o := predmix.DefaultLambdaOptions()
		f(&o)

		return o
	}
	cases := []struct {
		name string
		x    []float64
		opts predmix.LambdaOptions
		want error
	}{
		{"empty", nil, predmix.DefaultLambdaOptions(), predmix.ErrEmptyInput},
		{"above one", []float64{0.5, 1.5}, predmix.DefaultLambdaOptions(), predmix.ErrOutOfUnitInterval},
		{"negative", []float64{-0.1}, predmix.DefaultLambdaOptions(), predmix.ErrOutOfUnitInterval},
		{"NaN", []float64{math.NaN()}, predmix.DefaultLambdaOptions(), predmix.ErrOutOfUnitInterval},
		{"alpha", short, mod(func(o *predmix.LambdaOptions) { o.Alpha = 1 }), predmix.ErrBadAlpha},
		{"truncation", short, mod(func(o *predmix.LambdaOptions) { o.Truncation = 0 }), predmix.ErrBadOption},
		{"fixed n", short, mod(func(o *predmix.LambdaOptions) { o.FixedN = -1 }), predmix.ErrBadOption},
		{"prior mean", short, mod(func(o *predmix.LambdaOptions) { o.PriorMean = 2 }), predmix.ErrBadOption},
		{"prior variance", short, mod(func(o *predmix.LambdaOptions) { o.PriorVariance = 0.3 }), predmix.ErrBadOption},
		{"fake obs", short, mod(func(o *predmix.LambdaOptions) { o.FakeObs = -1 }), predmix.ErrBadOption},
		{"scale", short, mod(func(o *predmix.LambdaOptions) { o.Scale = 0 }), predmix.ErrBadOption},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := predmix.LambdaEB(tc.x, tc.opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEmpBernCS_Reference(t *testing.T) {
	t.Parallel()

	y := longSample()
	l, u, err := predmix.EmpBernCS(y, predmix.DefaultEmpBernOptions())
	require.NoError(t, err)
	require.Len(t, l, len(y))
	require.Len(t, u, len(y))

	assert.InDelta(t, 0.39613103123973537, l[99], refTol)
	assert.InDelta(t, 0.6134301373369752, u[99], refTol)
	assert.InDelta(t, 0.45475645236166606, l[499], refTol)
	assert.InDelta(t, 0.546349533634837, u[499], refTol)

	// Ten observations are not enough to leave the trivial interval.
	ls, us, err := predmix.EmpBernCS(short, predmix.DefaultEmpBernOptions())
	require.NoError(t, err)
	for i := range short {
		assert.Equal(t, 0.0, ls[i])
		assert.Equal(t, 1.0, us[i])
	}
}

func TestEmpBernCS_RunningIntersection(t *testing.T) {
	t.Parallel()

	opts := predmix.DefaultEmpBernOptions()
	opts.RunningIntersection = true
	l, u, err := predmix.EmpBernCS(longSample(), opts)
	require.NoError(t, err)

	for i := 1; i < len(l); i++ {
		assert.GreaterOrEqual(t, l[i], l[i-1])
		assert.LessOrEqual(t, u[i], u[i-1])
	}
	assert.InDelta(t, 0.45517450712123436, l[499], refTol)
	assert.InDelta(t, 0.546349533634837, u[499], refTol)
}

func TestEmpBernCS_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := predmix.EmpBernCS(nil, predmix.DefaultEmpBernOptions())
	assert.ErrorIs(t, err, predmix.ErrEmptyInput)

	opts := predmix.DefaultEmpBernOptions()
	opts.Alpha = 0
	_, _, err = predmix.EmpBernCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrBadAlpha)

	opts = predmix.DefaultEmpBernOptions()
	opts.Truncation = 1
	_, _, err = predmix.EmpBernCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrBadOption)

	opts = predmix.DefaultEmpBernOptions()
	opts.FixedN = -3
	_, _, err = predmix.EmpBernCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrBadOption)
}

func TestHoeffdingCS_Reference(t *testing.T) {
	t.Parallel()

	l, u, err := predmix.HoeffdingCS(short, predmix.DefaultHoeffdingOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.016112054588606428, l[9], refTol)
	assert.Equal(t, 1.0, u[9])

	l, u, err = predmix.HoeffdingCS(longSample(), predmix.DefaultHoeffdingOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.4200836221470055, l[499], refTol)
	assert.InDelta(t, 0.5803039778455421, u[499], refTol)

	// Empirical Bernstein adapts to the variance and ends up tighter.
	le, ue, err := predmix.EmpBernCS(longSample(), predmix.DefaultEmpBernOptions())
	require.NoError(t, err)
	assert.Less(t, ue[499]-le[499], u[499]-l[499])
}

func TestHoeffdingCS_CustomLambdas(t *testing.T) {
	t.Parallel()

	defaults, err := predmix.HoeffdingLambdas(len(short), 0.05)
	require.NoError(t, err)
	assert.Equal(t, 1.0, defaults[0])

	opts := predmix.DefaultHoeffdingOptions()
	opts.Lambdas = defaults
	l1, u1, err := predmix.HoeffdingCS(short, opts)
	require.NoError(t, err)
	l2, u2, err := predmix.HoeffdingCS(short, predmix.DefaultHoeffdingOptions())
	require.NoError(t, err)
	assert.Equal(t, l2, l1)
	assert.Equal(t, u2, u1)

	// Zero bets learn nothing.
	opts.Lambdas = make([]float64, len(short))
	l, u, err := predmix.HoeffdingCS(short, opts)
	require.NoError(t, err)
	for i := range short {
		assert.Equal(t, 0.0, l[i])
		assert.Equal(t, 1.0, u[i])
	}
}

func TestHoeffdingCS_Errors(t *testing.T) {
	t.Parallel()

	opts := predmix.DefaultHoeffdingOptions()
	opts.Lambdas = []float64{1, 1}
	_, _, err := predmix.HoeffdingCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrLambdaLength)

	opts.Lambdas = make([]float64, len(short))
	opts.Lambdas[3] = -1
	_, _, err = predmix.HoeffdingCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrBadLambda)

	opts.Lambdas[3] = math.Inf(1)
	_, _, err = predmix.HoeffdingCS(short, opts)
	assert.ErrorIs(t, err, predmix.ErrBadLambda)

	_, _, err = predmix.HoeffdingCS([]float64{2}, predmix.DefaultHoeffdingOptions())
	assert.ErrorIs(t, err, predmix.ErrOutOfUnitInterval)

	_, err = predmix.HoeffdingLambdas(0, 0.05)
	assert.ErrorIs(t, err, predmix.ErrEmptyInput)
}

// TestCS_Coverage: the sample mean stays inside both sequences at every time
// after a burn-in, and every interval is a sub-interval of [0, 1].
func TestCS_Coverage(t *testing.T) {
	t.Parallel()

	y := longSample()
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	for name, run := range map[string]func() ([]float64, []float64, error){
		"empbern":   func() ([]float64, []float64, error) { return predmix.EmpBernCS(y, predmix.DefaultEmpBernOptions()) },
		"hoeffding": func() ([]float64, []float64, error) { return predmix.HoeffdingCS(y, predmix.DefaultHoeffdingOptions()) },
	} {
		l, u, err := run()
		require.NoError(t, err, name)
		for i := range y {
			assert.GreaterOrEqual(t, l[i], 0.0, name)
			assert.LessOrEqual(t, u[i], 1.0, name)
			assert.LessOrEqual(t, l[i], u[i], name)
		}
		assert.Less(t, l[len(y)-1], mean, name)
		assert.Greater(t, u[len(y)-1], mean, name)
	}
}

func TestRunningIntersection(t *testing.T) {
	t.Parallel()

	l := []float64{0.1, 0.3, 0.2, 0.4}
	u := []float64{0.9, 0.7, 0.8, 0.6}
	predmix.RunningIntersection(l, u)
	assert.Equal(t, []float64{0.1, 0.3, 0.3, 0.4}, l)
	assert.Equal(t, []float64{0.9, 0.7, 0.7, 0.6}, u)

	ln := []float64{0.1, math.NaN(), 0.2}
	un := []float64{0.9, math.NaN(), 0.8}
	predmix.RunningIntersection(ln, un)
	assert.True(t, math.IsNaN(ln[2]))
	assert.True(t, math.IsNaN(un[2]))

	assert.NotPanics(t, func() { predmix.RunningIntersection(nil, nil) })
}
