// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/confseq/predmix"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append(args, "--no-color"))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	require.NoError(t, err, "output %q", s)

	return v
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBound_Families(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want float64
		tol  float64
	}{
		{"one-sided normal", []string{"--family", "normal", "--v", "1", "--v-opt", "1"}, 2.7660708830673206, 1e-8},
		{"two-sided normal", []string{"--family", "normal2", "--v", "1", "--v-opt", "1"}, 3.0352089903762534, 1e-8},
		{"gamma-exponential", []string{"--family", "gamma-exp", "--v", "10", "--v-opt", "10", "--c", "0.5"}, 10.065299989618797, 1e-4},
		{"gamma-poisson", []string{"--family", "gamma-poisson", "--v", "10", "--v-opt", "10", "--c", "0.5"}, 9.385768625192089, 1e-4},
		{"beta-binomial", []string{"--family", "beta-binomial", "--v", "10", "--v-opt", "10"}, 8.172434418720137, 1e-5},
		{"stitching", []string{"--family", "stitching", "--v", "100", "--v-min", "1"}, 37.91564240369384, 1e-8},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, "", append([]string{"bound"}, tc.args...)...)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, parseFloat(t, out), tc.tol)
		})
	}
}

func TestBound_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "bound", "--family", "cauchy")
	assert.Error(t, err)

	_, _, err = run(t, "", "bound", "--alpha-opt", "1.5")
	assert.Error(t, err)

	// Construction succeeds but the boundary rejects alpha.
	_, _, err = run(t, "", "bound", "--alpha", "0")
	assert.Error(t, err)

	// The variance floor of beta-binomial is below the crossing.
	_, stderr, err := run(t, "", "bound", "--family", "beta-binomial", "--v", "0.5", "--v-opt", "10")
	assert.Error(t, err)
	assert.Contains(t, stderr, "bound failed")

	_, _, err = run(t, "", "bound", "--log-level", "loud")
	assert.Error(t, err)
}

func TestGrid_DefaultsTable(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "grid", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	cfg := DefaultGridConfig()
	require.Len(t, lines, 1+len(cfg.V)*len(cfg.Alpha))
	assert.Contains(t, lines[0], "bound")
	assert.NotContains(t, out, "error")
}

func TestGrid_ConfigYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "grid.yaml", `
family: normal2
v_opt: 1
v: [1, 10]
alpha: [0.05, 0.01]
workers: 3
`)
	out, _, err := run(t, "", "grid", "--config", path, "--yaml")
	require.NoError(t, err)

	var results []GridResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)

	// Row-major in (v, alpha).
	assert.Equal(t, 1.0, results[0].V)
	assert.Equal(t, 0.05, results[0].Alpha)
	assert.Equal(t, 0.01, results[1].Alpha)
	assert.Equal(t, 10.0, results[2].V)
	assert.InDelta(t, 3.0352089903762534, results[0].Bound, 1e-8)
	for _, r := range results {
		assert.Empty(t, r.Err)
	}
	assert.Greater(t, results[1].Bound, results[0].Bound)
}

// TestGrid_CellErrorsAreReported: a failing cell does not abort the grid.
func TestGrid_CellErrorsAreReported(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bb.yaml", `
family: beta-binomial
v_opt: 10
v: [0.5, 10]
alpha: [0.05]
`)
	out, stderr, err := run(t, "", "grid", "--config", path, "--yaml")
	require.NoError(t, err)

	var results []GridResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Err)
	assert.Empty(t, results[1].Err)
	assert.InDelta(t, 8.172434418720137, results[1].Bound, 1e-5)
	assert.Contains(t, stderr, "grid cell failed")
}

func TestLoadGridConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadGridConfig(writeFile(t, "partial.yaml", "v: [5]\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, cfg.V)
	assert.Equal(t, DefaultGridConfig().Alpha, cfg.Alpha)
	assert.Equal(t, familyNormal, cfg.Family)

	cfg, err = LoadGridConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultGridConfig(), cfg)

	bad := map[string]string{
		"unknown key":  "colour: blue\n",
		"bad family":   "family: cauchy\n",
		"bad alpha":    "alpha: [1.5]\n",
		"empty v":      "v: []\n",
		"negative v":   "v: [-1]\n",
		"bad exponent": "exponent: 1\n",
		"not yaml":     "v: [1, 2\n",
	}
	for name, content := range bad {
		_, err := LoadGridConfig(writeFile(t, "bad.yaml", content))
		assert.Error(t, err, name)
	}

	_, err = LoadGridConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFamilySpec_Boundary(t *testing.T) {
	t.Parallel()

	for _, family := range []string{familyNormal, familyNormal2, familyGammaExp, familyGammaPoisson, familyBetaBinomial, familyStitching} {
		spec := DefaultFamilySpec()
		spec.Family = family
		spec.VOpt = 100
		require.NoError(t, spec.Validate(), family)
		b, err := spec.Boundary()
		require.NoError(t, err, family)
		u, err := b(100, 0.05)
		require.NoError(t, err, family)
		assert.Greater(t, u, 0.0, family)
	}

	spec := DefaultFamilySpec()
	spec.Family = "cauchy"
	_, err := spec.Boundary()
	assert.ErrorIs(t, err, errUnknownFamily)
}

func TestCS_Methods(t *testing.T) {
	t.Parallel()

	x := make([]float64, 300)
	var sb strings.Builder
	for i := range x {
		x[i] = float64((i+1)*37%101) / 100
		sb.WriteString(strconv.FormatFloat(x[i], 'g', -1, 64))
		sb.WriteByte('\n')
	}
	path := writeFile(t, "x.txt", sb.String())

	out, _, err := run(t, "", "cs", "--method", "hoeffding", "--file", path, "--every", "100")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	l, u, err := predmix.HoeffdingCS(x, predmix.DefaultHoeffdingOptions())
	require.NoError(t, err)
	fields := strings.Fields(lines[2])
	require.Len(t, fields, 3)
	assert.Equal(t, "300", fields[0])
	assert.InDelta(t, l[299], parseFloat(t, fields[1]), 1e-6)
	assert.InDelta(t, u[299], parseFloat(t, fields[2]), 1e-6)

	// stdin and the default method.
	out, _, err = run(t, sb.String(), "cs", "--every", "300")
	require.NoError(t, err)
	le, ue, err := predmix.EmpBernCS(x, predmix.DefaultEmpBernOptions())
	require.NoError(t, err)
	fields = strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 3)
	assert.InDelta(t, le[299], parseFloat(t, fields[1]), 1e-6)
	assert.InDelta(t, ue[299], parseFloat(t, fields[2]), 1e-6)

	out, _, err = run(t, "", "cs", "--method", "betting", "--file", path, "--breaks", "50", "--parallel", "--every", "300")
	require.NoError(t, err)
	fields = strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 3)
	lb, ub := parseFloat(t, fields[1]), parseFloat(t, fields[2])
	assert.Less(t, lb, 0.5)
	assert.Greater(t, ub, 0.5)
}

func TestCS_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "0.5 abc", "cs")
	assert.Error(t, err)

	_, _, err = run(t, "0.5 1.5", "cs")
	assert.ErrorIs(t, err, predmix.ErrOutOfUnitInterval)

	_, _, err = run(t, "", "cs")
	assert.ErrorIs(t, err, predmix.ErrEmptyInput)

	_, _, err = run(t, "0.5", "cs", "--method", "bootstrap")
	assert.Error(t, err)

	_, _, err = run(t, "", "cs", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLevel("verbose")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "", "bound", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bound evaluated")

	_, stderr, err = run(t, "", "bound")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "bound evaluated")
}
