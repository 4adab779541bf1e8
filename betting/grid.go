// SPDX-License-Identifier: MIT

package betting

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/confseq/predmix"
)

// CSFromMartingale inverts a test martingale into a confidence sequence for a
// parameter in [0, 1] by the grid method.
//
// Steps:
//  1. Evaluate martFn(x, m) for m ∈ {0, 1/B, …, 1}, B = opts.Breaks, and keep
//     the candidates whose value is ≤ 1/α at time t.
//  2. l_t, u_t = smallest and largest kept candidate, widened by 1/B and
//     clipped to [0, 1]. A time with no kept candidate yields NaN.
//  3. opts.N > 0: intersect with LogicalCS.
//  4. opts.RunningIntersection: tighten monotonically (NaN propagates).
//
// With opts.Parallel the grid is evaluated concurrently (at most GOMAXPROCS
// goroutines); martFn must then be safe for concurrent use. Cancelling ctx
// aborts the evaluation with ctx.Err().
//
// Complexity: B+1 martFn calls, O(B·n) memory.
func CSFromMartingale(ctx context.Context, x []float64, martFn MartFunc, opts Options) (l, u []float64, err error) {
	const tag = "CSFromMartingale"
	if martFn == nil {
		return nil, nil, validatorErrorf(tag, ErrNilMartingale)
	}
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	if err = validateGridOptions(tag, opts, len(x)); err != nil {
		return nil, nil, err
	}

	n, breaks := len(x), opts.Breaks
	threshold := 1 / opts.Alpha
	inCS := make([][]bool, breaks+1)

	eval := func(i int) error {
		m := float64(i) / float64(breaks)
		values, err := martFn(x, m)
		if err != nil {
			return fmt.Errorf("%s: m=%g: %w", tag, m, err)
		}
		if len(values) != n {
			return fmt.Errorf("%s: m=%g: %d values for %d observations: %w", tag, m, len(values), n, ErrMartLength)
		}
		row := make([]bool, n)
		for j, v := range values {
			row[j] = v <= threshold
		}
		inCS[i] = row

		return nil
	}

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i <= breaks; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				return eval(i)
			})
		}
		if err = g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := 0; i <= breaks; i++ {
			if err = ctx.Err(); err != nil {
				return nil, nil, err
			}
			if err = eval(i); err != nil {
				return nil, nil, err
			}
		}
	}

	l, u = gridBounds(inCS, n, breaks)

	if opts.N > 0 {
		ll, lu, err := LogicalCS(x, opts.N)
		if err != nil {
			return nil, nil, validatorErrorf(tag, err)
		}
		for j := range l {
			l[j] = math.Max(l[j], ll[j])
			u[j] = math.Min(u[j], lu[j])
		}
	}
	if opts.RunningIntersection {
		predmix.RunningIntersection(l, u)
	}

	return l, u, nil
}

// gridBounds turns the membership matrix into widened, clipped bounds.
func gridBounds(inCS [][]bool, n, breaks int) (l, u []float64) {
	first := make([]int, n)
	last := make([]int, n)
	for j := range first {
		first[j] = -1
	}
	for i, row := range inCS {
		for j, in := range row {
			if !in {
				continue
			}
			if first[j] < 0 {
				first[j] = i
			}
			last[j] = i
		}
	}

	step := 1 / float64(breaks)
	l = make([]float64, n)
	u = make([]float64, n)
	for j := range l {
		if first[j] < 0 {
			l[j], u[j] = math.NaN(), math.NaN()

			continue
		}
		l[j] = math.Max(0, float64(first[j])/float64(breaks)-step)
		u[j] = math.Min(1, float64(last[j])/float64(breaks)+step)
	}

	return l, u
}

// LogicalCS returns the bounds implied by sampling without replacement from a
// population of size N with values in [0, 1], whatever the martingale:
//
//	l_t = S_t / N,  u_t = 1 − (t − S_t) / N.
//
// Errors: ErrEmptyInput, ErrOutOfUnitInterval, ErrBadPopulation (N < len(x)).
func LogicalCS(x []float64, N int) (l, u []float64, err error) {
	const tag = "LogicalCS"
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	if N < len(x) {
		return nil, nil, fmt.Errorf("%s: N=%d for %d observations: %w", tag, N, len(x), ErrBadPopulation)
	}

	size := float64(N)
	sums := floats.CumSum(make([]float64, len(x)), x)
	l = make([]float64, len(x))
	u = make([]float64, len(x))
	for i, s := range sums {
		l[i] = s / size
		u[i] = 1 - (float64(i+1)-s)/size
	}

	return l, u, nil
}
