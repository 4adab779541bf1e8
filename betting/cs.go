// SPDX-License-Identifier: MIT

package betting

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CS returns the betting confidence sequence for the mean of x: the grid
// inversion of DiversifiedMart under opts.
//
// Default bets (nil Positive) do not depend on the candidate mean, so they are
// computed once per call instead of once per grid point.
func CS(ctx context.Context, x []float64, opts Options) (l, u []float64, err error) {
	const tag = "CS"
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	if err = validateMartOptions(tag, opts, len(x)); err != nil {
		return nil, nil, err
	}

	o := opts
	if o.Strategies, err = prepareStrategies(x, opts); err != nil {
		return nil, nil, validatorErrorf(tag, err)
	}
	martFn := func(x []float64, m float64) ([]float64, error) {
		return diversifiedMart(x, m, o)
	}

	return CSFromMartingale(ctx, x, martFn, opts)
}

// CI returns the fixed-time confidence interval at t = len(x): the last
// element of CS. DefaultCIOptions holds the usual settings.
func CI(ctx context.Context, x []float64, opts Options) (l, u float64, err error) {
	ls, us, err := CS(ctx, x, opts)
	if err != nil {
		return 0, 0, err
	}

	return ls[len(ls)-1], us[len(us)-1], nil
}

// CISeq returns CI(x[:t]) for every t in times. Unlike CS, each interval only
// holds at its own time. With opts.Parallel the times are processed
// concurrently and each CI runs sequentially.
//
// Errors: ErrBadTime for a time outside [1, len(x)], plus any CI error.
func CISeq(ctx context.Context, x []float64, times []int, opts Options) (l, u []float64, err error) {
	const tag = "CISeq"
	if err = validateObservations(tag, x); err != nil {
		return nil, nil, err
	}
	for _, t := range times {
		if t < 1 || t > len(x) {
			return nil, nil, fmt.Errorf("%s: t=%d with %d observations: %w", tag, t, len(x), ErrBadTime)
		}
	}

	l = make([]float64, len(times))
	u = make([]float64, len(times))
	inner := opts
	inner.Parallel = false
	run := func(ctx context.Context, i int) error {
		lo, hi, err := CI(ctx, x[:times[i]], inner)
		if err != nil {
			return fmt.Errorf("%s: t=%d: %w", tag, times[i], err)
		}
		l[i], u[i] = lo, hi

		return nil
	}

	if !opts.Parallel {
		for i := range times {
			if err = run(ctx, i); err != nil {
				return nil, nil, err
			}
		}

		return l, u, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range times {
		g.Go(func() error { return run(gctx, i) })
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

// prepareStrategies resolves defaults and evaluates default bets once.
func prepareStrategies(x []float64, o Options) ([]Strategy, error) {
	src := o.Strategies
	if len(src) == 0 {
		src = []Strategy{{}}
	}

	var shared BetFunc
	out := make([]Strategy, len(src))
	for i, s := range src {
		if s.Positive == nil {
			if shared == nil {
				bets, err := defaultBets(o.Alpha)(x, 0)
				if err != nil {
					return nil, err
				}
				shared = fixedBets(bets)
			}
			s.Positive = shared
		}
		if s.Negative == nil {
			s.Negative = s.Positive
		}
		out[i] = s
	}

	return out, nil
}

// fixedBets returns the same read-only bets for every candidate mean.
func fixedBets(bets []float64) BetFunc {
	return func([]float64, float64) ([]float64, error) { return bets, nil }
}
