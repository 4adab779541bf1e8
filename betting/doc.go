// SPDX-License-Identifier: MIT

// Package betting builds confidence sequences for the mean of [0, 1]-bounded
// observations by betting against every candidate mean.
//
// 🚀 Idea
//
//	For a candidate mean m, a gambler who bets λ_t·(x_t − m) each round grows
//	the capital K_t(m) = Π (1 + λ_i·(x_i − m)). If m is the true mean, K(m) is
//	a nonnegative martingale and, by Ville's inequality, exceeds 1/α with
//	probability at most α. The confidence sequence at time t is every m whose
//	capital is still ≤ 1/α.
//
// ✨ What is provided
//
//	  • Mart / DiversifiedMart — hedged capital processes (positive and negative
//	    bets, optionally averaged over several betting strategies)
//	  • CSFromMartingale       — grid inversion of any test martingale over [0, 1]
//	  • CS / CI / CISeq        — ready-made betting CS, fixed-time CI, and CI sequence
//	  • LogicalCS              — what sampling without replacement alone implies
//
// ⚙️ Usage:
//
//	opts := betting.DefaultOptions()
//	opts.Breaks = 200
//	opts.Parallel = true
//	l, u, err := betting.CS(ctx, x, opts)
//
// Sampling without replacement:
//
//	Set Options.N to the population size. The null mean is then updated to the
//	mean of the units not yet sampled, and CSFromMartingale intersects with
//	LogicalCS.
//
// Concurrency:
//
//	Only CSFromMartingale (Options.Parallel) and CISeq fan out; both use an
//	errgroup bounded by GOMAXPROCS and stop at the first error or when ctx is
//	cancelled. User bet functions must therefore be safe for concurrent calls
//	when Parallel is set.
package betting
