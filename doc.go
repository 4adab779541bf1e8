// SPDX-License-Identifier: MIT

// Package confseq is a toolkit for anytime-valid inference: boundaries and
// confidence sequences that hold uniformly over time, so data can be
// monitored continuously and analyses stopped whenever one likes.
//
// 🚀 What is a confidence sequence?
//
//	A sequence of intervals [l_t, u_t] with
//
//	    P(∃ t : μ ∉ [l_t, u_t]) ≤ α,
//
//	a guarantee over the whole stream instead of at one sample size fixed in
//	advance. Peeking, optional stopping and continuation are all allowed.
//
// Everything is organized under a few subpackages:
//
//	boundary/ — uniform boundaries u(v, α) in intrinsic time v: normal,
//	            gamma-exponential, gamma-Poisson and beta-binomial mixtures,
//	            plus polynomial stitching
//	roots/    — bracketing (doubling) and bisection used to invert mixtures
//	predmix/  — predictable-mixture empirical-Bernstein and Hoeffding CSs
//	betting/  — betting (capital process) CSs, fixed-time CIs, sampling
//	            without replacement
//	cmd/confseq — command-line front end (bound, grid, cs)
//
// Quick example:
//
//	// Is the running sum S_t of 1-sub-Gaussian increments too large after
//	// t = 250 observations?
//	u, err := boundary.NormalMixtureBound(250, 0.05, 100)
//	if err != nil { ... }
//	if S > u { /* reject, at any time, with error ≤ 5% */ }
//
//	// Track the mean of bounded data:
//	l, u, err := predmix.EmpBernCS(x, predmix.DefaultEmpBernOptions())
//
// Design notes:
//
//   - Immutable values – mixtures and stitching boundaries are calibrated
//     once and are safe to share between goroutines.
//   - Explicit errors – invalid parameters are rejected at construction with
//     sentinel errors; numerical failures surface as errors, never panics.
//   - Special functions from gonum – incomplete gamma and beta, zeta, normal CDF.
package confseq
