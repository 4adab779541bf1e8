// SPDX-License-Identifier: MIT

// Package predmix builds predictable-mixture confidence sequences for the mean
// of [0, 1]-bounded observations.
//
// 🚀 Idea
//
//	Instead of mixing over a fixed distribution of bets, each observation x_t
//	is weighted by a bet λ_t chosen from x_1..x_{t−1} only (predictable). The
//	resulting sequences are valid uniformly over time:
//
//	    P(∃ t : μ ∉ [l_t, u_t]) ≤ α.
//
// ✨ What is provided
//
//	  • LambdaEB     — empirical-Bernstein bets, regularized towards a prior
//	  • EmpBernCS    — predictable-mixture empirical-Bernstein CS
//	  • HoeffdingCS  — predictable-mixture Hoeffding CS (bets or default schedule)
//	  • RunningIntersection — monotone tightening of any (l, u) pair
//
// ⚙️ Usage:
//
//	opts := predmix.DefaultEmpBernOptions()
//	opts.RunningIntersection = true
//	l, u, err := predmix.EmpBernCS(x, opts)
//	if err != nil { ... }
//	fmt.Printf("after %d samples: [%.3f, %.3f]\n", len(x), l[len(l)-1], u[len(u)-1])
//
// Errors:
//
//	ErrEmptyInput, ErrOutOfUnitInterval, ErrBadAlpha, ErrBadOption and
//	ErrLambdaLength, each wrapped with the caller's name. Match with errors.Is.
//
// All functions are pure: inputs are never modified and there is no shared
// state, so concurrent use is safe.
package predmix
