// SPDX-License-Identifier: MIT

// Package boundary computes time-uniform confidence sequence boundaries.
//
// 🚀 What is a uniform boundary?
//
//	For a process S indexed by an accumulating variance (information) V, a
//	uniform boundary u(v, α) satisfies
//
//	    P(∃ t : S_t ≥ u(V_t, α)) ≤ α,
//
//	simultaneously over all times, not at one fixed sample size. This is the
//	machinery behind anytime-valid sequential tests and always-valid
//	confidence intervals.
//
// ✨ Mixture supermartingales
//
//	Every mixture family implements MixtureSupermartingale:
//	  • TwoSidedNormalMixture   — closed-form log-superMG and closed-form inverse
//	  • OneSidedNormalMixture   — adds log Φ(s/√(v+ρ)); inverted numerically
//	  • GammaExponentialMixture — sub-exponential processes, scale c
//	  • GammaPoissonMixture     — sub-Poisson processes, scale c
//	  • BetaBinomialMixture     — increments bounded in [−g, h]
//
//	Each is calibrated once, at construction, to be tightest at an operating
//	point (v_opt, α_opt). FindMixtureBound inverts any of them: it brackets the
//	crossing of log(1/α) by doubling (or uses the family's finite SUpperBound)
//	and bisects to 40 bits. New families only need LogSuperMG and SUpperBound.
//
// ✨ Polynomial stitching
//
//	PolyStitching is a cheaper, slightly looser closed-form alternative that
//	needs no root finding at all.
//
// ⚙️ Usage:
//
//	m, err := boundary.NewOneSidedNormalMixture(100, 0.05)
//	if err != nil { ... }
//	b, _ := boundary.NewMixtureBoundary(m)
//	u, err := b.Bound(250, 0.05) // threshold for S at V = 250
//
//	// one-shot facade with defaults α_opt = 0.05, one-sided:
//	u, err = boundary.NormalMixtureBound(250, 0.05, 100)
//	u, err = boundary.BetaBinomialMixtureBound(250, 0.05, 100, 1, 1, boundary.WithTwoSided())
//	u, err = boundary.PolyStitchingBound(250, 0.05, 1, boundary.WithEta(2.04))
//
// Errors:
//
//	Invalid parameters are rejected at construction with sentinels from
//	errors.go (ErrBadVOpt, ErrBadAlpha, ErrNonPositiveR, …). Bound reports
//	ErrNoBracket when no search ceiling brackets the crossing and ErrDomain when
//	a special function left its domain. Match with errors.Is.
//
// Concurrency:
//
//	Every value in this package is immutable after construction and safe to
//	share between goroutines without synchronization.
//
// Special functions (log-gamma, regularized incomplete gamma and beta, Riemann
// zeta, standard normal CDF) come from gonum and the standard library.
package boundary
