// SPDX-License-Identifier: MIT

package predmix

import "math"

// RunningIntersection tightens (l, u) in place to
//
//	l_t = max(l_1..l_t),  u_t = min(u_1..u_t).
//
// A NaN propagates forward, matching math.Max / math.Min. l and u must have
// the same length; the shorter length is used otherwise.
func RunningIntersection(l, u []float64) {
	n := min(len(l), len(u))
	for i := 1; i < n; i++ {
		l[i] = math.Max(l[i], l[i-1])
		u[i] = math.Min(u[i], u[i-1])
	}
}
