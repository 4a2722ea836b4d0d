package zetaprime

// InvertMonotone searches [lo, hi] for x with f(x) = target by
// bisection. f is assumed to increase across the interval at large
// scales; local wiggles only shift the answer to a nearby crossing.
//
// The bracket is narrowed until its width reaches tol or maxIters
// halvings have been spent. Returns the final midpoint and whether the
// tolerance was met.
func InvertMonotone(f func(float64) float64, target, lo, hi, tol float64, maxIters int) (float64, bool) {
	for i := 0; i < maxIters; i++ {
		if hi-lo <= tol {
			break
		}
		mid := (lo + hi) / 2
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, hi-lo <= tol
}
