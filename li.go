package zetaprime

import "math"

// Euler-Mascheroni constant
const eulerGamma = 0.5772156649015329

const (
	liMaxTerms = 100
	liTermEps  = 1e-12
)

// Li approximates the logarithmic integral li(x) through the series
// expansion of Ei(log x):
//
//	li(x) = γ + ln(ln x) + Σ_{k>=1} (ln x)^k / (k * k!)
//
// The series is truncated after liMaxTerms or once a term drops below
// liTermEps. Values of x at or below 2 yield 0; callers are expected to
// stay above that bound.
func Li(x float64) float64 {
	if x <= 2 {
		return 0
	}

	z := math.Log(x)
	res := eulerGamma + math.Log(z)
	zk := z
	fact := 1.0
	for k := 1; k < liMaxTerms; k++ {
		fact *= float64(k)
		term := zk / (float64(k) * fact)
		if term < liTermEps {
			break
		}
		res += term
		zk *= z
	}
	return res
}
