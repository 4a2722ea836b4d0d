package zetaprime

import "math"

// Offset added to log(x) inside the exponential damping of the zero
// sum. Keeps the oscillatory contribution bounded for small x.
const dampingOffset = 20.0

// CountPrimes approximates the prime counting function π(x) with a
// truncated form of the Riemann explicit formula:
//
//	li(x) - sqrt(x)/log(x) - 2*sqrt(x) * Σ_γ cos(γ*log(x) - π/4) * exp(-γ/(log(x)+D)) / γ
//
// where γ runs over the supplied zero ordinates. The function is pure;
// a shared zeros slice can be used from concurrent callers.
//
// π(x) is 0 below the first prime, and returning 0 for x <= 2 also
// guards the log(x) > 0 domain requirement.
func CountPrimes(x float64, zeros []float64) float64 {
	if x <= 2 {
		return 0
	}

	li := Li(x)
	logx := math.Log(x)
	sqrtx := math.Sqrt(x)

	osc := 0.0
	for _, gamma := range zeros {
		if gamma <= 0 {
			continue
		}
		phase := gamma*logx - math.Pi/4
		damping := math.Exp(-gamma / (logx + dampingOffset))
		osc += damping * math.Cos(phase) / gamma
	}
	osc *= 2 * sqrtx

	return li - sqrtx/logx - osc
}
