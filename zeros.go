// Package zetaprime estimates the value of the n-th prime by numerically
// inverting an explicit-formula approximation to the prime counting
// function π(x) built from the logarithmic integral and an oscillatory
// sum over Riemann zeta zeros.
package zetaprime

// Imaginary parts of the first 20 non-trivial Riemann zeta zeros,
// strictly increasing. Fixed constants - the package never computes
// zeros itself.
var ZetaZeros = []float64{
	14.1347251417, 21.0220396388, 25.0108575801, 30.4248761259, 32.9350615877,
	37.5861781588, 40.9187190121, 43.3270732809, 48.0051508812, 49.7738324777,
	52.9703214777, 56.4462476971, 59.3470440026, 60.8317785246, 65.1125440481,
	67.0798105295, 69.5464017112, 72.0671576745, 75.7046906991, 77.1448400689,
}

// Zeros returns the first k zero ordinates as a capped slice.
// Out-of-range k yields the full set.
func Zeros(k int) []float64 {
	if k <= 0 || k > len(ZetaZeros) {
		k = len(ZetaZeros)
	}
	return ZetaZeros[:k:k]
}
