package zetaprime

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrPrimeIndex  = errors.New("prime index must be at least 1")
	ErrBracket     = errors.New("no bracketing interval found")
	ErrCountDomain = errors.New("count approximation left its domain")
)

// Upper bound widening never passes this point
const bracketCap = 1e18

// Config tunes the inversion of the prime count approximation.
type Config struct {
	// Number of zeta zeros fed to the count formula; fewer zeros is
	// cheaper and slightly less accurate. 0 means all supplied zeros.
	NumZeros int
	// Bracket width at which bisection stops
	Tolerance float64
	// Safety valve against a bad bracket
	MaxIters int
	// Multiplicative margin for the upper bracket bound (> 1)
	BracketGrowth float64
	// How many times the upper bound may be widened before giving up
	MaxWidenings int
}

// DefaultConfig reproduces the reference accuracy/cost trade-off:
// all 20 zeros, half-integer tolerance (the target is integer valued).
func DefaultConfig() Config {
	return Config{
		NumZeros:      len(ZetaZeros),
		Tolerance:     0.5,
		MaxIters:      40,
		BracketGrowth: 1.5,
		MaxWidenings:  60,
	}
}

// Estimate is the outcome of one inversion.
type Estimate struct {
	// Estimated value of the n-th prime
	Value float64
	// False when the iteration cap was hit before the bracket
	// narrowed to the tolerance; the value is then lower-confidence
	// but still usable.
	Converged bool
}

// NthPrime estimates the n-th prime by inverting CountPrimes with
// bisection, seeded by the asymptotic expansion
//
//	p_n ~ n*(log n + log log n - 1 + (log log n - 2)/log n)
//
// Every call is independent and touches no shared state besides the
// read-only zeros slice.
func NthPrime(n int, zeros []float64, cfg Config) (*Estimate, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrPrimeIndex, n)
	}
	// The explicit formula has no resolution at the very first primes
	switch n {
	case 1:
		return &Estimate{Value: 2, Converged: true}, nil
	case 2:
		return &Estimate{Value: 3, Converged: true}, nil
	}

	if cfg.NumZeros > 0 && cfg.NumZeros < len(zeros) {
		zeros = zeros[:cfg.NumZeros]
	}
	countFn := func(x float64) float64 { return CountPrimes(x, zeros) }
	target := float64(n)

	guess := seedGuess(n)
	lo := math.Max(2, guess*0.8)
	hi := guess * cfg.BracketGrowth

	widenings := 0
	for countFn(hi) < target {
		widenings++
		if widenings > cfg.MaxWidenings || hi > bracketCap {
			return nil, fmt.Errorf("%w for n=%d after %d widenings", ErrBracket, n, widenings-1)
		}
		hi *= cfg.BracketGrowth
	}

	mid, converged := InvertMonotone(countFn, target, lo, hi, cfg.Tolerance, cfg.MaxIters)
	if math.IsNaN(mid) || math.IsNaN(countFn(mid)) {
		return nil, fmt.Errorf("%w at x=%g", ErrCountDomain, mid)
	}
	return &Estimate{Value: mid, Converged: converged}, nil
}

// EstimateNthPrime is the single-call entry point with default
// configuration and the full zero set.
func EstimateNthPrime(n int) (float64, error) {
	est, err := NthPrime(n, ZetaZeros, DefaultConfig())
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

// Asymptotic initial guess for the n-th prime. Below n=6 the
// log log n term misbehaves, so the cruder n*log n seed is used;
// bisection only needs a valid bracket, not a tight seed.
func seedGuess(n int) float64 {
	fn := float64(n)
	logn := math.Log(fn)
	loglogn := 0.0
	if logn > 1 {
		loglogn = math.Log(logn)
	}
	if n >= 6 {
		return fn * (logn + loglogn - 1 + (loglogn-2)/logn)
	}
	return fn * logn
}
