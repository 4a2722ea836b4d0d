package zetaprime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroOrdinates(t *testing.T) {
	assertT := assert.New(t)

	assertT.Equal(20, len(ZetaZeros))
	prev := 0.0
	for _, gamma := range ZetaZeros {
		assertT.Greater(gamma, prev)
		prev = gamma
	}

	assertT.Equal(5, len(Zeros(5)))
	assertT.Equal(ZetaZeros[:5], Zeros(5))
	assertT.Equal(20, len(Zeros(0)))
	assertT.Equal(20, len(Zeros(100)))
}

func TestCountKnownValues(t *testing.T) {
	assertT := assert.New(t)

	// Reference values of the truncated explicit formula; exact
	// counts are pi(1e4)=1229, pi(1e5)=9592, pi(1e6)=78498
	assertT.InDelta(1247.0337996658207, CountPrimes(1e4, ZetaZeros), 1e-7)
	assertT.InDelta(9611.997727507822, CountPrimes(1e5, ZetaZeros), 1e-6)
	assertT.InDelta(78423.02079305467, CountPrimes(1e6, ZetaZeros), 1e-5)
	assertT.InDelta(149135.83011352117, CountPrimes(2e6, ZetaZeros), 1e-5)
}

func TestCountIsFinite(t *testing.T) {
	assertT := assert.New(t)

	for x := 2.0; x < 1e8; x *= 1.17 {
		count := CountPrimes(x, ZetaZeros)
		assertT.False(math.IsNaN(count), "NaN at x=%g", x)
		assertT.False(math.IsInf(count, 0), "Inf at x=%g", x)
	}
}

func TestCountDecadeGrowth(t *testing.T) {
	assertT := assert.New(t)

	for x := 1000.0; x <= 1e7; x *= 10 {
		assertT.Greater(CountPrimes(10*x, ZetaZeros), 3*CountPrimes(x, ZetaZeros))
	}
}

func TestCountBelowDomain(t *testing.T) {
	assertT := assert.New(t)

	assertT.Equal(0.0, CountPrimes(2, ZetaZeros))
	assertT.Equal(0.0, CountPrimes(0, ZetaZeros))
	assertT.Equal(0.0, CountPrimes(-5, ZetaZeros))
}

func TestCountFewerZeros(t *testing.T) {
	assertT := assert.New(t)

	// Truncating the zero sum changes the fine structure only
	assertT.InDelta(78400.36967280474, CountPrimes(1e6, Zeros(5)), 1e-5)
	assertT.InEpsilon(CountPrimes(1e6, ZetaZeros), CountPrimes(1e6, Zeros(5)), 0.01)
}

func TestCountSkipsBadOrdinates(t *testing.T) {
	assertT := assert.New(t)

	withJunk := append([]float64{-3, 0}, ZetaZeros...)
	assertT.Equal(CountPrimes(1e5, ZetaZeros), CountPrimes(1e5, withJunk))
}
