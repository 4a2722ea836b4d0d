package zetaprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cube(x float64) float64 { return x * x * x }

func TestInvertCube(t *testing.T) {
	assertT := assert.New(t)

	root, converged := InvertMonotone(cube, 27, 0, 10, 1e-9, 200)
	assertT.True(converged)
	assertT.InDelta(3.0, root, 1e-9)
}

func TestInvertLinear(t *testing.T) {
	assertT := assert.New(t)

	root, converged := InvertMonotone(func(x float64) float64 { return 2*x + 1 }, 8, -100, 100, 1e-6, 100)
	assertT.True(converged)
	assertT.InDelta(3.5, root, 1e-6)
}

func TestInvertIterationCap(t *testing.T) {
	assertT := assert.New(t)

	root, converged := InvertMonotone(cube, 27, 0, 1e6, 1e-9, 10)
	assertT.False(converged)
	// Ten halvings of a 1e6 interval cannot reach 1e-9, but the
	// midpoint still heads toward the root
	assertT.InDelta(3.0, root, 1e6/1024.0)
}

func TestInvertTightBracket(t *testing.T) {
	assertT := assert.New(t)

	// Bracket already within tolerance; no f evaluations needed
	root, converged := InvertMonotone(func(x float64) float64 { panic("unused") }, 1, 3, 3.2, 0.5, 40)
	assertT.True(converged)
	assertT.InDelta(3.1, root, 1e-12)
}
