package zetaprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	vals1 = []float64{2, 1, 3, 4}
	vals2 = []float64{6, 5, 7, 9}
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

func checkWelch(t *testing.T, want, got *TTestResult) {
	t.Helper()
	if want.N1 != got.N1 || want.N2 != got.N2 ||
		!aeq(want.T, got.T) || !aeq(want.DoF, got.DoF) ||
		want.AltHypothesis != got.AltHypothesis ||
		!aeq(want.P, got.P) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestWelchTTest(t *testing.T) {
	want := &TTestResult{N1: 4, N2: 4, T: -3.9703446152237674, DoF: 5.584615384615385}

	want.AltHypothesis = LocationLess
	want.P = 0.004256431565689112
	got, _ := WelchTTest(vals1, vals2, want.AltHypothesis)
	checkWelch(t, want, got)

	want.AltHypothesis = LocationDiffers
	want.P = 0.0085128631313781695
	got, _ = WelchTTest(vals1, vals2, want.AltHypothesis)
	checkWelch(t, want, got)

	want.AltHypothesis = LocationGreater
	want.P = 0.9957435684343109
	got, _ = WelchTTest(vals1, vals2, want.AltHypothesis)
	checkWelch(t, want, got)
}

func TestWelchIdenticalSamples(t *testing.T) {
	assertT := assert.New(t)

	res, err := WelchTTest(vals1, vals1, LocationDiffers)
	assertT.NoError(err)
	assertT.InDelta(0.0, res.T, 1e-12)
	assertT.InDelta(1.0, res.P, 1e-12)
}

func TestWelchFailures(t *testing.T) {
	assertT := assert.New(t)

	_, err := WelchTTest([]float64{1}, vals2, LocationDiffers)
	assertT.ErrorIs(err, ErrSampleSize)
	_, err = WelchTTest(vals1, []float64{1}, LocationDiffers)
	assertT.ErrorIs(err, ErrSampleSize)
	_, err = WelchTTest([]float64{2, 2, 2}, []float64{5, 5, 5}, LocationDiffers)
	assertT.ErrorIs(err, ErrZeroVariance)
}
