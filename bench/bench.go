// Package bench runs the estimator against a fixed table of known
// primes and reports per-row and aggregate errors.
package bench

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ericlagergren/decimal"
	"github.com/lostdemeter/zetaprime"
)

// A Case pairs a prime index with the actual n-th prime.
type Case struct {
	N      int
	Actual int
}

// Row is the outcome of estimating one case. A failed estimation
// keeps its error here instead of aborting the batch.
type Row struct {
	Case
	Estimate    float64
	AbsError    float64
	RelErrorPct float64
	Err         error
}

// Known (n, n-th prime) pairs used for accuracy reporting
var DefaultCases = []Case{
	{15000, 163841},
	{25000, 287117},
	{50000, 611953},
	{75000, 951161},
	{100000, 1299709},
	{200000, 2750159},
}

const colWidth = 12

var (
	precCtx = decimal.Context128

	// Function substitution for unit tests
	estimateFn = zetaprime.NthPrime
)

// Run estimates every case with the given configuration. Rows come
// back in input order; rows whose estimation failed carry Err and
// zero-valued numbers.
func Run(cases []Case, cfg zetaprime.Config) []Row {
	rows := make([]Row, 0, len(cases))
	for _, c := range cases {
		row := Row{Case: c}
		est, err := estimateFn(c.N, zetaprime.ZetaZeros, cfg)
		if err != nil {
			row.Err = err
		} else {
			row.Estimate = est.Value
			row.AbsError = math.Abs(est.Value - float64(c.Actual))
			row.RelErrorPct = 100 * row.AbsError / float64(c.Actual)
		}
		rows = append(rows, row)
	}
	return rows
}

// AverageRelError computes the mean of per-row percentage errors,
// skipping failed rows. NaN when no row succeeded.
func AverageRelError(rows []Row) float64 {
	sum := new(decimal.Big)
	val := new(decimal.Big)
	count := 0
	for _, row := range rows {
		if row.Err != nil {
			continue
		}
		val.SetFloat64(row.RelErrorPct)
		precCtx.Add(sum, sum, val)
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	conv, _ := sum.Float64()
	return conv / float64(count)
}

// Prints the results table with a trailing average line
//
//nolint:errcheck
func PrintTable(sink *os.File, rows []Row) {
	rule := strings.Repeat("-", 5*colWidth)

	fmt.Fprintln(sink, "Benchmark Results")
	fmt.Fprintln(sink, rule)
	fmt.Fprintf(sink, "%-*s %-*s %-*s %-*s %-*s\n", colWidth-2, "n", colWidth, "Actual", colWidth, "Estimate", colWidth, "Abs Error", colWidth, "Rel Error (%)")
	fmt.Fprintln(sink, rule)
	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(sink, "%-*d %-*d %-*s %s\n", colWidth-2, row.N, colWidth, row.Actual, colWidth, "ERROR", row.Err)
			continue
		}
		fmt.Fprintf(sink, "%-*d %-*d %-*.0f %-*.0f %-*.3f\n", colWidth-2, row.N, colWidth, row.Actual, colWidth, row.Estimate, colWidth, row.AbsError, colWidth, row.RelErrorPct)
	}
	fmt.Fprintln(sink, rule)
	fmt.Fprintf(sink, "Average relative error: %.3f%%\n", AverageRelError(rows))
}
