// Prints the accuracy benchmark table for the n-th prime estimator.
package main

import (
	"os"

	"github.com/lostdemeter/zetaprime"
	"github.com/lostdemeter/zetaprime/bench"
)

func main() {
	rows := bench.Run(bench.DefaultCases, zetaprime.DefaultConfig())
	bench.PrintTable(os.Stdout, rows)
}
