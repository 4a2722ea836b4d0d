package zetaprime

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/ericlagergren/decimal"
)

// Latency statistics for running one estimation workload
type EvalStats struct {
	Count     int             `json,yaml:"count"`
	TotalTime time.Duration   `json,yaml:"sum_time"`
	AvgTime   time.Duration   `json,yaml:"avg_time"`
	MinTime   time.Duration   `json,yaml:"min_time"`
	MaxTime   time.Duration   `json,yaml:"max_time"`
	MedTime   time.Duration   `json,yaml:"med_time"`
	StdDev    time.Duration   `json,yaml:"stdev_time"`
	Fails     int             `json,yaml:"fails"`
	Values    []time.Duration `json,yaml:"times"`
}

// A single estimator invocation to be timed; a non-nil error counts as
// a failure in the stats.
type EvalTask func() error

type evalFixture struct {
	sema      *chan struct{}  // concurrency throttle - shared
	waitGroup *sync.WaitGroup // completion flag - shared
	lock      sync.Mutex      // `runtimes` guard
	task      EvalTask
	runtimes  []time.Duration
	fails     int
}

// No data struct
var ND = struct{}{}

// RunEvals runs estimation workloads concurrently and gathers latency
// statistics per task. The estimator itself is pure, so any number of
// tasks may share one ZetaZeroSet without locking.
//
//   - tasks - workloads to run, scheduled round-robin
//   - totalRuns - total number of invocations (> len(tasks))
//   - concurrent - number of simultaneous invocations (< totalRuns)
func RunEvals(tasks []EvalTask, totalRuns int, concurrent int) []EvalStats {
	waitGroup := new(sync.WaitGroup)
	sema := make(chan struct{}, concurrent)
	fixtures := make([]*evalFixture, len(tasks))
	for i, task := range tasks {
		fixtures[i] = newFixture(task, &sema, waitGroup)
	}

	for i := 0; i < totalRuns; i++ {
		idx := i % len(tasks)
		waitGroup.Add(1)
		go runOneEval(fixtures[idx])
	}

	waitGroup.Wait()

	return collectStats(fixtures)
}

func newFixture(task EvalTask, sema *chan struct{}, waitGroup *sync.WaitGroup) *evalFixture {
	var fixture evalFixture
	fixture.sema = sema
	fixture.waitGroup = waitGroup
	fixture.lock = sync.Mutex{}
	fixture.task = task
	fixture.runtimes = make([]time.Duration, 0)
	return &fixture
}

func runOneEval(fixture *evalFixture) {
	*fixture.sema <- ND
	defer func() { <-*fixture.sema }()
	defer fixture.waitGroup.Done()

	start := time.Now()
	err := fixture.task()
	execTime := time.Since(start)

	fixture.lock.Lock()
	fixture.runtimes = append(fixture.runtimes, execTime)
	if err != nil {
		fixture.fails++
	}
	fixture.lock.Unlock()
}

func collectStats(fixtures []*evalFixture) []EvalStats {
	ret := make([]EvalStats, 0)

	precCtx := decimal.Context128
	for _, fixture := range fixtures {
		sorttimes := make([]time.Duration, len(fixture.runtimes))
		copy(sorttimes, fixture.runtimes)
		sort.Slice(sorttimes, func(i, j int) bool { return sorttimes[i] < sorttimes[j] })

		sum := new(decimal.Big)
		sum2 := new(decimal.Big)
		bigT := new(decimal.Big)
		for _, t := range sorttimes {
			bigT.SetUint64(uint64(t))
			precCtx.Add(sum, sum, bigT)
			precCtx.Add(sum2, sum2, bigT.Mul(bigT, bigT))
		}

		evalCount := len(sorttimes)
		var stats EvalStats
		stats.Count = evalCount
		stats.TotalTime = time.Duration(big2float(sum))
		stats.AvgTime = time.Duration(big2float(sum) / float64(evalCount))
		stats.MinTime = sorttimes[0]
		stats.MedTime = sorttimes[evalCount/2]
		stats.MaxTime = sorttimes[evalCount-1]
		fCount := float64(evalCount)
		stats.StdDev = time.Duration(math.Sqrt(big2float(sum2)/(fCount-1) - big2float(sum)*big2float(sum)/fCount/(fCount-1)))

		stats.Fails = fixture.fails
		stats.Values = fixture.runtimes

		ret = append(ret, stats)
	}
	return ret
}

func big2float(val *decimal.Big) float64 {
	conv, _ := val.Float64()
	return conv
}

// Aid fo unexpected errors without recovery
func AssertNoErr[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Recover from error - assume default value
func AssumeOnErr[T any](f func() (T, error), defVal T) T {
	val, err := f()
	if err != nil {
		print(err.Error())
		return defVal
	}
	return val
}
