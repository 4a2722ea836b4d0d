package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"

	"os"
	"time"

	"github.com/aknopov/fancylogger"
	"github.com/lostdemeter/zetaprime"
)

const (
	Port      = 8080
	Host      = "localhost"
	WaitSleep = 1 * time.Second
)

type PrimeRequest struct {
	N     int `json:"n"`
	Zeros int `json:"zeros,omitempty"`
}

type PrimeResponse struct {
	Estimate  float64 `json:"estimate"`
	Converged bool    `json:"converged"`
	Error     string  `json:"error,omitempty"`
}

var (
	logger  = fancylogger.NewLogger(os.Stdout, fancylogger.LiteFg)
	quitReq = zetaprime.AssertNoErr(json.Marshal(PrimeRequest{N: -1}))
)

func main() {

	primeIdx := flag.Int("n", 100000, "prime index to estimate")
	concur := flag.Int("c", 10, "concurrent requests")
	totalRuns := flag.Int("t", 500, "total requests")
	flag.Parse()

	requestUrl := fmt.Sprintf("http://%s:%d", Host, Port)

	// Full zero set vs a short one - NumZeros is the cost knob
	fullReq := zetaprime.AssertNoErr(json.Marshal(PrimeRequest{N: *primeIdx, Zeros: len(zetaprime.ZetaZeros)}))
	shortReq := zetaprime.AssertNoErr(json.Marshal(PrimeRequest{N: *primeIdx, Zeros: 5}))
	fullTask := func() error { return sendOneRequest(requestUrl, fullReq) }
	shortTask := func() error { return sendOneRequest(requestUrl, shortReq) }

	waitServer(requestUrl, 5*time.Minute)

	startTime := time.Now()
	stats := zetaprime.RunEvals([]zetaprime.EvalTask{fullTask, shortTask}, *totalRuns, *concur)
	elapsedTime := time.Since(startTime)

	//nolint:errcheck
	sendOneRequest(requestUrl, quitReq)

	logger.Info().Msgf("Test finished for n=%d:", *primeIdx)
	logger.Info().Int("  num concur", *concur).Send()
	logger.Info().Dur("  duration", elapsedTime).Send()
	logStats("20 zeros", &stats[0])
	logStats("5 zeros", &stats[1])

	tRes, err := zetaprime.WelchTTest(durs2floats(stats[0].Values), durs2floats(stats[1].Values), zetaprime.LocationGreater)
	if err != nil {
		logger.Error().Msgf("t-test failed: %v", err)
		os.Exit(1)
	}
	logger.Info().Float64("p-value (20 zeros slower)", tRes.P).Send()
}

func logStats(name string, stats *zetaprime.EvalStats) {
	logger.Info().Msgf("Statistics for %s:", name)
	logger.Info().Int("  num requests", stats.Count).Send()
	logger.Info().Int("  num failures", stats.Fails).Send()
	logger.Info().Dur("  max", stats.MaxTime).Send()
	logger.Info().Dur("  med", stats.MedTime).Send()
	logger.Info().Dur("  min", stats.MinTime).Send()
	logger.Info().Dur("  avg", stats.AvgTime).Send()
	logger.Info().Dur("  stdev", stats.StdDev).Send()
}

func durs2floats(durs []time.Duration) []float64 {
	vals := make([]float64, len(durs))
	for i, d := range durs {
		vals[i] = float64(d) / float64(time.Millisecond)
	}
	return vals
}

func sendOneRequest(url string, jsonString []byte) error {
	bodyReader := bytes.NewReader(jsonString)
	req, err := http.NewRequest(http.MethodPost, url, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}

	respRaw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var primeResp PrimeResponse
	err = json.Unmarshal(respRaw, &primeResp)
	if err != nil {
		return err
	}
	if primeResp.Error != "" {
		return fmt.Errorf("estimation failed: %s", primeResp.Error)
	}

	return nil
}

func waitServer(url string, timeout time.Duration) {
	logger.Debug().Msg("Waiting for server ...")
	count := timeout / WaitSleep
	req, _ := http.NewRequest(http.MethodHead, url, nil)

	for i := time.Duration(0); i < count; i++ {
		resp, err := http.DefaultClient.Do(req)
		if err == nil && resp != nil {
			logger.Debug().Msg("Endpoint is open now")
			return
		}
		time.Sleep(WaitSleep)
	}
	logger.Error().Str("url", url).Dur("wait", timeout).Msg("Connection timed-out")
	os.Exit(1)
}
