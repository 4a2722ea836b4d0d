package main

import (
	"flag"
	"os"

	"github.com/aknopov/fancylogger"
)

type PrimeRequest struct {
	// Prime index; -1 requests server shutdown
	N int `json:"n"`
	// Optional number of zeta zeros to use (default: all)
	Zeros int `json:"zeros,omitempty"`
}

type PrimeResponse struct {
	Estimate  float64 `json:"estimate"`
	Converged bool    `json:"converged"`
	Error     string  `json:"error,omitempty"`
}

const (
	Port = 8080
)

var (
	logger = fancylogger.NewLogger(os.Stderr, fancylogger.LiteFg)
)

func main() {
	port := flag.Int("port", Port, "listening port")
	flag.Parse()
	logger.Info().Msgf("Using port=%d", *port)

	startGin(*port)
}
