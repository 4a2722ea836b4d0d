package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lostdemeter/zetaprime"
)

var (
	stopChan = make(chan struct{}, 1)
)

func startGin(port int) {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery()) // no debug logging
	zetaprime.AssertNoErr(zetaprime.ND, engine.SetTrustedProxies(nil))
	engine.POST("/", estimate4Gin)

	logger.Info().Msg("-- Starting server...")
	go func() { zetaprime.AssertNoErr(zetaprime.ND, engine.Run(fmt.Sprintf(":%d", port))) }()

	<-stopChan
	os.Exit(0)
}

func estimate4Gin(ctx *gin.Context) {
	request := new(PrimeRequest)

	zetaprime.AssertNoErr(zetaprime.ND, ctx.BindJSON(&request))

	if request.N == -1 {
		logger.Info().Msg("-- Stopping server...")
		ctx.JSON(http.StatusOK, PrimeResponse{Converged: true})
		stopChan <- zetaprime.ND
		return
	}

	cfg := zetaprime.DefaultConfig()
	if request.Zeros > 0 {
		cfg.NumZeros = request.Zeros
	}

	est, err := zetaprime.NthPrime(request.N, zetaprime.ZetaZeros, cfg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, PrimeResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, PrimeResponse{Estimate: est.Value, Converged: est.Converged})
}
