package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bandalloc "github.com/Anoushka222/DAA-Project"
	"github.com/Anoushka222/DAA-Project/httpapi"
	"github.com/Anoushka222/DAA-Project/internal/logging"
	"github.com/Anoushka222/DAA-Project/metrics"
)

type cmdServe struct {
	Address     string `long:"address" default:":8080" description:"Listen address"`
	MaxCapacity int64  `long:"max-capacity" description:"Capacity bound for the DP optimizer (default 2^20)"`
	MaxDemands  int    `long:"max-demands" description:"Demand-count bound for the backtracking optimizer (default 30)"`
}

func (cmd *cmdServe) Execute([]string) error {
	logger := logging.NewSlogDefault()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cfg := bandalloc.Config{
		MaxCapacity: cmd.MaxCapacity,
		MaxDemands:  cmd.MaxDemands,
	}
	engine, err := bandalloc.New(&cfg,
		bandalloc.WithLogger(logger),
		bandalloc.WithMetrics(metrics.NewPrometheus(registry)),
	)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/allocate", httpapi.NewHandler(engine, logger))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              cmd.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("serving allocation API", "address", cmd.Address)

	return server.ListenAndServe()
}
