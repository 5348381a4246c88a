package grpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schemeWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finance_scheme_writes_total",
		Help: "Scheme write operations that completed successfully.",
	}, []string{"operation"})

	simulationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finance_scheme_simulations_total",
		Help: "Scheme simulations that completed successfully.",
	})
)
