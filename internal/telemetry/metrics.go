package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

var (
	metricsRegistered = false
	readingsSent      = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_readings_sent_total",
			Help: "Total de leituras enviadas ao ingestor, por resultado",
		},
		[]string{"result"},
	)
	postDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "simulator_post_duration_seconds",
			Help:    "Duração de cada POST de telemetria",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		},
	)
	simulatedMinutes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulator_simulated_minutes_total",
			Help: "Minutos simulados processados",
		},
	)
)

func registerMetrics() {
	if metricsRegistered {
		return
	}
	metricsRegistered = true

	prometheus.MustRegister(
		readingsSent,
		postDuration,
		simulatedMinutes,
	)
}
