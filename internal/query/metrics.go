package query

import "github.com/prometheus/client_golang/prometheus"

var (
	metricsRegistered = false
	smokeTests        = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_query_smoke_tests_total",
			Help: "Chamadas de teste ao endpoint de consulta, por resultado",
		},
		[]string{"result"},
	)
)

func registerMetrics() {
	if metricsRegistered {
		return
	}
	metricsRegistered = true

	prometheus.MustRegister(smokeTests)
}
