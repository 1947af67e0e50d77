package stubapi

import "github.com/prometheus/client_golang/prometheus"

var (
	metricsRegistered = false
	telemetryReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stubapi_telemetry_received_total",
			Help: "Leituras recebidas pelo stub de ingestão, por status de resposta",
		},
		[]string{"status"},
	)
	queriesAnswered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stubapi_queries_answered_total",
			Help: "Perguntas respondidas pelo stub de consulta",
		},
	)
)

func registerMetrics() {
	if metricsRegistered {
		return
	}
	metricsRegistered = true

	prometheus.MustRegister(
		telemetryReceived,
		queriesAnswered,
	)
}
