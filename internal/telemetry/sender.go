package telemetry

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/clients"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/reading"
)

// sendTelemetry faz um único POST da leitura e classifica o resultado.
// Nenhuma falha é propagada: tudo é registrado no log e contado.
func sendTelemetry(httpClient clients.HTTPClient, url string, r *reading.Reading, deviceName string, logger zerolog.Logger) string {
	jsonData, err := marshalFunc(*r)
	if err != nil {
		logger.Error().Msgf("Erro ao codificar JSON para %s: %v", deviceName, err)
		readingsSent.WithLabelValues(resultFailed).Inc()
		return resultFailed
	}

	start := time.Now()
	resp, err := httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	postDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error().Str("device", deviceName).Msgf("Requisição falhou para %s: %v", deviceName, err)
		readingsSent.WithLabelValues(resultFailed).Inc()
		return resultFailed
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusCreated {
		logger.Error().Str("device", deviceName).Int("status", resp.StatusCode).
			Msgf("Erro para %s: %d", deviceName, resp.StatusCode)
		readingsSent.WithLabelValues(resultRejected).Inc()
		return resultRejected
	}

	logger.Debug().Msgf("Leitura de %s em %s enviada", deviceName, r.Timestamp)
	readingsSent.WithLabelValues(resultSuccess).Inc()
	return resultSuccess
}
