package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/clients"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/config"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/reading"
)

type SimulatorService interface {
	// Executa o dia simulado completo e devolve a contagem de envios.
	// Só retorna antes do fim se o contexto for cancelado.
	Run(ctx context.Context) RunResult
}

// RunResult acumula os envios de uma execução.
type RunResult struct {
	RunID       string
	StartOfDay  time.Time
	Total       int
	Attempted   int
	Successful  int
	Rejected    int
	Failed      int
	Interrupted bool
}

type simulatorService struct {
	catalog      []device.Profile
	telemetryURL string
	steps        int
	total        int
	stepInterval time.Duration
	throttle     time.Duration
	httpClient   clients.HTTPClient
	rng          reading.RandSource
}

type ServiceOptions func(*simulatorService)

// WithCustomHTTPClient permite substituir o cliente HTTP (ex.: mocks em testes)
func WithCustomHTTPClient(client clients.HTTPClient) ServiceOptions {
	return func(s *simulatorService) {
		s.httpClient = client
	}
}

// WithRandSource fixa a fonte aleatória, tornando a sequência reprodutível
func WithRandSource(rng reading.RandSource) ServiceOptions {
	return func(s *simulatorService) {
		s.rng = rng
	}
}

var ErrNilConfig = errors.New("configuração do simulador ausente")

var (
	marshalFunc = json.Marshal
	uuidFunc    = func() string { return uuid.New().String() }
	nowFunc     = time.Now
)

// NewSimulatorService cria o simulador a partir da configuração.
// O catálogo é copiado e não muda durante a execução.
// Com Seed 0 a fonte aleatória é semeada pelo relógio.
func NewSimulatorService(cfg *config.Config, opts ...ServiceOptions) (SimulatorService, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida para o simulador: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	catalog := make([]device.Profile, len(cfg.Devices))
	copy(catalog, cfg.Devices)

	s := &simulatorService{
		catalog:      catalog,
		telemetryURL: cfg.TelemetryURL(),
		steps:        cfg.Steps(),
		total:        cfg.TotalRequests(),
		stepInterval: cfg.StepInterval,
		throttle:     cfg.ThrottleDelay(),
		httpClient:   clients.NewHTTPClient(cfg.HTTPTimeout),
		rng:          rand.New(rand.NewSource(seed)),
	}

	for _, opt := range opts {
		opt(s)
	}

	registerMetrics()
	return s, nil
}

// StartOfDay devolve a meia-noite UTC do dia de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *simulatorService) Run(ctx context.Context) RunResult {
	result := RunResult{
		RunID:      uuidFunc(),
		StartOfDay: StartOfDay(nowFunc()),
		Total:      s.total,
	}
	logger := log.With().Str("run_id", result.RunID).Logger()

	logger.Info().Strs("devices", device.IDs(s.catalog)).
		Msgf("Iniciando simulação de telemetria para %d dispositivos", len(s.catalog))
	logger.Info().Msgf("Gerando %d leituras por dispositivo (%d no total)", s.steps, result.Total)
	logger.Info().Msgf("Endpoint de destino: %s", s.telemetryURL)

	stepsPerHour := int(time.Hour / s.stepInterval)
	if stepsPerHour < 1 {
		stepsPerHour = 1
	}
	hours := (s.steps + stepsPerHour - 1) / stepsPerHour

	for i := range s.steps {
		offset := time.Duration(i) * s.stepInterval
		at := result.StartOfDay.Add(offset)

		for _, p := range s.catalog {
			if ctx.Err() != nil {
				result.Interrupted = true
				logger.Warn().Msgf("Simulação interrompida em %s", reading.FormatTimestamp(at))
				return result
			}
			s.sendReading(&result, logger, p, at, int64(offset/time.Second))
		}
		simulatedMinutes.Inc()

		if (i+1)%stepsPerHour == 0 {
			logger.Info().Msgf("Hora %d/%d concluída...", (i+1)/stepsPerHour, hours)
		}

		s.pause(ctx)
	}

	logger.Info().Msgf("Envio finalizado: %d/%d leituras aceitas", result.Successful, result.Total)
	return result
}

// pause espera o throttle entre minutos simulados, sem segurar um cancelamento.
func (s *simulatorService) pause(ctx context.Context) {
	if s.throttle <= 0 {
		return
	}
	timer := time.NewTimer(s.throttle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *simulatorService) sendReading(result *RunResult, logger zerolog.Logger, p device.Profile, at time.Time, offsetSeconds int64) {
	result.Attempted++

	watts, err := reading.Generate(p, offsetSeconds, s.rng)
	if err != nil {
		logger.Error().Msgf("Erro ao gerar leitura para %s: %v", p.Name(), err)
		result.Failed++
		readingsSent.WithLabelValues(resultFailed).Inc()
		return
	}

	r, err := reading.NewReading(p.ID, at, watts)
	if err != nil {
		logger.Error().Msgf("Erro ao montar leitura para %s: %v", p.Name(), err)
		result.Failed++
		readingsSent.WithLabelValues(resultFailed).Inc()
		return
	}

	switch sendTelemetry(s.httpClient, s.telemetryURL, r, p.Name(), logger) {
	case resultSuccess:
		result.Successful++
	case resultRejected:
		result.Rejected++
	default:
		result.Failed++
	}
}
