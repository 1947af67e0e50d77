package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/arloliu/fuda"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
)

// Config reúne tudo que o simulador precisa para uma execução.
// Os defaults reproduzem o ambiente local de demonstração.
type Config struct {
	// Endpoints dos serviços externos
	IngestBaseURL string `yaml:"ingestBaseURL" default:"http://localhost:3002" env:"INGEST_BASE_URL" validate:"required"`
	QueryBaseURL  string `yaml:"queryBaseURL" default:"http://localhost:3003" env:"QUERY_BASE_URL" validate:"required"`

	// Janela simulada
	StepInterval      time.Duration  `yaml:"stepInterval" default:"60s" env:"SIM_STEP"`
	SimulatedDuration time.Duration  `yaml:"simulatedDuration" default:"24h" env:"SIM_DURATION"`
	// nil usa DefaultThrottle; 0 desliga a pausa
	Throttle          *time.Duration `yaml:"throttle" default:"100ms" env:"SIM_THROTTLE"`
	HTTPTimeout       time.Duration  `yaml:"httpTimeout" default:"5s" env:"SIM_HTTP_TIMEOUT"`

	// Seed 0 usa o relógio
	Seed int64 `yaml:"seed" env:"SIM_SEED"`

	SmokeQuery string `yaml:"smokeQuery" default:"Which device used the most energy today?" env:"SIM_SMOKE_QUERY"`
	SkipQuery  bool   `yaml:"skipQuery" env:"SIM_SKIP_QUERY"`

	MetricsAddr string `yaml:"metricsAddr" env:"SIM_METRICS_ADDR"`
	LogFile     string `yaml:"logFile" default:"log_simulator.log" env:"SIM_LOG_FILE"`

	Devices []device.Profile `yaml:"devices"`
}

const DefaultThrottle = 100 * time.Millisecond

var (
	ErrInvalidStep     = errors.New("stepInterval deve ser positivo e menor que simulatedDuration")
	ErrInvalidThrottle = errors.New("throttle não pode ser negativo")
)

// New devolve a configuração com os defaults aplicados e o catálogo padrão.
func New() *Config {
	cfg := &Config{}
	_ = fuda.SetDefaults(cfg)
	cfg.Devices = device.DefaultCatalog()
	return cfg
}

// Load monta a configuração a partir dos defaults, do arquivo opcional
// (YAML ou JSON) e das variáveis de ambiente, nessa ordem de precedência.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		// fuda.LoadFile aplica defaults, arquivo, env e validação
		if err := fuda.LoadFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("falha ao carregar configuração %s: %w", path, err)
		}
	} else {
		if err := fuda.SetDefaults(&cfg); err != nil {
			return nil, fmt.Errorf("falha ao aplicar defaults: %w", err)
		}
		if err := fuda.LoadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("falha ao ler variáveis de ambiente: %w", err)
		}
	}

	if len(cfg.Devices) == 0 {
		cfg.Devices = device.DefaultCatalog()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for name, raw := range map[string]string{"ingestBaseURL": c.IngestBaseURL, "queryBaseURL": c.QueryBaseURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s inválida: %q", name, raw)
		}
	}
	if c.StepInterval <= 0 || c.StepInterval > c.SimulatedDuration {
		return ErrInvalidStep
	}
	if c.ThrottleDelay() < 0 {
		return ErrInvalidThrottle
	}
	if err := device.ValidateCatalog(c.Devices); err != nil {
		return fmt.Errorf("catálogo inválido: %w", err)
	}
	return nil
}

// ThrottleDelay é a pausa entre minutos simulados; 0 desliga a pausa.
func (c *Config) ThrottleDelay() time.Duration {
	if c.Throttle == nil {
		return DefaultThrottle
	}
	return *c.Throttle
}

// WithThrottle fixa a pausa entre minutos simulados.
func (c *Config) WithThrottle(d time.Duration) *Config {
	c.Throttle = &d
	return c
}

// Steps é a quantidade de minutos simulados (1440 com os defaults).
func (c *Config) Steps() int {
	if c.StepInterval <= 0 {
		return 0
	}
	return int(c.SimulatedDuration / c.StepInterval)
}

// TotalRequests é o total planejado de envios: passos x dispositivos.
func (c *Config) TotalRequests() int {
	return c.Steps() * len(c.Devices)
}

func (c *Config) TelemetryURL() string {
	return joinURL(c.IngestBaseURL, "/api/telemetry")
}

func (c *Config) QueryURL() string {
	return joinURL(c.QueryBaseURL, "/api/chat/query")
}

func joinURL(base, path string) string {
	u, err := url.JoinPath(base, path)
	if err != nil {
		return base + path
	}
	return u
}
