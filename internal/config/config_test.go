package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, "http://localhost:3002", cfg.IngestBaseURL)
	assert.Equal(t, "http://localhost:3003", cfg.QueryBaseURL)
	assert.Equal(t, 60*time.Second, cfg.StepInterval)
	assert.Equal(t, 24*time.Hour, cfg.SimulatedDuration)
	assert.Equal(t, 100*time.Millisecond, cfg.ThrottleDelay())
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "Which device used the most energy today?", cfg.SmokeQuery)
	assert.False(t, cfg.SkipQuery)
	assert.Equal(t, "log_simulator.log", cfg.LogFile)
	assert.Equal(t, device.DefaultCatalog(), cfg.Devices)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, 1440, cfg.Steps())
	assert.Equal(t, 7200, cfg.TotalRequests())
	assert.Equal(t, "http://localhost:3002/api/telemetry", cfg.TelemetryURL())
	assert.Equal(t, "http://localhost:3003/api/chat/query", cfg.QueryURL())
}

func TestLoad(t *testing.T) {
	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, New(), cfg)
	})

	t.Run("EnvOverridesDefaults", func(t *testing.T) {
		t.Setenv("INGEST_BASE_URL", "http://ingest.local:8080")
		t.Setenv("SIM_THROTTLE", "0s")
		t.Setenv("SIM_SEED", "42")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://ingest.local:8080", cfg.IngestBaseURL)
		require.NotNil(t, cfg.Throttle)
		assert.Equal(t, time.Duration(0), cfg.ThrottleDelay())
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, "http://ingest.local:8080/api/telemetry", cfg.TelemetryURL())
	})

	t.Run("EnvThrottleForms", func(t *testing.T) {
		tests := []struct {
			raw  string
			want time.Duration
		}{
			{"0s", 0},
			{"0", 0},
			{"50ms", 50 * time.Millisecond},
		}
		for _, tt := range tests {
			t.Run(tt.raw, func(t *testing.T) {
				t.Setenv("SIM_THROTTLE", tt.raw)
				cfg, err := Load("")
				require.NoError(t, err)
				assert.Equal(t, tt.want, cfg.ThrottleDelay())
			})
		}
	})

	t.Run("YAMLFileZeroValues", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "simulator.yaml")
		content := `
throttle: 0s
seed: 0
skipQuery: false
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), cfg.ThrottleDelay())
		assert.Zero(t, cfg.Seed)
		assert.False(t, cfg.SkipQuery)
	})

	t.Run("YAMLFileWithoutThrottleKeepsDefault", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "simulator.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultThrottle, cfg.ThrottleDelay())
		assert.Equal(t, int64(7), cfg.Seed)
	})

	t.Run("YAMLFileWithCustomCatalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "simulator.yaml")
		content := `
queryBaseURL: http://ai.local:3003
simulatedDuration: 1h
devices:
  - id: plug01
    displayName: Smart Plug
    baseLoadWatts: 40
    varianceWatts: 5
    kind: constant
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://ai.local:3003", cfg.QueryBaseURL)
		assert.Equal(t, "http://localhost:3002", cfg.IngestBaseURL)
		require.Len(t, cfg.Devices, 1)
		assert.Equal(t, "Smart Plug", cfg.Devices[0].DisplayName)
		assert.Equal(t, 60, cfg.Steps())
		assert.Equal(t, 60, cfg.TotalRequests())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("InvalidURL", func(t *testing.T) {
		cfg := New()
		cfg.IngestBaseURL = "localhost:3002"
		assert.ErrorContains(t, cfg.Validate(), "ingestBaseURL")
	})

	t.Run("StepLongerThanWindow", func(t *testing.T) {
		cfg := New()
		cfg.StepInterval = 48 * time.Hour
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidStep)
	})

	t.Run("ZeroStep", func(t *testing.T) {
		cfg := New()
		cfg.StepInterval = 0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidStep)
	})

	t.Run("NegativeThrottle", func(t *testing.T) {
		cfg := New().WithThrottle(-time.Millisecond)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidThrottle)
	})

	t.Run("ZeroValueConfig", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.Validate())
		assert.Zero(t, cfg.Steps())
		assert.Equal(t, DefaultThrottle, cfg.ThrottleDelay())
	})

	t.Run("DuplicateDevice", func(t *testing.T) {
		cfg := New()
		cfg.Devices = append(cfg.Devices, cfg.Devices[0])
		assert.ErrorIs(t, cfg.Validate(), device.ErrDuplicateID)
	})
}
