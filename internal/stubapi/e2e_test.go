package stubapi

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sheharzad-developer/smart-energy-monitor/internal/config"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/query"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorAgainstStub(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewStubHandler(device.DefaultCatalog())))
	defer srv.Close()

	cfg := config.New()
	cfg.IngestBaseURL = srv.URL
	cfg.QueryBaseURL = srv.URL
	cfg.SimulatedDuration = 12 * time.Hour
	cfg.WithThrottle(0)
	cfg.Seed = 11

	simulator, err := telemetry.NewSimulatorService(cfg)
	require.NoError(t, err)
	result := simulator.Run(context.Background())
	assert.Equal(t, 720*5, result.Total)
	assert.Equal(t, result.Total, result.Successful)

	var out bytes.Buffer
	telemetry.Report(&out, result)
	assert.Contains(t, out.String(), "3600/3600")

	ok := query.SmokeTest(query.NewQueryService(cfg.QueryURL(), cfg.HTTPTimeout), cfg.SmokeQuery, &out)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Resposta da IA: AC used the most energy")
	assert.Contains(t, out.String(), "over 3600 readings")
}

func TestSimulatorAgainstStubWithUnknownDevice(t *testing.T) {
	// O stub só conhece o catálogo padrão; um dispositivo extra é rejeitado com 404.
	srv := httptest.NewServer(NewRouter(NewStubHandler(device.DefaultCatalog())))
	defer srv.Close()

	cfg := config.New()
	cfg.IngestBaseURL = srv.URL
	cfg.SimulatedDuration = time.Hour
	cfg.WithThrottle(0)
	cfg.Devices = append(cfg.Devices, device.Profile{ID: "dev006", DisplayName: "Dryer", BaseLoadWatts: 900, VarianceWatts: 100, Kind: device.KindConstant})

	simulator, err := telemetry.NewSimulatorService(cfg)
	require.NoError(t, err)
	result := simulator.Run(context.Background())
	assert.Equal(t, 360, result.Attempted)
	assert.Equal(t, 300, result.Successful)
	assert.Equal(t, 60, result.Rejected)
}
