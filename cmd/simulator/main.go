package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/clients"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/config"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/query"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/telemetry"
)

var (
	configPath  = flag.String("config", os.Getenv("SIM_CONFIG"), "arquivo de configuração YAML ou JSON (opcional)")
	projectRoot string
)

func init() {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		fmt.Println("falha ao obter o caminho do arquivo atual")
		os.Exit(1)
	}
	projectRoot = filepath.Dir(filepath.Dir(filepath.Dir(filename)))
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Erro ao carregar a configuração: %v\n", err)
		os.Exit(1)
	}

	logFile, _ := clients.InitLog(cfg.LogFile, projectRoot)
	defer logFile.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	simulator, err := telemetry.NewSimulatorService(cfg)
	if err != nil {
		log.Error().Msgf("Erro ao criar o simulador: %v", err)
		logFile.Close()
		os.Exit(1)
	}
	result := simulator.Run(ctx)
	telemetry.Report(os.Stdout, result)

	if cfg.SkipQuery || result.Interrupted {
		return
	}
	query.SmokeTest(query.NewQueryService(cfg.QueryURL(), cfg.HTTPTimeout), cfg.SmokeQuery, os.Stdout)
}

func serveMetrics(addr string) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Info().Msgf("Métricas disponíveis em %s/metrics", addr)
	if err := r.Run(addr); err != nil {
		log.Error().Msgf("Erro ao iniciar o servidor de métricas: %v", err)
	}
}
