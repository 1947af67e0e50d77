package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/clients"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/stubapi"
)

var (
	INGEST_PORT = envOr("STUB_INGEST_PORT", "3002")
	QUERY_PORT  = envOr("STUB_QUERY_PORT", "3003")
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func init() {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		fmt.Println("falha ao obter o caminho do arquivo atual")
		os.Exit(1)
	}
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))
	clients.InitLog("log_stubapi.log", projectRoot)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := stubapi.NewRouter(stubapi.NewStubHandler(device.DefaultCatalog()))

	// Os dois contratos ficam no mesmo router, servido nas portas de cada serviço.
	servers := stubapi.NewServers(r, INGEST_PORT, QUERY_PORT)
	for _, srv := range servers {
		go func(srv *http.Server) {
			log.Info().Msgf("Stub rodando em %s e métricas em %s/metrics", srv.Addr, srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Msgf("Erro ao iniciar o servidor em %s: %v", srv.Addr, err)
				os.Exit(1)
			}
		}(srv)
	}

	<-ctx.Done()
	log.Info().Msg("Recebido sinal de parada, finalizando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Msgf("Erro ao finalizar o servidor em %s: %v", srv.Addr, err)
		}
	}
}
