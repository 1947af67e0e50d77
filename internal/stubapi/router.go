package stubapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter expõe os contratos de ingestão e consulta usados pelo simulador.
func NewRouter(h StubHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/api/telemetry", h.Telemetry())
	r.POST("/api/chat/query", h.ChatQuery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// NewServers monta um http.Server por porta, todos sobre o mesmo handler.
// O engine é convertido uma única vez, antes de qualquer servidor subir.
func NewServers(r *gin.Engine, ports ...string) []*http.Server {
	handler := r.Handler()
	servers := make([]*http.Server, 0, len(ports))
	for _, port := range ports {
		servers = append(servers, &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
		})
	}
	return servers
}
