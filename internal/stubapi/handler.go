package stubapi

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
)

type telemetryRequest struct {
	DeviceID    string   `json:"deviceId" binding:"required"`
	Timestamp   string   `json:"timestamp" binding:"required"`
	EnergyWatts *float64 `json:"energyWatts" binding:"required"`
}

type queryRequest struct {
	Query string `json:"query" binding:"required"`
}

type stubHandler struct {
	mu      sync.Mutex
	names   map[string]string
	totals  map[string]float64
	counted int
}

type StubHandler interface {
	Telemetry() gin.HandlerFunc
	ChatQuery() gin.HandlerFunc
}

// NewStubHandler cria os handlers do stub. Com catálogo vazio qualquer
// deviceId é aceito; caso contrário ids desconhecidos recebem 404.
func NewStubHandler(catalog []device.Profile) StubHandler {
	h := &stubHandler{
		totals: make(map[string]float64),
	}
	if len(catalog) > 0 {
		h.names = make(map[string]string, len(catalog))
		for _, p := range catalog {
			h.names[p.ID] = p.Name()
		}
	}
	registerMetrics()
	return h
}

// Telemetry recebe uma leitura no formato {deviceId, timestamp, energyWatts}
// e responde 201 quando ela é aceita.
func (h *stubHandler) Telemetry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req telemetryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(err)
			h.reply(c, http.StatusBadRequest, gin.H{"error": "deviceId, timestamp, and energyWatts are required"})
			return
		}
		if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
			h.reply(c, http.StatusBadRequest, gin.H{"error": "timestamp must be RFC 3339"})
			return
		}
		if *req.EnergyWatts < 0 {
			h.reply(c, http.StatusBadRequest, gin.H{"error": "energyWatts must not be negative"})
			return
		}

		h.mu.Lock()
		if h.names != nil {
			if _, known := h.names[req.DeviceID]; !known {
				h.mu.Unlock()
				h.reply(c, http.StatusNotFound, gin.H{"error": "Device not found"})
				return
			}
		}
		h.totals[req.DeviceID] += *req.EnergyWatts
		h.counted++
		h.mu.Unlock()

		h.reply(c, http.StatusCreated, gin.H{
			"message": "Telemetry data stored successfully",
			"data": gin.H{
				"device_id":    req.DeviceID,
				"timestamp":    req.Timestamp,
				"energy_watts": *req.EnergyWatts,
			},
		})
	}
}

// ChatQuery responde qualquer pergunta com o dispositivo de maior consumo
// recebido até agora.
func (h *stubHandler) ChatQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req queryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
			return
		}
		queriesAnswered.Inc()
		c.JSON(http.StatusOK, gin.H{
			"originalQuery": req.Query,
			"response":      h.topDeviceAnswer(),
		})
	}
}

func (h *stubHandler) reply(c *gin.Context, status int, body gin.H) {
	telemetryReceived.WithLabelValues(strconv.Itoa(status)).Inc()
	c.JSON(status, body)
}

func (h *stubHandler) topDeviceAnswer() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.counted == 0 {
		return "No telemetry received yet"
	}
	var topID string
	var topWatts float64
	for id, watts := range h.totals {
		if topID == "" || watts > topWatts || (watts == topWatts && id < topID) {
			topID, topWatts = id, watts
		}
	}
	name := topID
	if n, ok := h.names[topID]; ok {
		name = n
	}
	return fmt.Sprintf("%s used the most energy (%.2f Wh over %d readings)", name, topWatts/60, h.counted)
}
