package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

type metricsSource interface {
	Handler() http.Handler
	Snapshot() models.SystemMetrics
}

type storageProbe interface {
	Degraded() bool
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics metricsSource
	storage storageProbe
}

// NewMetricsHandler constructs a metrics handler. storage may be nil.
func NewMetricsHandler(metrics metricsSource, storage storageProbe) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, storage: storage}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness with a metrics snapshot
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	payload := gin.H{"status": "ok", "storage": h.storageState()}
	if h.metrics != nil {
		payload["metrics"] = h.metrics.Snapshot()
	}
	response.JSON(c, http.StatusOK, payload)
}

// Ready reports readiness. A degraded store still serves from memory, so it stays ready.
func (h *MetricsHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "storage": h.storageState()})
}

func (h *MetricsHandler) storageState() string {
	if h.storage != nil && h.storage.Degraded() {
		return "degraded"
	}
	return "persistent"
}
