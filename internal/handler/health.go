package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketboard/internal/client/gamma"
)

type HealthHandler struct {
	Gamma *gamma.Client
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness check
// @Description Probes the upstream events API with a minimal request.
// @Tags health
// @Success 200 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if h.Gamma == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "upstream_missing"})
		return
	}
	_, err := h.Gamma.FetchEvents(c.Request.Context(), gamma.FetchOptions{Limit: 1, Active: true})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "upstream_unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
