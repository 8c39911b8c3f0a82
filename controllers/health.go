package controllers

import (
	"ClinicDesk/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	metrics *observability.Metrics
}

func NewHealthController(metrics *observability.Metrics) *HealthController {
	return &HealthController{metrics: metrics}
}

func (h *HealthController) Routes(router gin.IRouter) {
	router.GET("/health", h.Health)
	router.GET("/metrics", h.Metrics)
	router.GET("/metrics/prometheus", gin.WrapH(h.metrics.Handler()))
}

// Health answers 200 even when the document store is unreachable.
func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Liveness())
}

func (h *HealthController) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
