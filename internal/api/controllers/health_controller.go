package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shorex/internal/models/response_models"
	"shorex/pkg/utils"
)

// Check values reported per dependency.
const (
	checkHealthy       = "healthy"
	checkUnhealthy     = "unhealthy"
	checkConfigured    = "configured"
	checkNotConfigured = "not_configured"
)

type HealthController struct {
	pingDB  func() error
	planner utils.PlannerClientInterface
}

func NewHealthController(pingDB func() error, planner utils.PlannerClientInterface) *HealthController {
	return &HealthController{
		pingDB:  pingDB,
		planner: planner,
	}
}

// Health godoc
// @Summary Service health
// @Description Report database connectivity and AI configuration status
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router /api/health [get]
func (h *HealthController) Health(c *gin.Context) {
	resp := response_models.HealthResponse{
		Status:    "ok",
		Service:   "shorex",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks: response_models.HealthChecks{
			Database:  checkHealthy,
			AIService: checkConfigured,
		},
	}

	if err := h.pingDB(); err != nil {
		resp.Status = "degraded"
		resp.Checks.Database = checkUnhealthy
	}
	if !h.planner.Configured() {
		resp.Status = "degraded"
		resp.Checks.AIService = checkNotConfigured
	}

	c.JSON(http.StatusOK, resp)
}
