package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shorex/internal/models/request_models"
	"shorex/internal/services"
	"shorex/pkg/middleware"
	"shorex/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a day plan
// @Description Generate an AI day plan for a port call. Generation failures
// @Description are persisted and returned as a failed plan, not an HTTP error.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "Invalid request format.",
		})
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), middleware.DeviceID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generation completed")
}

// ListPlans godoc
// @Summary List plans
// @Description List the calling device's plans, optionally filtered by trip
// @Tags Plans
// @Produce json
// @Param trip_id query string false "Filter by trip ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	page, pageSize := paginationParams(c)

	plans, err := p.planService.ListPlans(c.Request.Context(), middleware.DeviceID(c), c.Query("trip_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// GetPlanForPort godoc
// @Summary Get the plan for a port
// @Description Get the latest generated plan for a port call
// @Tags Plans
// @Produce json
// @Param id path string true "Trip ID"
// @Param port_id path string true "Port ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/ports/{port_id}/plan [get]
func (p *PlanController) GetPlanForPort(c *gin.Context) {
	plan, err := p.planService.GetPlanForPort(c.Request.Context(), middleware.DeviceID(c), c.Param("id"), c.Param("port_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan retrieved successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/plans/{id} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	if err := p.planService.DeletePlan(c.Request.Context(), middleware.DeviceID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
