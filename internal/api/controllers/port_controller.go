package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shorex/internal/models/request_models"
	"shorex/internal/services"
	"shorex/pkg/middleware"
	"shorex/pkg/utils"
)

type PortController struct {
	portService services.PortServiceInterface
}

func NewPortController(portService services.PortServiceInterface) *PortController {
	return &PortController{
		portService: portService,
	}
}

// AddPort godoc
// @Summary Add a port to a trip
// @Description Add a port call with its visit window to an existing trip
// @Tags Ports
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.CreatePortRequest true "Port payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/ports [post]
func (p *PortController) AddPort(c *gin.Context) {
	var req request_models.CreatePortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "Invalid request format.",
		})
		return
	}

	port, err := p.portService.AddPort(c.Request.Context(), middleware.DeviceID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, port, "Port added successfully")
}

// UpdatePort godoc
// @Summary Update a port
// @Description Partially update a port call on a trip
// @Tags Ports
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param port_id path string true "Port ID"
// @Param request body request_models.UpdatePortRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/ports/{port_id} [patch]
func (p *PortController) UpdatePort(c *gin.Context) {
	var req request_models.UpdatePortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "Invalid request format.",
		})
		return
	}

	port, err := p.portService.UpdatePort(c.Request.Context(), middleware.DeviceID(c), c.Param("id"), c.Param("port_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, port, "Port updated successfully")
}

// DeletePort godoc
// @Summary Delete a port
// @Description Delete a port call and its generated plan, if any
// @Tags Ports
// @Produce json
// @Param id path string true "Trip ID"
// @Param port_id path string true "Port ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/ports/{port_id} [delete]
func (p *PortController) DeletePort(c *gin.Context) {
	if err := p.portService.DeletePort(c.Request.Context(), middleware.DeviceID(c), c.Param("id"), c.Param("port_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Port deleted successfully")
}
