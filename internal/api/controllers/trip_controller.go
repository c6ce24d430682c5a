package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shorex/internal/models/request_models"
	"shorex/internal/services"
	"shorex/pkg/middleware"
	"shorex/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a new cruise trip for the calling device
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "Invalid request format.",
		})
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), middleware.DeviceID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List trips
// @Description List the calling device's trips, newest first
// @Tags Trips
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, pageSize := paginationParams(c)

	trips, err := t.tripService.ListTrips(c.Request.Context(), middleware.DeviceID(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips retrieved successfully")
}

// GetTrip godoc
// @Summary Get a trip
// @Description Get a trip with its ports, sorted by arrival time
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	detail, err := t.tripService.GetTripDetail(c.Request.Context(), middleware.DeviceID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip retrieved successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Partially update a trip's ship name or cruise line
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [patch]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrorBody{
			Error:   utils.KindValidationError,
			Message: "Invalid request format.",
		})
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), middleware.DeviceID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip along with its ports and plans
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), middleware.DeviceID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 0
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 0
	}
	return page, pageSize
}
