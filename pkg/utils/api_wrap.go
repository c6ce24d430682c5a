package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, body ErrorBody) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: body.Message,
		TraceID: traceID(c),
		Error:   &body,
	})
}

// HandleServiceError maps service-layer errors onto HTTP responses. Every
// branch produces a structured ErrorBody; nothing falls through as an
// opaque 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, ErrorBody{
			Error:   KindNotFound,
			Message: "Trip not found.",
		})
	case errors.Is(err, ErrPortNotFound):
		RespondError(c, http.StatusNotFound, ErrorBody{
			Error:   KindNotFound,
			Message: "Port not found.",
		})
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, ErrorBody{
			Error:   KindNotFound,
			Message: "Plan not found.",
		})
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, ErrorBody{
			Error:   KindValidationError,
			Message: err.Error(),
		})
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, ErrorBody{
			Error:   KindValidationError,
			Message: "Page must be greater than 0.",
		})
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, ErrorBody{
			Error:   KindValidationError,
			Message: "Page size must be between 1 and 100.",
		})
	case errors.Is(err, ErrWeatherUnavailable):
		RespondError(c, http.StatusBadGateway, ErrorBody{
			Error:           KindWeatherUnavail,
			Message:         "Weather service is currently unavailable.",
			Troubleshooting: "The upstream forecast provider returned an error; try again shortly.",
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, ErrorBody{
			Error:           KindDatabaseError,
			Message:         "Internal server error.",
			Troubleshooting: "Check POSTGRES_URL and database availability.",
		})
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, ErrorBody{
			Error:   KindDatabaseError,
			Message: "Internal server error.",
		})
	}
}
