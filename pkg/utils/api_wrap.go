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
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	v, _ := c.Get("trace_id")
	s, _ := v.(string)
	return s
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

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoActiveJourney):
		// Navigation guard, not a failure: the client should go back to the
		// entry view and start a journey first.
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "No active journey",
			TraceID: traceID(c),
			Data:    gin.H{"redirect": "/"},
		})
	case errors.Is(err, ErrCountryNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Country not found",
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrNilCountry):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "A trip requires a country",
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrInvalidPage):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Page must be greater than 0",
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Page size must be between 1 and 100",
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID(c),
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID(c),
		})
	}
}
