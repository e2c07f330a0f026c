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
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
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

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
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

// HandleServiceError maps service sentinels onto HTTP codes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, ErrInvalidPark):
		RespondError(c, http.StatusBadRequest, "Invalid park id")
	case errors.Is(err, ErrInvalidMonth):
		RespondError(c, http.StatusBadRequest, "Month must be a canonical month name (January..December)")
	case errors.Is(err, ErrInvalidDayCount):
		RespondError(c, http.StatusBadRequest, "Days must be between 1 and 30")
	case errors.Is(err, ErrEmptyPreferences):
		RespondError(c, http.StatusBadRequest, "Preferences must not be empty")
	case errors.Is(err, ErrPreferencesTooLong):
		RespondError(c, http.StatusBadRequest, "Preferences must be at most 500 characters")
	case errors.Is(err, ErrParkNotFound):
		RespondError(c, http.StatusNotFound, "Park not found")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrNoActivities):
		RespondError(c, http.StatusNotFound, "No activities found for this park")
	case errors.Is(err, ErrPersistenceRolledBack):
		log.Printf("Persistence failure (rolled back): %v", err)
		RespondError(c, http.StatusInternalServerError, "Itinerary generation failed, no data retained")
	case errors.Is(err, ErrStoreInconsistent):
		log.Printf("Persistence failure (INCONSISTENT): %v", err)
		RespondError(c, http.StatusInternalServerError, "Itinerary generation failed and rollback did not complete; store may contain orphaned records")
	case errors.Is(err, ErrReferentialIntegrity):
		log.Printf("Referential integrity failure: %v", err)
		RespondError(c, http.StatusInternalServerError, "Stored itinerary references a missing catalog activity; possible data corruption")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
