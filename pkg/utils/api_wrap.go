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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var upstreamErr *UpstreamError
	var validationErr *ItineraryValidationError

	switch {
	case errors.As(err, &upstreamErr):
		RespondError(c, http.StatusBadGateway, upstreamErr.Error())
	case errors.As(err, &validationErr):
		// Raw model output rides along in the envelope so clients can show it
		// for debugging, matching the never-discard-the-raw-text rule.
		traceID, _ := c.Get("trace_id")
		c.JSON(http.StatusBadGateway, APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: validationErr.Error(),
			TraceID: traceID.(string),
			Data:    gin.H{"kind": validationErr.Kind, "raw_response": validationErr.Raw},
		})
	case errors.Is(err, ErrNoFlightsFound):
		RespondError(c, http.StatusNotFound, "No flights were found matching your criteria")
	case errors.Is(err, ErrAirportCodeNotFound):
		RespondError(c, http.StatusNotFound, "Could not determine an airport code for this city")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
