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

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates the service error taxonomy into HTTP
// responses: validation errors map to 400, typed absences to 404 and
// everything touching storage to 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPointNotFound):
		RespondError(c, http.StatusNotFound, "Point not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidPointID):
		RespondError(c, http.StatusBadRequest, "Point id must be a positive integer")
	case errors.Is(err, ErrInvalidItemList):
		RespondError(c, http.StatusBadRequest, "Items must be a comma-separated list of integer ids")
	case errors.Is(err, ErrEmptyItemList):
		RespondError(c, http.StatusBadRequest, "At least one item id is required")
	case errors.Is(err, ErrInvalidCoordinates):
		RespondError(c, http.StatusBadRequest, "Latitude must be in [-90,90] and longitude in [-180,180]")
	case errors.Is(err, ErrMissingImage):
		RespondError(c, http.StatusBadRequest, "An image file is required")
	case errors.Is(err, ErrInvalidImage):
		RespondError(c, http.StatusBadRequest, "Image must be a png, jpeg, gif or svg file")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrRegistrationClosed):
		RespondError(c, http.StatusForbidden, "Registration is closed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
