package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/domain"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/middleware"
)

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. ReferentialError
// is distinct from NotFoundError: the addressed record is fine, the record it
// points at is missing, hence 422 instead of 404.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsReferential(err):
		RespondError(c, http.StatusUnprocessableEntity, "referential_error", err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "bad_request", "request body is empty")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
		return false
	}
	return true
}
