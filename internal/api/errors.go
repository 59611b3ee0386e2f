package api

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/pipelinecheck/internal/httputil"
	"github.com/persistorai/pipelinecheck/internal/metrics"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeValidationError = "validation_error"
	ErrCodePayloadTooLarge = "payload_too_large"
	ErrCodeUnavailable     = "unavailable"
	ErrCodeInternalError   = "internal_error"
	ErrCodeNotFound        = "not_found"
)

// respondError writes a standardized JSON error response.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}
