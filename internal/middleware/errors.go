package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/pipelinecheck/internal/httputil"
	"github.com/persistorai/pipelinecheck/internal/metrics"
)

// respondError records the error and writes the shared JSON error body.
func respondError(c *gin.Context, status int, errCode, message string) {
	metrics.ErrorsTotal.WithLabelValues(errCode).Inc()
	httputil.RespondError(c, status, errCode, message)
}
