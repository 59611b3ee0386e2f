package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxBodySize returns middleware that limits request body size. Requests that
// declare a larger Content-Length are rejected up front with 413; the rest are
// wrapped so reading past the limit fails during decoding.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	tooLarge := "request body exceeds " + strconv.FormatInt(maxBytes, 10) + " bytes"

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			respondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", tooLarge)

			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
