package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/pipelinecheck/internal/httputil"
	"github.com/persistorai/pipelinecheck/internal/models"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid := httputil.RequestID(c); rid != "" {
			fields["request_id"] = rid
		}
		if crid := c.GetString("client_request_id"); crid != "" {
			fields["client_request_id"] = crid
		}
		log.WithFields(fields).Info("request")
	}
}

// bindErrorResponse maps a ShouldBindJSON failure to status, error code and
// a client-safe message.
func bindErrorResponse(err error) (int, string, string) {
	var (
		verrs     validator.ValidationErrors
		maxErr    *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		return http.StatusBadRequest, ErrCodeValidationError, fieldMessage(verrs[0])
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large"
	case errors.Is(err, models.ErrInvalidIdentifier):
		return http.StatusBadRequest, ErrCodeInvalidRequest, err.Error()
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return http.StatusBadRequest, ErrCodeInvalidRequest, "malformed JSON body"
	case errors.As(err, &typeErr):
		return http.StatusBadRequest, ErrCodeInvalidRequest, "field " + typeErr.Field + " has the wrong type"
	default:
		return http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body"
	}
}

// fieldMessage renders a validator error using JSON field names, e.g.
// "nodes[2].id is required".
func fieldMessage(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ToLower(ns)

	if fe.Tag() == "required" {
		return ns + " is required"
	}

	return ns + " failed " + fe.Tag() + " validation"
}
