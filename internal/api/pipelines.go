package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/pipelinecheck/internal/httputil"
	"github.com/persistorai/pipelinecheck/internal/models"
)

// PipelineHandler serves pipeline analysis endpoints.
type PipelineHandler struct {
	svc PipelineParser
	log *logrus.Logger
}

// NewPipelineHandler creates a PipelineHandler with the given parser and logger.
func NewPipelineHandler(svc PipelineParser, log *logrus.Logger) *PipelineHandler {
	return &PipelineHandler{svc: svc, log: log}
}

// Parse handles POST /pipelines/parse.
func (h *PipelineHandler) Parse(c *gin.Context) {
	var req models.PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, code, msg := bindErrorResponse(err)
		respondError(c, status, code, msg)

		return
	}

	log := h.log.WithField("request_id", httputil.RequestID(c))
	log.WithFields(logrus.Fields{"nodes": len(req.Nodes), "edges": len(req.Edges)}).Info("pipeline received")

	result, err := h.svc.Parse(c.Request.Context(), &req)
	if err != nil {
		switch {
		case isValidationError(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "request cancelled")
		default:
			log.WithError(err).Error("parsing pipeline")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	log.WithFields(logrus.Fields{
		"num_nodes": result.NumNodes,
		"num_edges": result.NumEdges,
		"is_dag":    result.IsDAG,
	}).Info("pipeline parsed")

	c.JSON(http.StatusOK, result)
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrTooManyElements) ||
		errors.Is(err, models.ErrMissingID) ||
		errors.Is(err, models.ErrMissingNodes) ||
		errors.Is(err, models.ErrMissingEdges)
}
