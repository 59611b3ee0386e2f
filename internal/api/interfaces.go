package api

import (
	"context"

	"github.com/persistorai/pipelinecheck/internal/models"
)

// PipelineParser analyses a pipeline graph. Implemented by service.PipelineService.
type PipelineParser interface {
	Parse(ctx context.Context, req *models.PipelineRequest) (*models.ParseResult, error)
}
