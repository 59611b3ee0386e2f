// Package service provides business logic between API handlers and the DAG core.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/pipelinecheck/internal/dag"
	"github.com/persistorai/pipelinecheck/internal/metrics"
	"github.com/persistorai/pipelinecheck/internal/models"
)

// PipelineService validates pipeline requests and runs cycle detection on them.
type PipelineService struct {
	log         *logrus.Logger
	maxElements int
}

// NewPipelineService creates a PipelineService. maxElements caps nodes plus
// edges per request; zero disables the cap.
func NewPipelineService(log *logrus.Logger, maxElements int) *PipelineService {
	return &PipelineService{log: log, maxElements: maxElements}
}

// Parse validates req and reports whether its graph is a DAG. Counts in the
// result are of records received, not of distinct or admitted items.
func (s *PipelineService) Parse(ctx context.Context, req *models.PipelineRequest) (*models.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse pipeline: %w", err)
	}

	if err := req.Validate(s.maxElements); err != nil {
		return nil, err
	}

	ids := make([]models.NodeID, len(req.Nodes))
	for i, n := range req.Nodes {
		ids[i] = *n.ID
	}

	edges := make([]dag.Edge[models.NodeID], 0, len(req.Edges))
	unresolved := 0
	for _, e := range req.Edges {
		if e.Source == nil || e.Target == nil {
			unresolved++
			continue
		}
		edges = append(edges, dag.Edge[models.NodeID]{Source: *e.Source, Target: *e.Target})
	}

	g := dag.NewGraph(ids, edges)
	isDAG := g.IsDAG()
	dropped := unresolved + g.Dropped()

	metrics.PipelinesParsed.WithLabelValues(metrics.Verdict(isDAG)).Inc()
	metrics.GraphElements.Observe(float64(len(req.Nodes) + len(req.Edges)))
	if dropped > 0 {
		metrics.EdgesDropped.Add(float64(dropped))
	}

	s.log.WithFields(logrus.Fields{
		"nodes":          len(req.Nodes),
		"edges":          len(req.Edges),
		"distinct_nodes": g.Len(),
		"admitted_edges": g.EdgeCount(),
		"dropped_edges":  dropped,
		"is_dag":         isDAG,
	}).Debug("pipeline.parse")

	return &models.ParseResult{
		NumNodes: len(req.Nodes),
		NumEdges: len(req.Edges),
		IsDAG:    isDAG,
	}, nil
}
