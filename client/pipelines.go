package client

import (
	"context"
	"net/http"
)

// PipelineService handles pipeline analysis operations.
type PipelineService struct {
	c *Client
}

// Parse submits a pipeline and returns the server's verdict.
func (s *PipelineService) Parse(ctx context.Context, p *Pipeline) (*ParseResult, error) {
	var body any = p
	if p.Raw != nil {
		body = p.Raw
	} else if p.Nodes == nil || p.Edges == nil {
		// The server requires both arrays to be present.
		cp := *p
		if cp.Nodes == nil {
			cp.Nodes = []Node{}
		}
		if cp.Edges == nil {
			cp.Edges = []Edge{}
		}
		body = &cp
	}

	var resp ParseResult
	if err := s.c.do(ctx, http.MethodPost, "/pipelines/parse", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
