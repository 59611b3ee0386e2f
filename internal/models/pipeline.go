package models

// Node is a pipeline node record. Fields other than id are ignored.
type Node struct {
	ID *NodeID `json:"id" yaml:"id" binding:"required"`
}

// Edge is a directed pipeline edge record. A nil endpoint never resolves to a
// node, so the edge is dropped during analysis.
type Edge struct {
	Source *NodeID `json:"source" yaml:"source"`
	Target *NodeID `json:"target" yaml:"target"`
}

// PipelineRequest is the payload for POST /pipelines/parse.
type PipelineRequest struct {
	Nodes []Node `json:"nodes" yaml:"nodes" binding:"required,dive"`
	Edges []Edge `json:"edges" yaml:"edges" binding:"required"`
}

// Validate checks required fields and the combined element limit. A limit of
// zero or less disables the element check.
func (r *PipelineRequest) Validate(maxElements int) error {
	if r.Nodes == nil {
		return ErrMissingNodes
	}

	if r.Edges == nil {
		return ErrMissingEdges
	}

	if total := len(r.Nodes) + len(r.Edges); maxElements > 0 && total > maxElements {
		return ErrElementLimit(total, maxElements)
	}

	for i, n := range r.Nodes {
		if n.ID == nil {
			return ErrNodeField(i, ErrMissingID)
		}
	}

	return nil
}

// ParseResult is the verdict returned for a pipeline.
type ParseResult struct {
	NumNodes int  `json:"num_nodes" yaml:"num_nodes"`
	NumEdges int  `json:"num_edges" yaml:"num_edges"`
	IsDAG    bool `json:"is_dag" yaml:"is_dag"`
}
