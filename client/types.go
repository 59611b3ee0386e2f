package client

import "encoding/json"

// Node is a pipeline node. ID must encode to a JSON string or number; use
// json.Number for numeric identifiers.
type Node struct {
	ID any `json:"id"`
}

// Edge is a directed pipeline edge between two node identifiers.
type Edge struct {
	Source any `json:"source"`
	Target any `json:"target"`
}

// Pipeline is the request body for Pipelines.Parse. Raw, when set, is sent
// verbatim instead of Nodes and Edges so callers can forward editor output
// with extra fields intact.
type Pipeline struct {
	Nodes []Node          `json:"nodes"`
	Edges []Edge          `json:"edges"`
	Raw   json.RawMessage `json:"-"`
}

// ParseResult is the verdict for a submitted pipeline.
type ParseResult struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

// PingResponse is returned by GET /.
type PingResponse struct {
	Ping string `json:"Ping"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
