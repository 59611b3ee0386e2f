package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/persistorai/pipelinecheck/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPipelineJSON(t *testing.T) {
	body := `{"nodes":[{"id":"a","type":"input"},{"id":"b"}],"edges":[{"source":"a","target":"b"}]}`
	path := writeFile(t, "p.json", body)

	lp, err := loadPipeline(path, nil)
	if err != nil {
		t.Fatalf("loadPipeline: %v", err)
	}
	if len(lp.req.Nodes) != 2 || len(lp.req.Edges) != 1 {
		t.Fatalf("decoded %d nodes, %d edges", len(lp.req.Nodes), len(lp.req.Edges))
	}
	if string(lp.body) != body {
		t.Errorf("JSON body not forwarded verbatim: %s", lp.body)
	}
}

func TestLoadPipelineYAML(t *testing.T) {
	path := writeFile(t, "p.yml", `nodes:
  - id: 1
  - id: "1"
edges:
  - source: 1
    target: "1"
  - source: null
    target: 1
`)

	lp, err := loadPipeline(path, nil)
	if err != nil {
		t.Fatalf("loadPipeline: %v", err)
	}
	if *lp.req.Nodes[0].ID != models.NumberID(1) {
		t.Errorf("node 0 = %v, want number 1", lp.req.Nodes[0].ID)
	}
	if *lp.req.Nodes[1].ID != models.StringID("1") {
		t.Errorf("node 1 = %v, want string 1", lp.req.Nodes[1].ID)
	}
	if lp.req.Edges[1].Source != nil {
		t.Errorf("null source should decode to nil")
	}

	var round models.PipelineRequest
	if err := json.Unmarshal(lp.body, &round); err != nil {
		t.Fatalf("re-encoded body is not valid: %v", err)
	}
	if *round.Nodes[1].ID != models.StringID("1") {
		t.Errorf("string identifier lost in JSON encoding: %s", lp.body)
	}
}

func TestLoadPipelineStdin(t *testing.T) {
	lp, err := loadPipeline("-", strings.NewReader(`{"nodes":[],"edges":[]}`))
	if err != nil {
		t.Fatalf("loadPipeline: %v", err)
	}
	if lp.req.Nodes == nil || lp.req.Edges == nil {
		t.Error("empty arrays should decode as non-nil")
	}
}

func TestLoadPipelineErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "p.json", `{"nodes":`},
		{"bool identifier", "p.json", `{"nodes":[{"id":true}],"edges":[]}`},
		{"malformed yaml", "p.yaml", "nodes: [\n"},
		{"map identifier in yaml", "p.yaml", "nodes:\n  - id: {a: 1}\nedges: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadPipeline(writeFile(t, tt.file, tt.content), nil); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := loadPipeline(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}
