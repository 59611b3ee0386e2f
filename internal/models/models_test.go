package models_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/pipelinecheck/internal/models"
)

func ptr[T any](v T) *T { return &v }

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestNodeID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want models.NodeID
	}{
		{`"1"`, models.StringID("1")},
		{`"node-a"`, models.StringID("node-a")},
		{`""`, models.StringID("")},
		{`1`, models.NumberID(1)},
		{`-7`, models.NumberID(-7)},
		{`1.0`, models.NumberID(1)},
		{`1e2`, models.NumberID(100)},
		{`2.5`, models.NodeID{Kind: models.KindNumber, Value: "2.5"}},
		{`-0`, models.NumberID(0)},
		{`12345678901234567890`, models.NodeID{Kind: models.KindNumber, Value: "12345678901234567890"}},
		{`12345678901234567891`, models.NodeID{Kind: models.KindNumber, Value: "12345678901234567891"}},
		{`-98765432109876543210`, models.NodeID{Kind: models.KindNumber, Value: "-98765432109876543210"}},
		{`1e20`, models.NodeID{Kind: models.KindNumber, Value: "100000000000000000000"}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var got models.NodeID
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.want {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestNodeID_UnmarshalJSONRejectsOtherTypes(t *testing.T) {
	for _, in := range []string{`true`, `{"a":1}`, `[1]`, `1e400`, `-1e400`} {
		t.Run(in, func(t *testing.T) {
			var got models.NodeID
			err := json.Unmarshal([]byte(in), &got)
			if !errors.Is(err, models.ErrInvalidIdentifier) {
				t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
			}
		})
	}
}

func TestNodeID_StringAndNumberAreDistinct(t *testing.T) {
	var s, n models.NodeID
	if err := json.Unmarshal([]byte(`"1"`), &s); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`1`), &n); err != nil {
		t.Fatal(err)
	}

	if s == n {
		t.Fatalf("string %v and number %v must differ", s, n)
	}
}

func TestNodeID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]models.NodeID{models.StringID("a"), models.NumberID(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `["a",3]` {
		t.Errorf("got %s", data)
	}

	if _, err := json.Marshal(models.NodeID{}); err == nil {
		t.Error("expected error marshalling zero NodeID")
	}
}

func TestNodeID_UnmarshalYAML(t *testing.T) {
	var doc struct {
		IDs []models.NodeID `yaml:"ids"`
	}

	src := "ids: [a, \"1\", 1, 1.0, 0x10, 2.5, 12345678901234567890, 123456789012345678901234567890]\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.NodeID{
		models.StringID("a"),
		models.StringID("1"),
		models.NumberID(1),
		models.NumberID(1),
		models.NumberID(16),
		{Kind: models.KindNumber, Value: "2.5"},
		{Kind: models.KindNumber, Value: "12345678901234567890"},
		{Kind: models.KindNumber, Value: "123456789012345678901234567890"},
	}

	if len(doc.IDs) != len(want) {
		t.Fatalf("got %d ids, want %d", len(doc.IDs), len(want))
	}

	for i := range want {
		if doc.IDs[i] != want[i] {
			t.Errorf("ids[%d]: got %#v, want %#v", i, doc.IDs[i], want[i])
		}
	}
}

func TestNodeID_UnmarshalYAMLRejectsOtherTypes(t *testing.T) {
	for _, src := range []string{"id: true\n", "id: {a: 1}\n", "id: [1]\n", "id: .inf\n", "id: .nan\n"} {
		var doc struct {
			ID models.NodeID `yaml:"id"`
		}

		err := yaml.Unmarshal([]byte(src), &doc)
		if !errors.Is(err, models.ErrInvalidIdentifier) {
			t.Errorf("%q: expected ErrInvalidIdentifier, got %v", src, err)
		}
	}
}

func TestPipelineRequest_DecodeIgnoresExtraFields(t *testing.T) {
	body := `{
		"nodes": [{"id": "1", "type": "customInput", "position": {"x": 1, "y": 2}, "data": {}}],
		"edges": [{"id": "e1-2", "source": "1", "target": "2", "animated": true}, {"source": null}]
	}`

	var req models.PipelineRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.Nodes) != 1 || *req.Nodes[0].ID != models.StringID("1") {
		t.Fatalf("unexpected nodes: %+v", req.Nodes)
	}

	if len(req.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(req.Edges))
	}

	if req.Edges[1].Source != nil || req.Edges[1].Target != nil {
		t.Errorf("expected nil endpoints for null/missing fields, got %+v", req.Edges[1])
	}
}

func TestPipelineRequest_Validate(t *testing.T) {
	id := ptr(models.StringID("a"))

	tests := []struct {
		name    string
		req     models.PipelineRequest
		max     int
		wantErr string
	}{
		{name: "valid", req: models.PipelineRequest{Nodes: []models.Node{{ID: id}}, Edges: []models.Edge{}}},
		{name: "empty", req: models.PipelineRequest{Nodes: []models.Node{}, Edges: []models.Edge{}}},
		{name: "missing nodes", req: models.PipelineRequest{Edges: []models.Edge{}}, wantErr: "nodes is required"},
		{name: "missing edges", req: models.PipelineRequest{Nodes: []models.Node{}}, wantErr: "edges is required"},
		{name: "missing id", req: models.PipelineRequest{Nodes: []models.Node{{ID: id}, {}}, Edges: []models.Edge{}}, wantErr: "nodes[1]: id is required"},
		{
			name:    "over limit",
			req:     models.PipelineRequest{Nodes: []models.Node{{ID: id}, {ID: id}}, Edges: []models.Edge{{}}},
			max:     2,
			wantErr: "exceeds maximum of 2",
		},
		{
			name: "at limit",
			req:  models.PipelineRequest{Nodes: []models.Node{{ID: id}}, Edges: []models.Edge{{}}},
			max:  2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate(tc.max)
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestPipelineRequest_ValidateLimitIsSentinel(t *testing.T) {
	req := models.PipelineRequest{Nodes: make([]models.Node, 3), Edges: []models.Edge{}}

	if err := req.Validate(1); !errors.Is(err, models.ErrTooManyElements) {
		t.Fatalf("expected ErrTooManyElements, got %v", err)
	}
}
