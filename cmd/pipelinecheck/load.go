package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/pipelinecheck/internal/models"
)

// loadedPipeline is a pipeline file decoded for local checking, plus the JSON
// body to send to the server.
type loadedPipeline struct {
	req  models.PipelineRequest
	body json.RawMessage
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadPipeline reads a JSON or YAML pipeline from path ("-" for stdin). JSON
// input is forwarded verbatim; YAML is re-encoded as JSON.
func loadPipeline(path string, stdin io.Reader) (*loadedPipeline, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read pipeline: %w", err)
	}

	lp := &loadedPipeline{}

	if isYAML(path) {
		if err := yaml.Unmarshal(data, &lp.req); err != nil {
			return nil, fmt.Errorf("decode yaml pipeline: %w", err)
		}
		if lp.body, err = json.Marshal(&lp.req); err != nil {
			return nil, fmt.Errorf("encode pipeline: %w", err)
		}
		return lp, nil
	}

	if err := json.Unmarshal(data, &lp.req); err != nil {
		return nil, fmt.Errorf("decode json pipeline: %w", err)
	}
	lp.body = json.RawMessage(data)

	return lp, nil
}
