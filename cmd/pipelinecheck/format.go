package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, wd := range widths {
		seps[i] = strings.Repeat("-", wd)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// verdict is what parse and check print.
type verdict struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

func outputVerdict(w io.Writer, v verdict) error {
	switch flagFmt {
	case "quiet":
		fmt.Fprintln(w, strconv.FormatBool(v.IsDAG))
	case "table":
		formatTable(w, []string{"NODES", "EDGES", "IS_DAG"}, [][]string{{
			strconv.Itoa(v.NumNodes), strconv.Itoa(v.NumEdges), strconv.FormatBool(v.IsDAG),
		}})
	default:
		return formatJSON(w, v)
	}
	return nil
}

func output(w io.Writer, v any) error {
	// Only verdicts have a table or quiet rendering.
	return formatJSON(w, v)
}
