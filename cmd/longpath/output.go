package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/dfs"
	"github.com/katalvlaran/longpath/longestpath"
)

// jsonResult is the --output json rendering of a solve.
type jsonResult struct {
	Path     []core.Vertex `json:"path"`
	Legs     []float64     `json:"legs"`
	Distance float64       `json:"distance"`
	Strategy string        `json:"strategy"`
	Class    string        `json:"class"`
}

// writeResult prints res on w: one vertex per line, or one JSON object.
func writeResult(w io.Writer, format OutputFormat, res longestpath.Result) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(jsonResult{
			Path:     res.Path,
			Legs:     res.Legs,
			Distance: res.Distance,
			Strategy: res.Strategy.String(),
			Class:    res.Class.String(),
		})
	}

	for _, v := range res.Path {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}

// printAnalysis writes the --verbose graph summary.
func printAnalysis(w io.Writer, name string, g *core.Graph) {
	st := g.Stats()
	fmt.Fprintf(w, "Graph analysis (%s):\n", name)
	fmt.Fprintf(w, "  vertices:   %d\n", st.VertexCount)
	fmt.Fprintf(w, "  edges:      %d\n", st.EdgeCount)
	if st.VertexCount > 1 {
		fmt.Fprintf(w, "  density:    %.3f\n", st.Density)
	} else {
		fmt.Fprintln(w, "  density:    N/A")
	}
	fmt.Fprintf(w, "  max degree: %d\n", st.MaxDegree)
	fmt.Fprintf(w, "  class:      %s\n", longestpath.ClassifyGraph(g))
	if cyclic, err := dfs.HasCycle(g); err == nil {
		fmt.Fprintf(w, "  cyclic:     %t\n", cyclic)
	}
}

// printSummary writes the --verbose run summary.
func printSummary(w io.Writer, res longestpath.Result, elapsed time.Duration) {
	fmt.Fprintf(w, "Solver:   %s\n", res.Strategy)
	fmt.Fprintf(w, "Elapsed:  %.2fs\n", elapsed.Seconds())
	fmt.Fprintf(w, "Distance: %.3f\n", res.Distance)
	fmt.Fprintf(w, "Length:   %d\n", len(res.Path))
}
