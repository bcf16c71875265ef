// Package edgelist reads and writes graphs in the line-oriented edge list
// format consumed by the longpath CLI:
//
//	# comment
//	u,v,weight
//
// u and v are non-negative integers and weight a non-negative finite real.
// Whitespace around fields is ignored, as are blank lines and lines starting
// with '#'. Every accepted line adds one undirected edge, so repeated pairs
// become parallel edges.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors carried by LineError.Err.
var (
	// ErrFieldCount means a line did not split into exactly three fields.
	ErrFieldCount = errors.New("edgelist: expected u,v,weight")

	// ErrBadVertex means an endpoint is not a non-negative integer.
	ErrBadVertex = errors.New("edgelist: invalid vertex id")

	// ErrBadWeightSyntax means the weight is not a real number.
	ErrBadWeightSyntax = errors.New("edgelist: invalid weight")
)

// LineError describes one rejected input line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Read parses r into a new graph. Malformed lines are skipped and reported
// in the returned slice; weights rejected by core.Graph.AddEdge are reported
// the same way. The error is non-nil only when reading r fails.
func Read(r io.Reader) (*core.Graph, []*LineError, error) {
	g := core.NewGraph()
	var bad []*LineError

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		u, v, w, err := parseLine(text)
		if err == nil {
			err = g.AddEdge(u, v, w)
		}
		if err != nil {
			bad = append(bad, &LineError{Line: line, Text: text, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return g, bad, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, bad, nil
}

func parseLine(text string) (core.Vertex, core.Vertex, float64, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return 0, 0, 0, ErrFieldCount
	}
	u, err := parseVertex(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := parseVertex(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrBadWeightSyntax, err)
	}

	return u, v, w, nil
}

func parseVertex(s string) (core.Vertex, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadVertex, err)
	}

	return core.Vertex(n), nil
}

// Write emits every edge of g in insertion order, one "u,v,weight" line each,
// using the shortest float formatting that reads back exactly.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrGraphNil
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, e := range g.Edges() {
		buf = buf[:0]
		buf = strconv.AppendUint(buf, uint64(e.From), 10)
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, uint64(e.To), 10)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, e.Weight, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
