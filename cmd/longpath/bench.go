package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/edgelist"
	"github.com/katalvlaran/longpath/longestpath"
	"github.com/katalvlaran/longpath/metrics"
)

// defaultExhaustiveLimit keeps the factorial search off large inputs.
const defaultExhaustiveLimit = 12

// statusSkipped marks an exhaustive row not run because of --exhaustive-limit.
const statusSkipped = "skipped"

var (
	benchHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#00FFFF")).
				Padding(0, 1)

	benchCellStyle = lipgloss.NewStyle().Padding(0, 1)

	benchBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// benchRow is one strategy run on one input.
type benchRow struct {
	Input    string  `json:"input"`
	Vertices int     `json:"vertices"`
	Edges    int     `json:"edges"`
	Class    string  `json:"class"`
	Strategy string  `json:"strategy"`
	Distance float64 `json:"distance"`
	Length   int     `json:"length"`
	Elapsed  string  `json:"elapsed"`
	Expanded int64   `json:"expanded"`
	Pruned   int64   `json:"pruned"`
	Status   string  `json:"status"`
}

func newBenchCmd(a *app) *cobra.Command {
	var exhaustiveLimit int

	cmd := &cobra.Command{
		Use:   "bench <file>...",
		Short: "Compare the solving strategies on edge-list files",
		Long: `bench runs the exhaustive, parallel and adaptive strategies on every input
and renders distance, path length, time and search effort side by side.
The exhaustive strategy is skipped on inputs larger than --exhaustive-limit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []benchRow
			for _, name := range args {
				r, err := a.benchFile(cmd.Context(), name, exhaustiveLimit)
				if err != nil {
					return err
				}
				rows = append(rows, r...)
			}

			return writeBench(cmd.OutOrStdout(), OutputFormat(a.cfg.Output), rows)
		},
	}
	cmd.Flags().IntVar(&exhaustiveLimit, "exhaustive-limit", defaultExhaustiveLimit, "Largest vertex count the exhaustive strategy runs on")

	return cmd
}

// benchFile runs every strategy on one input. A timeout marks the row
// interrupted and moves on; any other solve error aborts the bench.
func (a *app) benchFile(ctx context.Context, name string, exhaustiveLimit int) ([]benchRow, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	g, bad, err := edgelist.Read(f)
	if err != nil {
		return nil, fmt.Errorf("bench: read %s: %w", name, err)
	}
	if len(bad) > 0 {
		a.log.Warn("skipped invalid input lines", "input", name, "count", len(bad))
	}

	reg := metrics.NewRegistry()
	reg.UpdateGraphMetrics(g.VertexCount(), g.EdgeCount())

	class := longestpath.ClassifyGraph(g)
	var rows []benchRow
	for _, s := range []longestpath.Strategy{longestpath.Exhaustive, longestpath.BoundedParallel, longestpath.Adaptive} {
		row := benchRow{
			Input:    name,
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
			Class:    class.String(),
			Strategy: s.String(),
		}
		if s == longestpath.Exhaustive && g.VertexCount() > exhaustiveLimit {
			row.Status = statusSkipped
			rows = append(rows, row)
			continue
		}
		if err := a.benchOne(ctx, g, s, reg, &row); err != nil {
			return nil, fmt.Errorf("bench %s: %w", name, err)
		}
		rows = append(rows, row)
	}
	if a.cfg.MetricsFile != "" {
		if err := reg.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return nil, fmt.Errorf("write metrics: %w", err)
		}
	}

	return rows, nil
}

func (a *app) benchOne(ctx context.Context, g *core.Graph, s longestpath.Strategy, reg *metrics.Registry, row *benchRow) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := longestpath.Solve(ctx, g,
		longestpath.WithStrategy(s),
		longestpath.WithWorkers(a.cfg.Workers),
		longestpath.WithRecorder(reg),
	)
	row.Elapsed = time.Since(start).Round(time.Microsecond).String()
	row.Status = longestpath.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, longestpath.ErrSearchInterrupted) && errors.Is(err, context.DeadlineExceeded):
		row.Status = longestpath.StatusInterrupted
	default:
		return err
	}
	row.Distance = res.Distance
	row.Length = len(res.Path)
	row.Expanded = res.Stats.Expanded
	row.Pruned = res.Stats.Pruned
	reg.RecordResult(res.Distance, len(res.Path))

	return nil
}

// writeBench renders rows as a table, or as a JSON array.
func writeBench(w io.Writer, format OutputFormat, rows []benchRow) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(benchBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return benchHeaderStyle
			}

			return benchCellStyle
		}).
		Headers("INPUT", "N", "M", "CLASS", "STRATEGY", "DISTANCE", "LENGTH", "TIME", "EXPANDED", "PRUNED", "STATUS")
	for _, r := range rows {
		distance, length := "-", "-"
		if r.Status != statusSkipped {
			distance = strconv.FormatFloat(r.Distance, 'f', 3, 64)
			length = strconv.Itoa(r.Length)
		}
		t.Row(
			r.Input,
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			r.Class,
			r.Strategy,
			distance,
			length,
			r.Elapsed,
			strconv.FormatInt(r.Expanded, 10),
			strconv.FormatInt(r.Pruned, 10),
			r.Status,
		)
	}
	_, err := fmt.Fprintln(w, t.Render())

	return err
}
