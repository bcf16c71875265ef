package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/config"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

// sampleInput has the optimum 1-2-3-4 at 15.65.
const sampleInput = `1,2,8.54
2,3,3.11
3,1,2.19
3,4,4.0
4,1,1.4
`

// execute runs a fresh command tree with stdin and args.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(t.Context())

	return out.String(), errOut.String(), err
}

// writeTemp stores content under the test's temp dir and returns the path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func decodeResult(t *testing.T, stdout string) jsonResult {
	t.Helper()
	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res), stdout)

	return res
}

func completeInput(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			fmt.Fprintf(&b, "%d,%d,%d\n", i, j, 1+(i*7+j*13)%10)
		}
	}

	return b.String()
}

func TestRoot_SampleFromStdin(t *testing.T) {
	stdout, stderr, err := execute(t, sampleInput)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_FileArgument(t *testing.T) {
	path := writeTemp(t, "sample.csv", sampleInput)

	stdout, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n", stdout)

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_JSONOutput(t *testing.T) {
	stdout, _, err := execute(t, sampleInput, "-o", "json")
	require.NoError(t, err)

	res := decodeResult(t, stdout)
	assert.Equal(t, []core.Vertex{1, 2, 3, 4}, res.Path)
	assert.Equal(t, []float64{8.54, 3.11, 4.0}, res.Legs)
	assert.InDelta(t, 15.65, res.Distance, 1e-9)
	assert.Equal(t, "exhaustive", res.Strategy)
	assert.Equal(t, "sparse", res.Class)
}

func TestRoot_SolverFlag(t *testing.T) {
	tests := []struct {
		solver string
		want   string
	}{
		{"original", "exhaustive"},
		{"parallel", "parallel"},
		{"advanced", "adaptive"},
		{"BOUNDED", "parallel"},
	}
	for _, tt := range tests {
		t.Run(tt.solver, func(t *testing.T) {
			stdout, _, err := execute(t, sampleInput, "-o", "json", "--solver", tt.solver, "--workers", "2")
			require.NoError(t, err)

			res := decodeResult(t, stdout)
			assert.Equal(t, tt.want, res.Strategy)
			assert.InDelta(t, 15.65, res.Distance, 1e-9)
		})
	}
}

func TestRoot_NoValidEdges(t *testing.T) {
	stdout, stderr, err := execute(t, "garbage\n1,2\n# only comments\n")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No valid edges found")
	assert.Contains(t, stderr, "skipping invalid input line")
}

func TestRoot_InvalidLinesSkipped(t *testing.T) {
	stdout, stderr, err := execute(t, "1,2,5\nx,y,z\n2,3,-1\n2,3,1\n")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", stdout)
	assert.Equal(t, 2, strings.Count(stderr, "skipping invalid input line"))
}

func TestRoot_NoPath(t *testing.T) {
	stdout, stderr, err := execute(t, "1,2,0\n2,3,0\n")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No path found")
}

func TestRoot_Verbose(t *testing.T) {
	_, stderr, err := execute(t, sampleInput, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Graph analysis (stdin):")
	assert.Contains(t, stderr, "vertices:   4")
	assert.Contains(t, stderr, "edges:      5")
	assert.Contains(t, stderr, "density:    0.833")
	assert.Contains(t, stderr, "class:      sparse")
	assert.Contains(t, stderr, "cyclic:     true")
	assert.Contains(t, stderr, "Solver:   exhaustive")
	assert.Contains(t, stderr, "Distance: 15.650")
	assert.Contains(t, stderr, "Length:   4")
}

func TestRoot_BadSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero workers", []string{"--workers", "0"}},
		{"too many workers", []string{"--workers", "1000"}},
		{"unknown solver", []string{"--solver", "quantum"}},
		{"unknown output", []string{"-o", "yaml"}},
		{"unknown log level", []string{"--log-level", "loud"}},
		{"negative timeout", []string{"--timeout", "-1s"}},
		{"missing config file", []string{"--config", "/nonexistent/longpath.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, sampleInput, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, errConfig)
			assert.Empty(t, stdout)
		})
	}
}

func TestRoot_ConfigFileAndOverrides(t *testing.T) {
	path := writeTemp(t, "longpath.yaml", "solver: parallel\nworkers: 2\noutput: json\n")

	stdout, _, err := execute(t, sampleInput, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "parallel", decodeResult(t, stdout).Strategy)

	// Flags win over the file.
	stdout, _, err = execute(t, sampleInput, "--config", path, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n", stdout)
}

func TestRoot_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvSolver, "advanced")

	stdout, _, err := execute(t, sampleInput, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "adaptive", decodeResult(t, stdout).Strategy)

	stdout, _, err = execute(t, sampleInput, "-o", "json", "--solver", "original")
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", decodeResult(t, stdout).Strategy)

	t.Setenv(config.EnvWorkers, "many")
	_, _, err = execute(t, sampleInput)
	assert.ErrorIs(t, err, errConfig)
}

func TestRoot_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "longpath.prom")

	_, _, err := execute(t, sampleInput, "--metrics-file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `longpath_solves_total{status="ok",strategy="exhaustive"} 1`)
	assert.Contains(t, text, `longpath_graph_classifications_total{class="sparse"} 1`)
	assert.Contains(t, text, "longpath_graph_vertices 4")
	assert.Contains(t, text, "longpath_graph_edges 5")
	assert.Contains(t, text, "longpath_last_path_vertices 4")
}

func TestRoot_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("runs a factorial search until the deadline")
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(completeInput(12)))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--solver", "original", "--timeout", "20ms", "--log-level", "error"})

	err := cmd.ExecuteContext(t.Context())
	require.ErrorIs(t, err, longestpath.ErrSearchInterrupted)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, ExitTimeout, handleError(cmd, err))

	// Whatever partial path came back is printed as usual.
	if out.Len() > 0 {
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.LessOrEqual(t, len(lines), 12)
	} else {
		assert.Contains(t, errOut.String(), "No path found")
	}
}
