package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/config"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/ctxlog"
	"github.com/katalvlaran/longpath/edgelist"
	"github.com/katalvlaran/longpath/longestpath"
	"github.com/katalvlaran/longpath/metrics"
)

// app is the state shared by the command tree of one invocation.
type app struct {
	flags GlobalFlags
	cfg   *config.Config
	log   *slog.Logger
}

// newRootCmd builds a fresh command tree. Tests build one per case.
func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "longpath [file]",
		Short: "Find the maximum-weight simple path of an undirected graph",
		Long: `longpath reads an edge list, one "u,v,weight" line per edge, from a file
or stdin and prints the heaviest simple path, one vertex per line.

Vertex ids are non-negative integers and weights are non-negative reals.
Malformed lines are reported and skipped.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.runSolve,
	}
	RegisterGlobalFlags(rootCmd, &a.flags)

	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs cmd with signal handling.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

// setup resolves the configuration and attaches the logger to the context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &a.flags)
	if err != nil {
		return err
	}
	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	log, err := ctxlog.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	a.cfg, a.log = cfg, log
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), log))

	return nil
}

// runSolve is the root command: read, solve, print.
func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	name, g, err := a.readGraph(cmd, args)
	if err != nil {
		return err
	}
	if g.VertexCount() == 0 {
		fmt.Fprintln(stderr, "No valid edges found")

		return nil
	}

	strategy, err := longestpath.ParseStrategy(a.cfg.Solver)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if a.flags.Verbose {
		printAnalysis(stderr, name, g)
	}

	reg := metrics.NewRegistry()
	reg.UpdateGraphMetrics(g.VertexCount(), g.EdgeCount())

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}
	start := time.Now()
	res, solveErr := longestpath.Solve(ctx, g,
		longestpath.WithStrategy(strategy),
		longestpath.WithWorkers(a.cfg.Workers),
		longestpath.WithRecorder(reg),
	)
	elapsed := time.Since(start)
	if solveErr != nil && !errors.Is(solveErr, longestpath.ErrSearchInterrupted) {
		return fmt.Errorf("solve %s: %w", name, solveErr)
	}
	reg.RecordResult(res.Distance, len(res.Path))

	if a.flags.Verbose {
		printSummary(stderr, res, elapsed)
	}
	if len(res.Path) == 0 {
		fmt.Fprintln(stderr, "No path found")
	} else if err := writeResult(cmd.OutOrStdout(), OutputFormat(a.cfg.Output), res); err != nil {
		return err
	}

	if a.cfg.MetricsFile != "" {
		if err := reg.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	// An interrupted solve still printed its partial path; the error sets the exit code.
	return solveErr
}

// readGraph loads the edge list named by args, or stdin, logging skipped lines.
func (a *app) readGraph(cmd *cobra.Command, args []string) (string, *core.Graph, error) {
	var (
		name       = "stdin"
		in         = cmd.InOrStdin()
		closeInput = func() {}
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("read input: %w", err)
		}
		name, in, closeInput = args[0], f, func() { _ = f.Close() }
	}
	defer closeInput()

	g, bad, err := edgelist.Read(in)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", name, err)
	}
	for _, le := range bad {
		a.log.Warn("skipping invalid input line", "input", name, "line", le.Line, "text", le.Text, "err", le.Err)
	}

	return name, g, nil
}
