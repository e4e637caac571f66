// Package app wires the qdag binary together: it builds the logger, loads
// the circuit file, constructs the dependency DAG and renders the requested
// view of it.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/HQSquantumsimulations/qoqo-sub001/circuitdag"
	"github.com/HQSquantumsimulations/qoqo-sub001/circuitfile"
	"github.com/HQSquantumsimulations/qoqo-sub001/internal/ctxlog"
)

// logLevels maps the validated -log-level values onto slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the logger for one invocation from the already validated
// config. The global slog logger is never touched, so concurrent Run calls
// stay isolated.
func newLogger(cfg *Config, logW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[cfg.LogLevel]}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}

// Run executes one qdag invocation: results go to outW, logs to logW.
func Run(cfg *Config, outW, logW io.Writer) error {
	logger := newLogger(cfg, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	c, err := circuitfile.Load(ctx, cfg.CircuitPath)
	if err != nil {
		return err
	}

	dag := circuitdag.FromCircuit(c)
	logger.Debug("Dependency graph built.",
		"nodes", dag.NodeCount(),
		"edges", dag.EdgeCount(),
		"commuting", len(dag.CommutingOperations()))

	switch cfg.Output {
	case OutputBlocks:
		return writeBlocks(outW, dag)
	case OutputOrder:
		return writeOrder(outW, dag)
	case OutputReport:
		return writeReport(outW, dag)
	default:
		return fmt.Errorf("unknown output mode %q", cfg.Output)
	}
}

// writeBlocks prints one line per parallel block, listing the operations
// that may execute simultaneously.
func writeBlocks(outW io.Writer, dag *circuitdag.Dag) error {
	blocks := dag.ParallelBlocks()
	i := 0
	for {
		layer, ok := blocks.Next()
		if !ok {
			break
		}
		names := make([]string, len(layer))
		for j, n := range layer {
			op, _ := dag.Get(n)
			names[j] = fmt.Sprintf("%d:%s", n, op.Name())
		}
		if _, err := fmt.Fprintf(outW, "block %d: %s\n", i, strings.Join(names, " ")); err != nil {
			return err
		}
		i++
	}

	commuting := dag.CommutingOperations()
	if len(commuting) > 0 {
		names := make([]string, len(commuting))
		for j, n := range commuting {
			op, _ := dag.Get(n)
			names[j] = fmt.Sprintf("%d:%s", n, op.Name())
		}
		if _, err := fmt.Fprintf(outW, "commuting: %s\n", strings.Join(names, " ")); err != nil {
			return err
		}
	}
	return nil
}

// writeOrder prints one valid sequential execution order.
func writeOrder(outW io.Writer, dag *circuitdag.Dag) error {
	order, err := dag.TopologicalOrder()
	if err != nil {
		return err
	}
	for _, n := range order {
		op, _ := dag.Get(n)
		if _, err := fmt.Fprintf(outW, "%d: %s\n", n, op.Name()); err != nil {
			return err
		}
	}
	return nil
}

// writeReport prints a structural summary of the DAG.
func writeReport(outW io.Writer, dag *circuitdag.Dag) error {
	layers := 0
	blocks := dag.ParallelBlocks()
	for {
		if _, ok := blocks.Next(); !ok {
			break
		}
		layers++
	}

	rows := []struct {
		label string
		value any
	}{
		{"operations", dag.NodeCount()},
		{"dependencies", dag.EdgeCount()},
		{"commuting", len(dag.CommutingOperations())},
		{"parallel blocks", layers},
		{"qubits tracked", len(dag.LastOperationInvolvingQubit())},
		{"minimum version", dag.MinimumSupportedVersion()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(outW, "%-18s %v\n", r.label+":", r.value); err != nil {
			return err
		}
	}
	return nil
}
