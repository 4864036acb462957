package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parbfs/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel       string
	logFormat      string
	trace          bool
	metricExporter string
	metricsFile    string
}

// app carries per-invocation state from the root hooks to subcommands.
type app struct {
	flags    globalFlags
	registry *prometheus.Registry
	shutdown []func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{registry: prometheus.NewRegistry()}

	root := &cobra.Command{
		Use:   "bfsbench",
		Short: "Benchmark and cross-check sequential and parallel BFS engines",
		Long: "bfsbench runs the sequential, level-synchronous and worker-pool BFS engines\n" +
			"on generated and loaded graphs, times them and reports distance mismatches.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&a.flags.trace, "trace", false, "Export OpenTelemetry spans to stderr")
	pf.StringVar(&a.flags.metricExporter, "metric-exporter", "prometheus", "Engine metrics exporter: prometheus, stdout or none")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path on exit")

	root.AddCommand(newSuiteCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(a.flags.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, a.flags.logFormat, cmd.ErrOrStderr())

	shutdown, err := initMeter(a.flags.metricExporter, a.registry, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	a.shutdown = append(a.shutdown, shutdown)

	if a.flags.trace {
		shutdown, err := initTracing(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		a.shutdown = append(a.shutdown, shutdown)
	}
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// The prometheus reader stops serving once shut down, so dump first.
	if a.flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.flags.metricsFile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	for _, shutdown := range a.shutdown {
		if err := shutdown(ctx); err != nil {
			return fmt.Errorf("flush telemetry: %w", err)
		}
	}
	return nil
}
