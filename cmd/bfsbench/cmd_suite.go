package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parbfs/bench"
	"github.com/katalvlaran/parbfs/internal/logging"
)

func newSuiteCmd(a *app) *cobra.Command {
	var flags struct {
		config    string
		outputDir string
		seed      int64
	}

	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the generated grid and datasets, appending CSV reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := bench.DefaultConfig()
			if flags.config != "" {
				var err error
				if cfg, err = bench.LoadConfig(flags.config); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = flags.outputDir
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = flags.seed
			}

			engines, err := bench.ParseEngines(cfg.Engines)
			if err != nil {
				return err
			}
			log := logging.New("bench")
			runner, err := bench.NewRunner(engines,
				bench.WithMetrics(bench.NewMetrics(a.registry)),
				bench.WithLogger(log))
			if err != nil {
				return err
			}
			suite, err := bench.NewSuite(cfg, runner, log)
			if err != nil {
				return err
			}

			summary := newSuiteSummary(runner.Engines())
			suite.OnResult = summary.add
			log.Info("suite started", "seed", suite.Seed(), "output_dir", cfg.OutputDir, "engines", cfg.Engines)
			if err := suite.Run(cmd.Context()); err != nil {
				return fmt.Errorf("suite: %w", err)
			}
			summary.render(cmd.OutOrStdout())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "YAML suite file (defaults to the built-in grid)")
	f.StringVar(&flags.outputDir, "output-dir", "output", "Directory for CSV reports")
	f.Int64Var(&flags.seed, "seed", 0, "Suite seed (0 picks one from the clock)")

	return cmd
}
