package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parbfs/bench"
	"github.com/katalvlaran/parbfs/builder"
	"github.com/katalvlaran/parbfs/core"
	"github.com/katalvlaran/parbfs/internal/logging"
	"github.com/katalvlaran/parbfs/loader"
)

func newCompareCmd(a *app) *cobra.Command {
	var flags struct {
		vertices   int
		rarity     float64
		seed       int64
		file       string
		delimiter  string
		undirected bool
		start      int
		engines    []string
		repeats    int
	}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every engine on one graph and print a timing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.repeats < 1 {
				return fmt.Errorf("--repeats must be >= 1")
			}
			seed := flags.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			var (
				g   *core.Digraph
				err error
			)
			if flags.file != "" {
				opts := []loader.Option{loader.WithDelimiter(flags.delimiter)}
				if flags.undirected {
					opts = append(opts, loader.WithUndirected())
				}
				g, err = loader.ReadEdgeListFile(flags.file, opts...)
			} else {
				g, err = builder.BuildGraph(nil,
					[]builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomRarity(flags.vertices, flags.rarity))
			}
			if err != nil {
				return err
			}
			if g.VertexCount() == 0 {
				return fmt.Errorf("graph has no vertices")
			}

			engines, err := bench.ParseEngines(flags.engines)
			if err != nil {
				return err
			}
			runner, err := bench.NewRunner(engines,
				bench.WithMetrics(bench.NewMetrics(a.registry)),
				bench.WithLogger(logging.New("compare")))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices=%d edges=%d seed=%d\n", g.VertexCount(), g.EdgeCount(), seed)
			for range flags.repeats {
				start := flags.start
				if start < 0 {
					start = rng.Intn(g.VertexCount())
				}
				res, err := runner.Run(cmd.Context(), bench.Case{
					Graph:  g,
					Start:  start,
					Labels: []string{strconv.Itoa(g.VertexCount()), strconv.Itoa(g.EdgeCount())},
				})
				if err != nil {
					return err
				}
				renderTimings(out, res)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.vertices, "vertices", 1000, "Vertex count of the generated graph")
	f.Float64Var(&flags.rarity, "rarity", 10, "Edge rarity of the generated graph")
	f.Int64Var(&flags.seed, "seed", 0, "Seed for generation and start choice (0 picks one from the clock)")
	f.StringVar(&flags.file, "file", "", "Edge-list file to load instead of generating")
	f.StringVar(&flags.delimiter, "delimiter", "", "Edge-list field delimiter (default: whitespace)")
	f.BoolVar(&flags.undirected, "undirected", false, "Treat the edge list as undirected")
	f.IntVar(&flags.start, "start", -1, "Start vertex (-1 picks one at random)")
	f.StringSliceVar(&flags.engines, "engines", bench.DefaultEngines, "Engines to run; the first is the reference")
	f.IntVar(&flags.repeats, "repeats", 1, "Number of runs")

	return cmd
}
