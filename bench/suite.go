package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/katalvlaran/parbfs/builder"
	"github.com/katalvlaran/parbfs/loader"
)

// GeneratedLabels are the label columns of generated cases.
var GeneratedLabels = []string{"seed", "vert_count", "edge_count", "edge_rarity"}

// DatasetLabels are the label columns of dataset cases.
var DatasetLabels = []string{"vert_count", "edge_count"}

// Suite runs a Config through a Runner and writes the reports.
type Suite struct {
	cfg    Config
	runner *Runner
	log    *slog.Logger
	rng    *rand.Rand
	seed   int64

	// OnResult, if set, is called after each case is reported.
	OnResult func(Result)
}

// NewSuite validates cfg and prepares a suite. Report columns follow the
// runner's engine list.
func NewSuite(cfg Config, runner *Runner, log *slog.Logger) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Suite{
		cfg:    cfg,
		runner: runner,
		log:    log,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}, nil
}

// Seed returns the effective suite seed.
func (s *Suite) Seed() int64 { return s.seed }

// Run executes the generated grid, then every dataset. It stops at the
// first error or when ctx is cancelled between cases.
func (s *Suite) Run(ctx context.Context) error {
	if err := s.runGenerated(ctx); err != nil {
		return err
	}
	for _, d := range s.cfg.Datasets {
		if err := s.runDataset(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Suite) runGenerated(ctx context.Context) error {
	gen := s.cfg.Generated
	if len(gen.VertexCounts) == 0 || len(gen.Rarities) == 0 {
		return nil
	}
	rep, err := NewReporter(s.cfg.OutputDir, gen.Prefix, GeneratedLabels, s.runner.Engines())
	if err != nil {
		return err
	}

	for _, n := range gen.VertexCounts {
		for _, rarity := range gen.Rarities {
			for range s.cfg.Repeats {
				if err := ctx.Err(); err != nil {
					return err
				}
				seed := s.rng.Int63()
				g, err := builder.BuildGraph(nil,
					[]builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomRarity(n, rarity))
				if err != nil {
					return fmt.Errorf("bench: generate n=%d rarity=%g: %w", n, rarity, err)
				}
				c := Case{
					Graph: g,
					Start: s.rng.Intn(n),
					Labels: []string{
						strconv.FormatInt(seed, 10),
						strconv.Itoa(n),
						strconv.Itoa(g.EdgeCount()),
						strconv.FormatFloat(rarity, 'g', -1, 64),
					},
				}
				if err := s.runCase(ctx, rep, c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Suite) runDataset(ctx context.Context, d DatasetConfig) error {
	opts := []loader.Option{loader.WithVertexCount(d.VertexCount), loader.WithDelimiter(d.Delimiter)}
	if d.Undirected {
		opts = append(opts, loader.WithUndirected())
	}
	if d.Header {
		opts = append(opts, loader.WithHeader())
	}
	g, err := loader.ReadEdgeListFile(d.Path, opts...)
	if err != nil {
		return fmt.Errorf("bench: dataset %s: %w", d.Name, err)
	}
	if g.VertexCount() == 0 {
		return fmt.Errorf("bench: dataset %s: no vertices", d.Name)
	}
	s.log.Info("dataset loaded", "name", d.Name, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	rep, err := NewReporter(s.cfg.OutputDir, d.Name+"_", DatasetLabels, s.runner.Engines())
	if err != nil {
		return err
	}
	for range s.cfg.Repeats {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := Case{
			Graph:  g,
			Start:  s.rng.Intn(g.VertexCount()),
			Labels: []string{strconv.Itoa(g.VertexCount()), strconv.Itoa(g.EdgeCount())},
		}
		if err := s.runCase(ctx, rep, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Suite) runCase(ctx context.Context, rep *Reporter, c Case) error {
	res, err := s.runner.Run(ctx, c)
	if err != nil {
		return err
	}
	if err := rep.Write(res); err != nil {
		return err
	}
	if s.OnResult != nil {
		s.OnResult(res)
	}
	return nil
}
