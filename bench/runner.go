package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/core"
	"github.com/katalvlaran/parbfs/visitors"
)

// ErrNoEngines is returned by NewRunner without engines.
var ErrNoEngines = errors.New("bench: no engines")

// Case is one graph and start vertex to run every engine on.
// Labels are the leading CSV columns identifying the case.
type Case struct {
	Graph  core.Graph
	Start  int
	Labels []string
}

// Timing is the outcome of one engine on one case.
type Timing struct {
	Engine   string
	Duration time.Duration
	// Match reports whether the distances equal the reference engine's.
	Match bool
	// Levels is the engine's distance-level histogram.
	Levels []int
	Err    error
}

// Result is the outcome of every engine on one case. Timings[0] is the reference.
type Result struct {
	RunID   uuid.UUID
	Case    Case
	Timings []Timing
}

// Mismatches returns the timings that completed but disagree with the reference.
func (r Result) Mismatches() []Timing {
	var out []Timing
	for _, t := range r.Timings {
		if !t.Match && t.Err == nil {
			out = append(out, t)
		}
	}
	return out
}

// Failures returns the timings whose engine returned an error.
func (r Result) Failures() []Timing {
	var out []Timing
	for _, t := range r.Timings {
		if t.Err != nil {
			out = append(out, t)
		}
	}
	return out
}

// Runner runs a fixed list of engines over cases.
type Runner struct {
	engines []NamedEngine
	metrics *Metrics
	log     *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMetrics records every run in m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithLogger sets the harness logger. It is also handed to the engines.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner returns a Runner for engines; the first engine is the reference.
func NewRunner(engines []NamedEngine, opts ...RunnerOption) (*Runner, error) {
	if len(engines) == 0 {
		return nil, ErrNoEngines
	}
	r := &Runner{engines: engines, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Engines returns the engine names in run order.
func (r *Runner) Engines() []string {
	names := make([]string, len(r.engines))
	for i, e := range r.engines {
		names[i] = e.Name
	}
	return names
}

// Run executes every engine on c with a fresh Distance visitor each.
// It fails only when the reference engine fails; other engine errors are
// recorded in their Timing.
func (r *Runner) Run(ctx context.Context, c Case) (Result, error) {
	res := Result{RunID: uuid.New(), Case: c, Timings: make([]Timing, 0, len(r.engines))}
	n := c.Graph.VertexCount()
	r.metrics.setCase(n)

	var ref []int
	for i, e := range r.engines {
		d := visitors.NewDistance(n)
		began := time.Now()
		err := e.Run(c.Graph, c.Start, d, bfs.WithContext(ctx), bfs.WithLogger(r.log))
		t := Timing{Engine: e.Name, Duration: time.Since(began), Err: err}

		if i == 0 {
			if err != nil {
				return res, fmt.Errorf("bench: reference engine %s: %w", e.Name, err)
			}
			ref = d.Distances()
			t.Match = true
		} else if err == nil {
			dist := d.Distances()
			t.Match = cmp.Equal(ref, dist)
			if !t.Match {
				r.log.Warn("distance mismatch",
					"run_id", res.RunID,
					"engine", e.Name,
					"start", c.Start,
					"diff", cmp.Diff(ref, dist))
			}
		} else {
			r.log.Error("engine failed", "run_id", res.RunID, "engine", e.Name, "err", err)
		}
		if err == nil {
			t.Levels = d.Levels()
		}

		r.metrics.observe(t)
		res.Timings = append(res.Timings, t)
	}

	r.log.Info("case done",
		"run_id", res.RunID,
		"vertices", n,
		"start", c.Start,
		"mismatches", len(res.Mismatches()),
		"failures", len(res.Failures()))

	return res, nil
}
