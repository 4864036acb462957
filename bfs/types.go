// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/parbfs/core"
)

// Sentinel errors for precondition violations. They are always returned
// before any vertex is examined.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVisitorNil is returned if a nil visitor is passed.
	ErrVisitorNil = errors.New("bfs: visitor is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("bfs: graph has no vertices")

	// ErrStartOutOfRange is returned when start is not in 0..VertexCount()-1.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrPoolSize is returned when the worker pool size is not positive.
	ErrPoolSize = errors.New("bfs: worker pool size must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Sentinel errors for faults raised while traversing.
var (
	// ErrWorkerPanic wraps a panic recovered inside a worker.
	ErrWorkerPanic = errors.New("bfs: worker panicked")

	// ErrScheduler is returned when the pool scheduler is idle with queued
	// work it cannot admit. It indicates a broken admission invariant.
	ErrScheduler = errors.New("bfs: scheduler stalled")
)

// Engine is the call contract shared by every traversal variant.
type Engine func(g core.Graph, start int, vis Visitor, opts ...Option) error

// Compile-time checks that the free-standing engines satisfy Engine.
var (
	_ Engine = Sequential
	_ Engine = Level
)

// PoolEngine binds a worker count to Pool so it can be used as an Engine.
func PoolEngine(workers int) Engine {
	return func(g core.Graph, start int, vis Visitor, opts ...Option) error {
		return Pool(g, start, vis, workers, opts...)
	}
}

// Option configures traversal behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters shared by all engines.
type Options struct {
	// Ctx is the parent for trace spans. It does not cancel the traversal.
	Ctx context.Context

	// Logger receives debug records about levels and completion.
	Logger *slog.Logger

	// Colors, if set, is used as the run's color array instead of a private one.
	// It must have one cell per vertex and be entirely White.
	Colors *ColorMap

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - slog.Default()
//   - a private color array allocated per run.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
}

// WithContext sets the parent context for trace spans.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithColors makes the engine use m as its color array so the caller can
// inspect final colors. A ColorMap is single-use: passing one that is not
// entirely White yields ErrOptionViolation.
func WithColors(m *ColorMap) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: nil color map", ErrOptionViolation)
			return
		}
		o.Colors = m
	}
}
