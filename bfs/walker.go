package bfs

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/parbfs/core"
)

// walker encapsulates the per-run traversal state shared by every engine.
// The per-vertex body (process) is the same for all of them; engines differ
// only in how they schedule calls to it.
type walker struct {
	graph    core.Graph
	vis      Visitor
	colors   *ColorMap
	opts     Options
	start    int
	n        int
	finished atomic.Int64
}

// newWalker validates the call contract and prepares a walker. No visitor
// hook is invoked here.
func newWalker(g core.Graph, start int, vis Visitor, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if vis == nil {
		return nil, ErrVisitorNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if n <= 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, vertex count=%d", ErrStartOutOfRange, start, n)
	}

	colors := o.Colors
	switch {
	case colors == nil:
		colors = NewColorMap(n)
	case colors.Len() != n:
		return nil, fmt.Errorf("%w: color map has %d cells, graph has %d vertices",
			ErrOptionViolation, colors.Len(), n)
	case !colors.fresh():
		return nil, fmt.Errorf("%w: color map was already used", ErrOptionViolation)
	}

	return &walker{
		graph:  g,
		vis:    vis,
		colors: colors,
		opts:   o,
		start:  start,
		n:      n,
	}, nil
}

// begin initializes every vertex and claims the start vertex.
func (w *walker) begin() (err error) {
	defer w.recoverInto(&err, w.start)

	for v := 0; v < w.n; v++ {
		if err := w.vis.InitializeVertex(v); err != nil {
			return vertexHookError("InitializeVertex", v, err)
		}
	}
	// Nobody else can race for the start vertex yet.
	w.colors.Claim(w.start)
	if err := w.vis.DiscoverVertex(w.start); err != nil {
		return vertexHookError("DiscoverVertex", w.start, err)
	}

	return nil
}

// process examines v, classifies each of its out-edges, claims White targets
// and finally turns v Black. It returns the successors it claimed, in edge
// order. The caller must own v (it must have won v's claim).
func (w *walker) process(v int) (next []int, err error) {
	defer w.recoverInto(&err, v)

	if err := w.vis.ExamineVertex(v); err != nil {
		return nil, vertexHookError("ExamineVertex", v, err)
	}

	for _, e := range w.graph.OutEdges(v) {
		if err := w.vis.ExamineEdge(e); err != nil {
			return nil, edgeHookError("ExamineEdge", e, err)
		}
		if err := w.classify(e, &next); err != nil {
			return nil, err
		}
	}

	w.colors.Finish(v)
	w.finished.Add(1)
	if err := w.vis.FinishVertex(v); err != nil {
		return nil, vertexHookError("FinishVertex", v, err)
	}

	return next, nil
}

// classify fires exactly one of the tree / gray-target / black-target hook
// sequences for e, appending the target to next when e claims it.
func (w *walker) classify(e core.Edge, next *[]int) error {
	t := e.Target
	if w.colors.Claim(t) {
		if err := w.vis.TreeEdge(e); err != nil {
			return edgeHookError("TreeEdge", e, err)
		}
		if err := w.vis.DiscoverVertex(t); err != nil {
			return vertexHookError("DiscoverVertex", t, err)
		}
		*next = append(*next, t)
		return nil
	}

	if err := w.vis.NonTreeEdge(e); err != nil {
		return edgeHookError("NonTreeEdge", e, err)
	}
	// A lost claim means t is at least Gray; colors only move forward.
	if w.colors.Color(t) == Gray {
		if err := w.vis.GrayTarget(e); err != nil {
			return edgeHookError("GrayTarget", e, err)
		}
		return nil
	}
	if err := w.vis.BlackTarget(e); err != nil {
		return edgeHookError("BlackTarget", e, err)
	}

	return nil
}

// recoverInto converts a panic raised while working on v into ErrWorkerPanic.
func (w *walker) recoverInto(err *error, v int) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: vertex %d: %v", ErrWorkerPanic, v, r)
	}
}

func vertexHookError(hook string, v int, err error) error {
	return fmt.Errorf("bfs: %s error at vertex %d: %w", hook, v, err)
}

func edgeHookError(hook string, e core.Edge, err error) error {
	return fmt.Errorf("bfs: %s error at edge %d→%d: %w", hook, e.Source, e.Target, err)
}
