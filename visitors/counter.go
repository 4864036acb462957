package visitors

import (
	"sync/atomic"

	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/core"
)

// Counts is a snapshot of how often each hook fired during a run.
type Counts struct {
	Initialized   int64
	Discovered    int64
	Examined      int64
	EdgesExamined int64
	TreeEdges     int64
	NonTreeEdges  int64
	GrayTargets   int64
	BlackTargets  int64
	Finished      int64
}

// Counter tallies every hook, globally and per vertex. It is safe for
// concurrent use and is mainly meant for checking engine invariants.
type Counter struct {
	initialized, discovered, examined       atomic.Int64
	edgesExamined, treeEdges, nonTreeEdges  atomic.Int64
	grayTargets, blackTargets, finished     atomic.Int64
	discoverOf, finishOf, treeInto, nonTree []atomic.Int32
}

var _ bfs.Visitor = (*Counter)(nil)

// NewCounter returns a Counter sized for n vertices.
func NewCounter(n int) *Counter {
	return &Counter{
		discoverOf: make([]atomic.Int32, n),
		finishOf:   make([]atomic.Int32, n),
		treeInto:   make([]atomic.Int32, n),
		nonTree:    make([]atomic.Int32, n),
	}
}

func (c *Counter) InitializeVertex(int) error {
	c.initialized.Add(1)
	return nil
}

func (c *Counter) DiscoverVertex(v int) error {
	c.discovered.Add(1)
	c.discoverOf[v].Add(1)
	return nil
}

func (c *Counter) ExamineVertex(int) error {
	c.examined.Add(1)
	return nil
}

func (c *Counter) ExamineEdge(core.Edge) error {
	c.edgesExamined.Add(1)
	return nil
}

func (c *Counter) TreeEdge(e core.Edge) error {
	c.treeEdges.Add(1)
	c.treeInto[e.Target].Add(1)
	return nil
}

func (c *Counter) NonTreeEdge(e core.Edge) error {
	c.nonTreeEdges.Add(1)
	c.nonTree[e.Target].Add(1)
	return nil
}

func (c *Counter) GrayTarget(core.Edge) error {
	c.grayTargets.Add(1)
	return nil
}

func (c *Counter) BlackTarget(core.Edge) error {
	c.blackTargets.Add(1)
	return nil
}

func (c *Counter) FinishVertex(v int) error {
	c.finished.Add(1)
	c.finishOf[v].Add(1)
	return nil
}

// Counts returns the global totals.
func (c *Counter) Counts() Counts {
	return Counts{
		Initialized:   c.initialized.Load(),
		Discovered:    c.discovered.Load(),
		Examined:      c.examined.Load(),
		EdgesExamined: c.edgesExamined.Load(),
		TreeEdges:     c.treeEdges.Load(),
		NonTreeEdges:  c.nonTreeEdges.Load(),
		GrayTargets:   c.grayTargets.Load(),
		BlackTargets:  c.blackTargets.Load(),
		Finished:      c.finished.Load(),
	}
}

// Discovered returns how many times v was discovered.
func (c *Counter) Discovered(v int) int { return int(c.discoverOf[v].Load()) }

// Finished returns how many times v was finished.
func (c *Counter) Finished(v int) int { return int(c.finishOf[v].Load()) }

// TreeEdgesInto returns how many tree edges targeted v.
func (c *Counter) TreeEdgesInto(v int) int { return int(c.treeInto[v].Load()) }

// NonTreeEdgesInto returns how many non-tree edges targeted v.
func (c *Counter) NonTreeEdgesInto(v int) int { return int(c.nonTree[v].Load()) }

// FinishedVertices returns, in ascending order, every vertex finished at least once.
func (c *Counter) FinishedVertices() []int {
	var out []int
	for v := range c.finishOf {
		if c.finishOf[v].Load() > 0 {
			out = append(out, v)
		}
	}
	return out
}
