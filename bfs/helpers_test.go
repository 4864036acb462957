package bfs_test

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/builder"
	"github.com/katalvlaran/parbfs/core"
)

// engines lists every engine under test by name, including pools of 1..8 workers.
func engines() []struct {
	name string
	run  bfs.Engine
} {
	out := []struct {
		name string
		run  bfs.Engine
	}{
		{"sequential", bfs.Sequential},
		{"level", bfs.Level},
	}
	for k := 1; k <= 8; k++ {
		out = append(out, struct {
			name string
			run  bfs.Engine
		}{fmt.Sprintf("pool:%d", k), bfs.PoolEngine(k)})
	}
	return out
}

// diamond is 0→1, 0→2, 1→3, 2→3.
func diamond() *core.Digraph {
	g, err := core.NewDigraphFromEdges(4, []core.Edge{
		{Source: 0, Target: 1},
		{Source: 0, Target: 2},
		{Source: 1, Target: 3},
		{Source: 2, Target: 3},
	})
	if err != nil {
		panic(err)
	}
	return g
}

// randomGraph builds a seeded degree-damped digraph with a few isolated
// vertices appended so that some vertices stay unreachable.
func randomGraph(seed int64, n int, rarity float64) *core.Digraph {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomRarity(n, rarity),
		builder.Isolated(3),
	)
	if err != nil {
		panic(err)
	}
	return g
}

// recorder logs every hook call as a string, in call order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...any) error {
	r.mu.Lock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
	r.mu.Unlock()
	return nil
}

func (r *recorder) InitializeVertex(v int) error  { return r.add("init %d", v) }
func (r *recorder) DiscoverVertex(v int) error    { return r.add("discover %d", v) }
func (r *recorder) ExamineVertex(v int) error     { return r.add("examine %d", v) }
func (r *recorder) ExamineEdge(e core.Edge) error { return r.add("edge %d-%d", e.Source, e.Target) }
func (r *recorder) TreeEdge(e core.Edge) error    { return r.add("tree %d-%d", e.Source, e.Target) }
func (r *recorder) NonTreeEdge(e core.Edge) error { return r.add("nontree %d-%d", e.Source, e.Target) }
func (r *recorder) GrayTarget(e core.Edge) error  { return r.add("gray %d-%d", e.Source, e.Target) }
func (r *recorder) BlackTarget(e core.Edge) error { return r.add("black %d-%d", e.Source, e.Target) }
func (r *recorder) FinishVertex(v int) error      { return r.add("finish %d", v) }

// stamps records a global sequence number at ExamineVertex and FinishVertex.
type stamps struct {
	bfs.BaseVisitor
	clock    atomic.Int64
	examined []int64
	finished []int64
}

func newStamps(n int) *stamps {
	return &stamps{examined: make([]int64, n), finished: make([]int64, n)}
}

func (s *stamps) ExamineVertex(v int) error {
	s.examined[v] = s.clock.Add(1)
	return nil
}

func (s *stamps) FinishVertex(v int) error {
	s.finished[v] = s.clock.Add(1)
	return nil
}

// failAt returns err from the hook named hook when it fires for vertex v
// (for edge hooks: when the edge's source is v).
type failAt struct {
	bfs.BaseVisitor
	hook string
	v    int
	err  error
}

func (f failAt) check(hook string, v int) error {
	if hook == f.hook && v == f.v {
		return f.err
	}
	return nil
}

func (f failAt) InitializeVertex(v int) error  { return f.check("init", v) }
func (f failAt) DiscoverVertex(v int) error    { return f.check("discover", v) }
func (f failAt) ExamineVertex(v int) error     { return f.check("examine", v) }
func (f failAt) ExamineEdge(e core.Edge) error { return f.check("edge", e.Source) }
func (f failAt) TreeEdge(e core.Edge) error    { return f.check("tree", e.Source) }
func (f failAt) FinishVertex(v int) error      { return f.check("finish", v) }

// panicAt panics when examining v.
type panicAt struct {
	bfs.BaseVisitor
	v int
}

func (p panicAt) ExamineVertex(v int) error {
	if v == p.v {
		panic("boom")
	}
	return nil
}
