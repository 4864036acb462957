package visitors

import (
	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/core"
)

// Unreached is the distance of a vertex that was never discovered.
const Unreached = -1

// Distance records, for every vertex, the number of edges on its BFS tree
// path from the start vertex.
//
// The start vertex is the only vertex discovered without a tree edge; it gets
// distance 0 in DiscoverVertex. Every other vertex gets dist[source]+1 in
// TreeEdge.
type Distance struct {
	bfs.BaseVisitor
	dist []int
}

var _ bfs.Visitor = (*Distance)(nil)

// NewDistance returns a Distance visitor sized for n vertices.
func NewDistance(n int) *Distance {
	return &Distance{dist: make([]int, n)}
}

// InitializeVertex marks v unreached.
func (d *Distance) InitializeVertex(v int) error {
	d.dist[v] = Unreached
	return nil
}

// DiscoverVertex assigns distance 0 to a vertex discovered without a tree edge.
func (d *Distance) DiscoverVertex(v int) error {
	if d.dist[v] == Unreached {
		d.dist[v] = 0
	}
	return nil
}

// TreeEdge sets the target's distance one past its source's.
func (d *Distance) TreeEdge(e core.Edge) error {
	d.dist[e.Target] = d.dist[e.Source] + 1
	return nil
}

// Distances returns a copy of the distance vector; unreached vertices hold Unreached.
func (d *Distance) Distances() []int {
	out := make([]int, len(d.dist))
	copy(out, d.dist)
	return out
}

// Of returns v's distance and whether v was reached.
func (d *Distance) Of(v int) (int, bool) {
	if v < 0 || v >= len(d.dist) || d.dist[v] == Unreached {
		return Unreached, false
	}
	return d.dist[v], true
}

// Map returns the distances of reached vertices only.
func (d *Distance) Map() map[int]int {
	m := make(map[int]int)
	for v, x := range d.dist {
		if x != Unreached {
			m[v] = x
		}
	}
	return m
}

// Levels returns the number of reached vertices at each distance:
// Levels()[k] is the size of BFS level k.
func (d *Distance) Levels() []int {
	var freq []int
	for _, x := range d.dist {
		if x == Unreached {
			continue
		}
		for len(freq) <= x {
			freq = append(freq, 0)
		}
		freq[x]++
	}
	return freq
}
