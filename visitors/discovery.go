package visitors

import (
	"sync/atomic"

	"github.com/katalvlaran/parbfs/bfs"
)

// DiscoveryTime stamps every vertex with a global sequence number taken at
// DiscoverVertex. Under the concurrent engines stamps are unique but their
// order within a level is not deterministic.
type DiscoveryTime struct {
	bfs.BaseVisitor
	times []int64
	clock atomic.Int64
}

var _ bfs.Visitor = (*DiscoveryTime)(nil)

// NewDiscoveryTime returns a DiscoveryTime visitor for n vertices whose
// first stamp is origin.
func NewDiscoveryTime(n int, origin int64) *DiscoveryTime {
	t := &DiscoveryTime{times: make([]int64, n)}
	t.clock.Store(origin)
	return t
}

// InitializeVertex marks v undiscovered (-1).
func (t *DiscoveryTime) InitializeVertex(v int) error {
	t.times[v] = -1
	return nil
}

// DiscoverVertex stamps v with the next sequence number.
func (t *DiscoveryTime) DiscoverVertex(v int) error {
	t.times[v] = t.clock.Add(1) - 1
	return nil
}

// Times returns a copy of the stamps; undiscovered vertices hold -1.
func (t *DiscoveryTime) Times() []int64 {
	out := make([]int64, len(t.times))
	copy(out, t.times)
	return out
}
