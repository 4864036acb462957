package visitors

import (
	"fmt"

	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/core"
)

// NoParent marks the start vertex and unreached vertices in Parent.
const NoParent = -1

// Parent records the BFS tree: the source of the tree edge that discovered
// each vertex.
type Parent struct {
	bfs.BaseVisitor
	parent     []int
	discovered []bool
}

var _ bfs.Visitor = (*Parent)(nil)

// NewParent returns a Parent visitor sized for n vertices.
func NewParent(n int) *Parent {
	return &Parent{parent: make([]int, n), discovered: make([]bool, n)}
}

// InitializeVertex clears v's parent.
func (p *Parent) InitializeVertex(v int) error {
	p.parent[v] = NoParent
	p.discovered[v] = false
	return nil
}

// DiscoverVertex marks v as reached.
func (p *Parent) DiscoverVertex(v int) error {
	p.discovered[v] = true
	return nil
}

// TreeEdge records e.Source as the target's parent.
func (p *Parent) TreeEdge(e core.Edge) error {
	p.parent[e.Target] = e.Source
	return nil
}

// Parents returns a copy of the parent vector.
func (p *Parent) Parents() []int {
	out := make([]int, len(p.parent))
	copy(out, p.parent)
	return out
}

// PathTo reconstructs the tree path from the start vertex to dest.
// Returns an error if dest was not reached.
func (p *Parent) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(p.parent) || !p.discovered[dest] {
		return nil, fmt.Errorf("visitors: no path to %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur != NoParent; cur = p.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
