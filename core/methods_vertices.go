// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and counts.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Digraph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.out = append(g.out, nil)

	return len(g.out) - 1
}

// AddVertices appends k isolated vertices and returns the index of the first
// one. The new vertices are first..first+k-1. A non-positive k adds nothing
// and returns the current vertex count.
// Complexity: O(k) amortized.
func (g *Digraph) AddVertices(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.out)
	if k > 0 {
		g.out = append(g.out, make([][]Edge, k)...)
	}

	return first
}

// HasVertex reports whether v is a valid vertex index.
func (g *Digraph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.out)
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Digraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// OutDegree returns the number of out-edges of v, or 0 for an unknown vertex.
func (g *Digraph) OutDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.out) {
		return 0
	}

	return len(g.out[v])
}

// Looped reports whether self-loops are permitted.
func (g *Digraph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Digraph) Multigraph() bool { return g.allowMulti }
