// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and queries.
// Determinism:
//   - OutEdges(v) and Edges() preserve insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddEdge inserts the directed edge from→to.
//
// Steps:
//  1. Lock mu.
//  2. Validate both endpoints (ErrVertexNotFound).
//  3. Reject self-loops unless allowed (ErrLoopNotAllowed).
//  4. Reject parallel edges unless allowed (ErrMultiEdgeNotAllowed).
//  5. Append to out[from].
//
// Complexity: O(1) amortized with multi-edges, O(deg(from)) otherwise.
func (g *Digraph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(from, to)
}

// AddBidirectional inserts u→v and v→u atomically with respect to other
// writers. A self-loop is inserted once.
func (g *Digraph) AddBidirectional(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.addEdgeLocked(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.addEdgeLocked(v, u)
}

// addEdgeLocked performs AddEdge; caller must hold mu for writing.
func (g *Digraph) addEdgeLocked(from, to int) error {
	n := len(g.out)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrVertexNotFound
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.Target == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}
	g.out[from] = append(g.out[from], Edge{Source: from, Target: to})
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from))
func (g *Digraph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) {
		return false
	}
	for _, e := range g.out[from] {
		if e.Target == to {
			return true
		}
	}

	return false
}

// OutEdges returns v's out-edges in insertion order, or nil for an unknown
// vertex. The returned slice is shared with the graph and must not be modified;
// later insertions never alter an already returned slice.
// Complexity: O(1)
func (g *Digraph) OutEdges(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.out) {
		return nil
	}
	// Cap the slice so a caller's append cannot write into our backing array.
	edges := g.out[v]

	return edges[:len(edges):len(edges)]
}

// Edges returns a copy of all edges, ordered by source vertex and then by
// insertion order.
// Complexity: O(V + E)
func (g *Digraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := make([]Edge, 0, g.edgeCount)
	for _, edges := range g.out {
		all = append(all, edges...)
	}

	return all
}

// EdgeCount returns the total number of edges.
// Complexity: O(1)
func (g *Digraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
