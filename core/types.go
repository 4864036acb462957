// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph capability, Edge, Digraph storage, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex index outside 0..VertexCount()-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeCount indicates a negative vertex count was requested.
	ErrNegativeCount = errors.New("core: negative vertex count")
)

// Edge is a directed edge Source→Target between two vertex indices.
type Edge struct {
	// Source is the tail of the edge (the vertex whose out-edges contain it).
	Source int

	// Target is the head of the edge.
	Target int
}

// Graph is the read-only adjacency capability every traversal engine consumes.
//
// Implementations must be safe for concurrent readers and must not change
// while a traversal is running. OutEdges must return the same sequence for the
// same vertex for the lifetime of a traversal; callers must not modify it.
type Graph interface {
	// VertexCount returns N; valid vertex indices are 0..N-1.
	VertexCount() int

	// OutEdges returns the outgoing edges of v as (v, target) pairs.
	// Out-of-range v yields an empty slice.
	OutEdges(v int) []Edge
}

// GraphOption configures a Digraph at construction time.
type GraphOption func(g *Digraph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Digraph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Digraph) { g.allowMulti = true }
}

// Digraph is an in-memory directed graph over dense vertex indices.
//
// mu guards out and edgeCount. Configuration flags are immutable after
// NewDigraph returns.
type Digraph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage: out[v] holds v's out-edges in insertion order.
	out       [][]Edge
	edgeCount int
}

// Compile-time check that Digraph satisfies the Graph capability.
var _ Graph = (*Digraph)(nil)

// NewDigraph creates a directed graph with n isolated vertices 0..n-1.
// A negative n is treated as zero.
// Complexity: O(n)
func NewDigraph(n int, opts ...GraphOption) *Digraph {
	if n < 0 {
		n = 0
	}
	g := &Digraph{out: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDigraphFromEdges creates a directed graph with n vertices and the given
// edges added in order. The first rejected edge aborts construction.
// Complexity: O(n + len(edges)) amortized.
func NewDigraphFromEdges(n int, edges []Edge, opts ...GraphOption) (*Digraph, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := NewDigraph(n, opts...)
	for _, e := range edges {
		if err := g.AddEdge(e.Source, e.Target); err != nil {
			return nil, err
		}
	}

	return g, nil
}
