// Package core provides the read-only graph capability consumed by every
// traversal engine, plus Digraph, a thread-safe in-memory directed adjacency
// list over dense integer vertex indices.
//
// Graph capability:
//
//	type Graph interface {
//	    VertexCount() int        // vertices are 0..VertexCount()-1
//	    OutEdges(v int) []Edge   // (v, target) pairs, stable order
//	}
//
// Any type satisfying Graph can be traversed; engines only borrow it and never
// mutate it. Out-of-range indices yield an empty edge slice rather than an error:
// validating the start vertex is the engine's job.
//
// Digraph:
//
//   - Vertices are identified by index in insertion order (0, 1, 2, ...).
//   - Out-edges are kept in insertion order, so OutEdges is deterministic.
//   - Self-loops are rejected unless WithLoops() is set (ErrLoopNotAllowed).
//   - Parallel edges are rejected unless WithMultiEdges() is set (ErrMultiEdgeNotAllowed).
//   - A single sync.RWMutex guards the adjacency so construction may happen from
//     several goroutines; traversals only take the read lock.
//
// Usage:
//
//	g := core.NewDigraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(0, 2)
//	_ = g.AddEdge(1, 3)
//	_ = g.AddEdge(2, 3)
//	for _, e := range g.OutEdges(0) {
//	    fmt.Println(e.Source, "->", e.Target)
//	}
//
// Complexity (V = vertices, E = edges):
//
//   - AddVertex, OutEdges, OutDegree: O(1)
//   - AddEdge: O(1), or O(deg(from)) when multi-edges are disallowed
//   - Edges: O(V + E)
package core
