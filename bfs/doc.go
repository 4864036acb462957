// Package bfs provides breadth-first traversal of a core.Graph driven by a
// Visitor, with one sequential reference engine and two concurrent engines
// that must agree with it on reachability and shortest-path distances.
//
// What
//
//   - Sequential: single goroutine, FIFO queue. Defines ground truth; its
//     discovery order is the standard FIFO BFS order.
//   - Level: level-synchronous and unbounded. One goroutine per vertex of the
//     current frontier, a hard barrier between levels.
//   - Pool: a fixed pool of K workers fed by a depth-tagged FIFO under an
//     admission ceiling, so a deeper vertex never starts while shallower
//     claimed vertices are still unscheduled.
//
// All engines share the same per-vertex body and the same tri-color state
// machine (ColorMap). A vertex moves White→Gray exactly once through an atomic
// compare-and-swap claim; exactly one racing claimant wins and fires TreeEdge
// and DiscoverVertex. The owning worker later moves it Gray→Black and fires
// FinishVertex.
//
// Visitor protocol
//
//	InitializeVertex          once per vertex, before traversal
//	DiscoverVertex            once, on White→Gray
//	ExamineVertex             once, when a worker starts the vertex
//	  per out-edge:
//	  ExamineEdge
//	  TreeEdge + DiscoverVertex(target)        target claimed
//	  NonTreeEdge + GrayTarget                 target already Gray
//	  NonTreeEdge + BlackTarget                target already Black
//	FinishVertex              once, on Gray→Black
//
// The concurrent engines call hooks for different vertices concurrently.
// Visitors that share state across vertices must synchronize it themselves.
//
// Usage
//
//	dist := visitors.NewDistance(g.VertexCount())
//	if err := bfs.Level(g, 0, dist); err != nil {
//	    // ErrGraphNil, ErrVisitorNil, ErrEmptyGraph, ErrStartOutOfRange,
//	    // ErrOptionViolation, ErrWorkerPanic or a wrapped visitor error
//	}
//
//	err := bfs.Pool(g, 0, dist, 4, bfs.WithLogger(logger))
//
// Options
//
//   - WithContext(ctx): parent context for trace spans. Traversal is never
//     cancelled; it always runs to completion or to the first error.
//   - WithLogger(l):    debug logging of levels and summaries.
//   - WithColors(m):    caller-owned, fresh ColorMap inspected after the run.
//
// Errors
//
//   - Precondition violations are returned before any worker starts.
//   - A visitor error abandons the faulting vertex. Level lets the other workers
//     of the level finish; Pool stops admitting and drains in-flight workers.
//   - A panic inside a worker is recovered and returned as ErrWorkerPanic.
//
// Complexity (V = reachable vertices, E = their out-edges)
//
//   - Work:   O(V + E) for every engine.
//   - Memory: O(N) colors plus O(frontier) or O(pending) queue space.
package bfs
