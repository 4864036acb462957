// Package builder provides deterministic and seeded constructors for
// core.Digraph fixtures used by tests, examples and the benchmark harness.
//
// Constructors are composed through BuildGraph. Each one appends its own
// block of fresh vertices, so composing several constructors yields their
// disjoint union (useful for disconnected-graph scenarios):
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomRarity(1000, 10), // vertices 0..999
//	    builder.Isolated(5),            // vertices 1000..1004, unreachable
//	)
//
// Topologies:
//
//   - Isolated(n)        n vertices, no edges.
//   - Path(n)            0→1→…→n-1.
//   - Cycle(n)           0→1→…→n-1→0.
//   - Star(n)            hub (first vertex) → n-1 leaves.
//   - BinaryTree(depth)  complete binary tree, parent i → 2i+1, 2i+2.
//   - Grid(rows, cols)   row-major grid, edges right and down.
//   - Complete(n)        every ordered pair i≠j.
//   - RandomSparse(n,p)  every ordered pair i≠j independently with probability p.
//   - RandomRarity(n,r)  degree-damped generator: for each vertex i, candidates j
//     in shuffled order are linked with probability 1/(r·outdeg(i)+1).
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): RNG for the random constructors (required).
//   - WithSymmetric(): every edge is inserted in both directions.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (check with errors.Is).
package builder
