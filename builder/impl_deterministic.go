// SPDX-License-Identifier: MIT
// Package: parbfs/builder
//
// impl_deterministic.go — fixed topologies.
//
// Contract:
//   • Each constructor appends a fresh block of vertices; offsets are local.
//   • Edge emission order is fixed, so OutEdges order is reproducible.
//   • Parameters are validated before the graph is touched.

package builder

import "github.com/katalvlaran/parbfs/core"

const (
	methodIsolated   = "Isolated"
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodBinaryTree = "BinaryTree"
	methodGrid       = "Grid"
	methodComplete   = "Complete"
)

// Isolated appends n vertices without edges.
// Useful for unreachable components. Requires n ≥ 1.
func Isolated(n int) Constructor {
	return func(g *core.Digraph, _ builderConfig) error {
		if err := validateMin(methodIsolated, "n", n, 1); err != nil {
			return err
		}
		g.AddVertices(n)

		return nil
	}
}

// Path appends the chain 0→1→…→n-1. Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, 1); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle appends the ring 0→1→…→n-1→0. Requires n ≥ 2.
// In symmetric mode a 2-cycle is a single bidirectional pair.
func Cycle(n int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, 2); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if cfg.symmetric && n == 2 && i == 1 {
				break
			}
			if err := link(g, cfg, methodCycle, base+i, base+j); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star appends a hub (the first new vertex) with edges to n-1 leaves.
// Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, 2); err != nil {
			return err
		}
		hub := g.AddVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := link(g, cfg, methodStar, hub, hub+leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// BinaryTree appends a complete binary tree of the given depth
// (2^(depth+1)-1 vertices). Vertex i links to 2i+1 and 2i+2, so BFS from the
// root visits vertices in index order. Requires depth ≥ 0.
func BinaryTree(depth int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodBinaryTree, "depth", depth, 0); err != nil {
			return err
		}
		n := 1<<(depth+1) - 1
		base := g.AddVertices(n)
		for i := 0; 2*i+1 < n; i++ {
			for _, c := range [2]int{2*i + 1, 2*i + 2} {
				if err := link(g, cfg, methodBinaryTree, base+i, base+c); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid appends a rows×cols lattice in row-major order with edges to the
// right neighbour and to the neighbour below. Requires rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, 1); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, 1); err != nil {
			return err
		}
		base := g.AddVertices(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete appends n vertices with every ordered pair i≠j linked.
// In symmetric mode pairs are emitted once (i<j) as bidirectional edges.
// Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, 1); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.symmetric && j < i) {
					continue
				}
				if err := link(g, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
