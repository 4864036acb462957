// SPDX-License-Identifier: MIT
// Package: parbfs/builder
//
// impl_random.go — seeded random topologies.
//
// Contract:
//   • cfg.rng must be set (WithSeed / WithRand), else ErrNeedRandSource.
//   • The RNG is consumed in a fixed order, so a seed reproduces the graph.

package builder

import "github.com/katalvlaran/parbfs/core"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomRarity = "RandomRarity"
)

// RandomSparse appends n vertices and links each ordered pair i≠j
// independently with probability p (Erdős–Rényi G(n,p), directed).
// In symmetric mode only pairs i<j are drawn.
// Requires n ≥ 1, 0 ≤ p ≤ 1 and an RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%.4f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.symmetric && j < i) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRarity appends n vertices and grows their out-lists with a
// degree-damped rule: for each source i, every candidate j≠i is taken in a
// freshly shuffled order and linked with probability 1/(rarity·outdeg(i)+1).
// The first candidate is always taken, so every vertex gets at least one
// out-edge when n ≥ 2; larger rarity yields sparser graphs.
//
// In symmetric mode a pair that already carries an edge is skipped, and
// outdeg(i) counts mirrored edges as well.
// Requires n ≥ 1, rarity ≥ 0 and an RNG.
func RandomRarity(n int, rarity float64) Constructor {
	return func(g *core.Digraph, cfg builderConfig) error {
		if err := validateMin(methodRandomRarity, "n", n, 1); err != nil {
			return err
		}
		if rarity < 0 {
			return builderErrorf(methodRandomRarity, "rarity=%.4f: %w", rarity, ErrInvalidRarity)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomRarity, "%w", ErrNeedRandSource)
		}
		base := g.AddVertices(n)
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		for i := 0; i < n; i++ {
			cfg.rng.Shuffle(n, func(a, b int) { order[a], order[b] = order[b], order[a] })
			for _, j := range order {
				if j == i {
					continue
				}
				u, v := base+i, base+j
				if cfg.symmetric && g.HasEdge(u, v) {
					continue
				}
				deg := float64(g.OutDegree(u))
				if cfg.rng.Float64() >= 1/(rarity*deg+1) {
					continue
				}
				if err := link(g, cfg, methodRandomRarity, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
