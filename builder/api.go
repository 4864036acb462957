// SPDX-License-Identifier: MIT
// Package: parbfs/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own vertex block; composition is a disjoint union.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parbfs/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before adding anything and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Digraph, cfg builderConfig) error

// BuildGraph creates an empty core.Digraph with graph options gopts, resolves
// the builder configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned at once.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Digraph, error) {
	g := core.NewDigraph(0, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
