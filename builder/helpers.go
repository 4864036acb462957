// SPDX-License-Identifier: MIT
// Package: parbfs/builder
//
// helpers.go — shared validation and edge emission.

package builder

import "github.com/katalvlaran/parbfs/core"

// link emits u→v, or u↔v when the config is symmetric, wrapping failures
// with the constructor name.
func link(g *core.Digraph, cfg builderConfig, method string, u, v int) error {
	var err error
	if cfg.symmetric {
		err = g.AddBidirectional(u, v)
	} else {
		err = g.AddEdge(u, v)
	}
	if err != nil {
		return builderErrorf(method, "AddEdge(%d→%d): %w", u, v, err)
	}
	return nil
}

// validateMin returns ErrTooFewVertices when x < min.
func validateMin(method, name string, x, min int) error {
	if x < min {
		return builderErrorf(method, "%s=%d < min=%d: %w", name, x, min, ErrTooFewVertices)
	}
	return nil
}
