// SPDX-License-Identifier: MIT
// Package: parbfs/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil    (random constructors fail with ErrNeedRandSource)
//   • symmetric = false  (one directed edge per emitted pair)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// symmetric mirrors every emitted edge u→v with v→u.
	symmetric bool
}

// newBuilderConfig applies options in order on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
