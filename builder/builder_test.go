// File: builder_test.go
// Package builder_test checks topology, counts and determinism of every
// Constructor, plus parameter validation.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parbfs/builder"
	"github.com/katalvlaran/parbfs/core"
)

// build is a shorthand for BuildGraph with default graph options.
func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Digraph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)
	return g
}

// TestBuilders_Functional runs table-driven functional tests for each deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		sym         bool
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Digraph)
	}{
		{
			name: "Isolated(4)", ctor: builder.Isolated(4),
			wantV: 4, wantE: 0,
		},
		{
			name: "Path(5)", ctor: builder.Path(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Digraph) {
				for i := 0; i < 4; i++ {
					assert.True(t, g.HasEdge(i, i+1))
					assert.False(t, g.HasEdge(i+1, i))
				}
			},
		},
		{
			name: "Path(5) symmetric", ctor: builder.Path(5), sym: true,
			wantV: 5, wantE: 8,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Digraph) {
				assert.True(t, g.HasEdge(4, 0))
			},
		},
		{
			name: "Cycle(2) symmetric", ctor: builder.Cycle(2), sym: true,
			wantV: 2, wantE: 2,
		},
		{
			name: "Star(6)", ctor: builder.Star(6),
			wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Digraph) {
				assert.Equal(t, 5, g.OutDegree(0))
				for leaf := 1; leaf < 6; leaf++ {
					assert.Equal(t, 0, g.OutDegree(leaf))
				}
			},
		},
		{
			name: "BinaryTree(3)", ctor: builder.BinaryTree(3),
			wantV: 15, wantE: 14,
			sampleCheck: func(t *testing.T, g *core.Digraph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 2))
				assert.True(t, g.HasEdge(6, 14))
			},
		},
		{
			name: "BinaryTree(0)", ctor: builder.BinaryTree(0),
			wantV: 1, wantE: 0,
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4),
			wantV: 12, wantE: 3*3 + 2*4,
			sampleCheck: func(t *testing.T, g *core.Digraph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 4))
				assert.False(t, g.HasEdge(3, 4))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name: "Complete(4) symmetric", ctor: builder.Complete(4), sym: true,
			wantV: 4, wantE: 12,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var opts []builder.BuilderOption
			if tc.sym {
				opts = append(opts, builder.WithSymmetric())
			}
			g := build(t, opts, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_DisjointUnion verifies that composed constructors occupy
// consecutive vertex blocks without cross edges.
func TestBuildGraph_DisjointUnion(t *testing.T) {
	g := build(t, nil, builder.Path(3), builder.Isolated(2), builder.Star(3))
	require.Equal(t, 8, g.VertexCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 0, g.OutDegree(3))
	assert.Equal(t, 0, g.OutDegree(4))
	assert.True(t, g.HasEdge(5, 6))
	assert.True(t, g.HasEdge(5, 7))
	assert.Equal(t, 2+0+2, g.EdgeCount())
}

func TestRandom_Deterministic(t *testing.T) {
	for _, ctor := range map[string]func() builder.Constructor{
		"sparse": func() builder.Constructor { return builder.RandomSparse(40, 0.1) },
		"rarity": func() builder.Constructor { return builder.RandomRarity(40, 3) },
	} {
		a := build(t, []builder.BuilderOption{builder.WithSeed(42)}, ctor())
		b := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, ctor())
		assert.Equal(t, a.Edges(), b.Edges())
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	none := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10, 0))
	assert.Zero(t, none.EdgeCount())

	all := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10, 1))
	assert.Equal(t, 90, all.EdgeCount())
}

func TestRandomRarity_Shape(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRarity(200, 10))
	require.Equal(t, 200, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		assert.GreaterOrEqual(t, g.OutDegree(v), 1, "vertex %d", v)
		assert.False(t, g.HasEdge(v, v))
	}

	// rarity 0 accepts every candidate.
	dense := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRarity(12, 0))
	assert.Equal(t, 12*11, dense.EdgeCount())

	sparse := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRarity(200, 50))
	assert.Less(t, sparse.EdgeCount(), g.EdgeCount())
}

func TestRandomRarity_Symmetric(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3), builder.WithSymmetric()}, builder.RandomRarity(60, 5))
	for _, e := range g.Edges() {
		assert.True(t, g.HasEdge(e.Target, e.Source), "missing mirror of %v", e)
	}
}

func TestBuilders_Errors(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Isolated(0)", nil, builder.Isolated(0), builder.ErrTooFewVertices},
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(1)", nil, builder.Cycle(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"BinaryTree(-1)", nil, builder.BinaryTree(-1), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid(3,0)", nil, builder.Grid(3, 0), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse p>1", seed, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse p<0", seed, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomRarity negative", seed, builder.RandomRarity(5, -1), builder.ErrInvalidRarity},
		{"RandomRarity no rng", nil, builder.RandomRarity(5, 1), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
