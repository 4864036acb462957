package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/builder"
	"github.com/katalvlaran/parbfs/visitors"
)

// BenchmarkEngines_Rarity compares the engines on a 10k-vertex degree-damped graph.
func BenchmarkEngines_Rarity(b *testing.B) {
	g := randomGraph(1, 10000, 10)
	V, E := g.VertexCount(), g.EdgeCount()

	for _, e := range []struct {
		name string
		run  bfs.Engine
	}{
		{"sequential", bfs.Sequential},
		{"level", bfs.Level},
		{"pool:2", bfs.PoolEngine(2)},
		{"pool:4", bfs.PoolEngine(4)},
		{"pool:8", bfs.PoolEngine(8)},
	} {
		b.Run(e.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(V + E))
			for i := 0; i < b.N; i++ {
				_ = e.run(g, 0, visitors.NewDistance(V))
			}
		})
	}
}

// BenchmarkPool_BinaryTree runs the pool on a complete binary tree of depth D.
func BenchmarkPool_BinaryTree(b *testing.B) {
	const depth = 14
	g, err := builder.BuildGraph(nil, nil, builder.BinaryTree(depth))
	if err != nil {
		b.Fatal(err)
	}

	for _, k := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = bfs.Pool(g, 0, bfs.BaseVisitor{}, k)
			}
		})
	}
}
