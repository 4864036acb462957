// Package parbfs is a breadth-first search toolkit with one sequential
// reference engine and two parallel engines that share the same visitor
// protocol and produce the same BFS levels.
//
// 🚀 What is parbfs?
//
//	A small, thread-safe library plus a benchmark CLI:
//		• Graph capability: core.Graph (VertexCount, OutEdges) and core.Digraph
//		• Visitor protocol: nine hooks, from InitializeVertex to FinishVertex
//		• Engines: bfs.Sequential, bfs.Level (goroutine per frontier vertex),
//		  bfs.Pool (K workers with level-ordered admission)
//		• Visitors: distance, discovery time, parent/path, counters, fan-out
//		• Fixtures: builder constructors incl. the degree-damped RandomRarity
//		• Harness: loader, bench and cmd/bfsbench (CSV reports, Prometheus, OTel)
//
// Under the hood:
//
//	core/               Graph interface, Edge, Digraph
//	bfs/                color map, visitor protocol, the three engines
//	visitors/           ready-made visitors
//	builder/            deterministic and seeded graph constructors
//	loader/             edge-list datasets
//	bench/              suite config, runner, reports, metrics
//	cmd/bfsbench/       CLI
//	internal/logging/   slog setup
//
// Quick ASCII example (a diamond):
//
//	      0
//	     ╱ ╲
//	    1   2
//	     ╲ ╱
//	      3
//
//	0→1 and 0→2 are tree edges; of 1→3 and 2→3 exactly one is a tree edge,
//	the other a non-tree edge into a Gray or Black vertex. Every engine
//	assigns distances 0, 1, 1, 2.
//
//	go get github.com/katalvlaran/parbfs
package parbfs
