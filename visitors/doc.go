// Package visitors provides ready-made bfs.Visitor implementations for
// recording traversal attributes.
//
//   - Distance:      unweighted shortest-path distance via tree-edge bookkeeping.
//   - DiscoveryTime: global discovery sequence number per vertex.
//   - Parent:        BFS tree parent per vertex, with PathTo.
//   - Counter:       per-hook totals and per-vertex discover/finish counts.
//   - Multi:         fans every hook out to several visitors in order.
//
// All of them are safe for the concurrent engines. Distance and Parent write
// a vertex's cell only from the goroutine that claimed it and read a source's
// cell only from the goroutine that owns the source; the engines order those
// accesses, so no extra locking is needed. DiscoveryTime and Counter use atomics.
//
// A visitor instance holds one run's state. Use a fresh instance per run.
package visitors
