// Package bench is the timing and correctness harness for the BFS engines.
//
// A suite is a list of cases: seeded RandomRarity graphs over a grid of
// vertex counts and edge rarities, plus edge-list datasets. For every case
// the Runner picks a start vertex, runs each configured engine once with a
// fresh visitors.Distance, times it and compares the distance vector with
// the first (reference) engine. Results go to three CSV files per case
// family (see Reporter) and to Prometheus metrics (see Metrics).
//
// Engines are named "sequential", "level" or "pool:K".
package bench
