package bfs

import (
	"fmt"
	"sync/atomic"
)

// Color is the per-vertex traversal state.
type Color uint32

const (
	// White: undiscovered.
	White Color = iota
	// Gray: discovered, edges not yet fully examined.
	Gray
	// Black: every out-edge has been classified.
	Black
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint32(c))
	}
}

// ColorMap is the shared per-run color array: one atomic cell per vertex.
//
// The only legal transitions are White→Gray through Claim, which any number
// of goroutines may race on, and Gray→Black through Finish, performed only by
// the goroutine that won the claim. A ColorMap is valid for a single run.
type ColorMap struct {
	cells []atomic.Uint32
}

// NewColorMap returns a color array of n White cells.
func NewColorMap(n int) *ColorMap {
	if n < 0 {
		n = 0
	}
	return &ColorMap{cells: make([]atomic.Uint32, n)}
}

// Len returns the number of cells.
func (m *ColorMap) Len() int { return len(m.cells) }

// Claim atomically moves v from White to Gray. Exactly one of any set of
// concurrent callers for the same v observes true; a false result is the
// normal outcome of losing the race or of v being discovered earlier.
func (m *ColorMap) Claim(v int) bool {
	return m.cells[v].CompareAndSwap(uint32(White), uint32(Gray))
}

// Finish moves v to Black. Only the claimant of v may call it.
func (m *ColorMap) Finish(v int) {
	// Single writer; the atomic store only publishes the value to concurrent
	// readers classifying edges into v.
	m.cells[v].Store(uint32(Black))
}

// Color returns the current color of v.
func (m *ColorMap) Color(v int) Color {
	return Color(m.cells[v].Load())
}

// Count returns how many vertices currently have color c.
func (m *ColorMap) Count(c Color) int {
	n := 0
	for i := range m.cells {
		if Color(m.cells[i].Load()) == c {
			n++
		}
	}
	return n
}

// Vertices returns, in ascending order, the vertices that currently have color c.
func (m *ColorMap) Vertices(c Color) []int {
	var out []int
	for i := range m.cells {
		if Color(m.cells[i].Load()) == c {
			out = append(out, i)
		}
	}
	return out
}

// fresh reports whether every cell is White.
func (m *ColorMap) fresh() bool {
	return m.Count(White) == len(m.cells)
}
