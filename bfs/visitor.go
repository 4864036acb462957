package bfs

import "github.com/katalvlaran/parbfs/core"

// Visitor observes traversal events. Every hook may return an error, which
// aborts processing of the current vertex and is propagated to the caller.
//
// Per-vertex hook order is fixed (see package doc). Across vertices, the
// concurrent engines make no ordering promise other than causality through
// the claim: a vertex is always discovered before it is examined.
type Visitor interface {
	// InitializeVertex is called once for every vertex before traversal starts.
	InitializeVertex(v int) error

	// DiscoverVertex is called once when v moves White→Gray.
	DiscoverVertex(v int) error

	// ExamineVertex is called once when a worker starts examining v's edges.
	ExamineVertex(v int) error

	// ExamineEdge is called for every out-edge of an examined vertex.
	ExamineEdge(e core.Edge) error

	// TreeEdge is called when e's target was claimed through e.
	TreeEdge(e core.Edge) error

	// NonTreeEdge is called when e's target had already been discovered.
	NonTreeEdge(e core.Edge) error

	// GrayTarget follows NonTreeEdge when the target was Gray.
	GrayTarget(e core.Edge) error

	// BlackTarget follows NonTreeEdge when the target was Black.
	BlackTarget(e core.Edge) error

	// FinishVertex is called once when v moves Gray→Black.
	FinishVertex(v int) error
}

// BaseVisitor implements every Visitor hook as a no-op. Embed it and
// override only the hooks you need.
type BaseVisitor struct{}

var _ Visitor = BaseVisitor{}

func (BaseVisitor) InitializeVertex(int) error  { return nil }
func (BaseVisitor) DiscoverVertex(int) error    { return nil }
func (BaseVisitor) ExamineVertex(int) error     { return nil }
func (BaseVisitor) ExamineEdge(core.Edge) error { return nil }
func (BaseVisitor) TreeEdge(core.Edge) error    { return nil }
func (BaseVisitor) NonTreeEdge(core.Edge) error { return nil }
func (BaseVisitor) GrayTarget(core.Edge) error  { return nil }
func (BaseVisitor) BlackTarget(core.Edge) error { return nil }
func (BaseVisitor) FinishVertex(int) error      { return nil }
