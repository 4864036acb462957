package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/parbfs/core"
)

type DigraphSuite struct {
	suite.Suite
	g *core.Digraph
}

func (s *DigraphSuite) SetupTest() {
	// Four isolated vertices, no loops, no multi-edges; tests may override
	s.g = core.NewDigraph(4)
}

func (s *DigraphSuite) TestVertices() {
	require := require.New(s.T())
	require.Equal(4, s.g.VertexCount())
	require.True(s.g.HasVertex(0))
	require.True(s.g.HasVertex(3))
	require.False(s.g.HasVertex(4))
	require.False(s.g.HasVertex(-1))

	// AddVertex returns the next dense index
	require.Equal(4, s.g.AddVertex())
	// AddVertices returns the first index of the new block
	require.Equal(5, s.g.AddVertices(3))
	require.Equal(8, s.g.VertexCount())
	require.Equal(8, s.g.AddVertices(0), "k=0 adds nothing")
	require.Equal(8, s.g.VertexCount())
}

func (s *DigraphSuite) TestAddEdgeIsDirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	require.True(s.g.HasEdge(0, 1))
	require.False(s.g.HasEdge(1, 0), "edges are one-way")
	require.Equal(1, s.g.EdgeCount())
	require.Equal(1, s.g.OutDegree(0))
	require.Equal(0, s.g.OutDegree(1))
}

func (s *DigraphSuite) TestAddEdgeErrors() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(0, 9), core.ErrVertexNotFound)
	require.ErrorIs(s.g.AddEdge(-1, 0), core.ErrVertexNotFound)
	require.ErrorIs(s.g.AddEdge(2, 2), core.ErrLoopNotAllowed)
	require.NoError(s.g.AddEdge(0, 1))
	require.ErrorIs(s.g.AddEdge(0, 1), core.ErrMultiEdgeNotAllowed)
	require.Equal(1, s.g.EdgeCount(), "rejected edges are not stored")
}

func (s *DigraphSuite) TestLoopsAndMultiEdgesWhenAllowed() {
	require := require.New(s.T())
	g := core.NewDigraph(2, core.WithLoops(), core.WithMultiEdges())
	require.True(g.Looped())
	require.True(g.Multigraph())
	require.NoError(g.AddEdge(0, 0))
	require.NoError(g.AddEdge(0, 1))
	require.NoError(g.AddEdge(0, 1))
	require.Equal(3, g.OutDegree(0))
	require.Equal(3, g.EdgeCount())
}

func (s *DigraphSuite) TestAddBidirectional() {
	require := require.New(s.T())
	require.NoError(s.g.AddBidirectional(1, 2))
	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1))
	require.Equal(2, s.g.EdgeCount())

	g := core.NewDigraph(1, core.WithLoops())
	require.NoError(g.AddBidirectional(0, 0))
	require.Equal(1, g.EdgeCount(), "a bidirectional self-loop is stored once")
}

func (s *DigraphSuite) TestOutEdgesOrderAndIsolation() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 3))
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 2))

	edges := s.g.OutEdges(0)
	require.Equal([]core.Edge{{Source: 0, Target: 3}, {Source: 0, Target: 1}, {Source: 0, Target: 2}}, edges)

	// Appending to the returned slice must not leak into the graph
	_ = append(edges, core.Edge{Source: 0, Target: 0})
	require.Len(s.g.OutEdges(0), 3)

	require.Nil(s.g.OutEdges(42))
	require.Empty(s.g.OutEdges(1))
}

func (s *DigraphSuite) TestEdgesSnapshot() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(2, 3))
	require.NoError(s.g.AddEdge(0, 1))
	require.Equal([]core.Edge{{Source: 0, Target: 1}, {Source: 2, Target: 3}}, s.g.Edges())
}

func (s *DigraphSuite) TestFromEdges() {
	require := require.New(s.T())
	g, err := core.NewDigraphFromEdges(3, []core.Edge{{Source: 0, Target: 1}, {Source: 1, Target: 2}})
	require.NoError(err)
	require.Equal(2, g.EdgeCount())

	_, err = core.NewDigraphFromEdges(2, []core.Edge{{Source: 0, Target: 5}})
	require.ErrorIs(err, core.ErrVertexNotFound)

	_, err = core.NewDigraphFromEdges(-1, nil)
	require.ErrorIs(err, core.ErrNegativeCount)
}

func TestDigraphSuite(t *testing.T) {
	suite.Run(t, new(DigraphSuite))
}
