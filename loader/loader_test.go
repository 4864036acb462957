package loader_test

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parbfs/core"
	"github.com/katalvlaran/parbfs/loader"
)

func TestReadEdgeList_Directed(t *testing.T) {
	in := `# FromNodeId	ToNodeId
0	1
0 2

1	3	1510000000
`
	g, err := loader.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, []core.Edge{
		{Source: 0, Target: 1},
		{Source: 0, Target: 2},
		{Source: 1, Target: 3},
	}, g.Edges())
}

func TestReadEdgeList_UndirectedCSV(t *testing.T) {
	in := "id_1,id_2\n0,1\n1, 2\n2,2\n"
	g, err := loader.ReadEdgeList(strings.NewReader(in),
		loader.WithDelimiter(","), loader.WithUndirected(), loader.WithHeader(), loader.WithVertexCount(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(2, 1))
	assert.True(t, g.HasEdge(2, 2))
	assert.Equal(t, 5, g.EdgeCount())
	assert.Zero(t, g.OutDegree(4))
}

func TestReadEdgeList_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []loader.Option
		want error
		line string
	}{
		{"one field", "0 1\n7\n", nil, loader.ErrMalformedLine, "line 2"},
		{"not a number", "a b\n", nil, loader.ErrMalformedLine, "line 1"},
		{"negative", "0 -1\n", nil, loader.ErrMalformedLine, "line 1"},
		{"unskipped header", "id_1,id_2\n0,1\n", []loader.Option{loader.WithDelimiter(",")}, loader.ErrMalformedLine, "line 1"},
		{"out of range", "# c\n0 1\n1 9\n", []loader.Option{loader.WithVertexCount(3)}, loader.ErrVertexRange, "line 3"},
		{"huge index", "0 1\n0 100000000000000\n", nil, loader.ErrVertexRange, "line 2"},
		{"max int index", fmt.Sprintf("%d 0\n", math.MaxInt), nil, loader.ErrVertexRange, "line 1"},
		{"at implied limit", fmt.Sprintf("0 %d\n", loader.MaxImpliedVertices), nil, loader.ErrVertexRange, "line 1"},
		{"bad option", "0 1\n", []loader.Option{loader.WithVertexCount(-1)}, loader.ErrOptionViolation, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := loader.ReadEdgeList(strings.NewReader(tc.in), tc.opts...)
			assert.Nil(t, g)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestReadEdgeList_StrictGraph(t *testing.T) {
	_, err := loader.ReadEdgeList(strings.NewReader("0 1\n0 1\n"), loader.WithGraphOptions())
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestReadEdgeListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n"), 0o644))

	g, err := loader.ReadEdgeListFile(path, loader.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())

	_, err = loader.ReadEdgeListFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
