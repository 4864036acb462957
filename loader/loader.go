// Package loader reads edge-list datasets into a core.Digraph.
//
// The format is one edge per line, "u<delim>v", with zero-based vertex
// indices. Blank lines and lines starting with '#' are skipped; fields after
// the second are ignored (SNAP-style weight or timestamp columns). Header
// lines such as "id_1,id_2" are tolerated only when WithHeader is set.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parbfs/core"
)

// Sentinel errors.
var (
	// ErrMalformedLine is returned for a line that does not hold two indices.
	ErrMalformedLine = errors.New("loader: malformed edge line")

	// ErrVertexRange is returned when an index exceeds the fixed vertex count,
	// or MaxImpliedVertices when the count is taken from the data.
	ErrVertexRange = errors.New("loader: vertex index out of range")

	// ErrOptionViolation is returned for an invalid Option.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// MaxImpliedVertices caps the vertex count derived from the largest index.
// Larger graphs must state their size with WithVertexCount.
const MaxImpliedVertices = 1 << 26

// Option configures ReadEdgeList.
type Option func(*Options)

// Options holds the parsing parameters.
type Options struct {
	// VertexCount fixes the number of vertices. Zero means "max index + 1".
	VertexCount int

	// Delimiter separates the two indices. Empty means any run of whitespace.
	Delimiter string

	// Undirected adds v→u for every u→v read.
	Undirected bool

	// Header skips the first non-comment line.
	Header bool

	// GraphOptions are passed to core.NewDigraph.
	GraphOptions []core.GraphOption

	err error
}

// DefaultOptions returns whitespace-delimited, directed, header-less parsing
// with the vertex count taken from the data. Self-loops and parallel edges
// are accepted since real datasets carry them.
func DefaultOptions() Options {
	return Options{
		GraphOptions: []core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
	}
}

// WithVertexCount fixes the vertex count; indices ≥ n fail with ErrVertexRange.
func WithVertexCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: negative vertex count %d", ErrOptionViolation, n)
			return
		}
		o.VertexCount = n
	}
}

// WithDelimiter sets the field separator, e.g. "," for CSV edge lists.
func WithDelimiter(d string) Option {
	return func(o *Options) { o.Delimiter = d }
}

// WithUndirected mirrors every edge.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// WithHeader skips the first data line.
func WithHeader() Option {
	return func(o *Options) { o.Header = true }
}

// WithGraphOptions replaces the options used to create the graph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.GraphOptions = opts }
}

// ReadEdgeList parses r and builds the graph. Errors carry the 1-based line number.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Digraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		edges  []core.Edge
		maxIdx = -1
		header = o.Header
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if header {
			header = false
			continue
		}
		u, v, err := parseLine(text, o.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrMalformedLine, line, text, err)
		}
		if o.VertexCount > 0 && (u >= o.VertexCount || v >= o.VertexCount) {
			return nil, fmt.Errorf("%w: line %d: edge %d-%d, vertex count %d",
				ErrVertexRange, line, u, v, o.VertexCount)
		}
		if o.VertexCount == 0 && (u >= MaxImpliedVertices || v >= MaxImpliedVertices) {
			return nil, fmt.Errorf("%w: line %d: edge %d-%d, implied vertex count above %d",
				ErrVertexRange, line, u, v, MaxImpliedVertices)
		}
		maxIdx = max(maxIdx, u, v)
		edges = append(edges, core.Edge{Source: u, Target: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	n := o.VertexCount
	if n == 0 {
		n = maxIdx + 1
	}
	g := core.NewDigraph(n, o.GraphOptions...)
	for _, e := range edges {
		var err error
		if o.Undirected {
			err = g.AddBidirectional(e.Source, e.Target)
		} else {
			err = g.AddEdge(e.Source, e.Target)
		}
		if err != nil {
			return nil, fmt.Errorf("loader: edge %d-%d: %w", e.Source, e.Target, err)
		}
	}

	return g, nil
}

// ReadEdgeListFile opens path and calls ReadEdgeList.
func ReadEdgeListFile(path string, opts ...Option) (*core.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return ReadEdgeList(f, opts...)
}

// parseLine extracts the first two non-negative integers of a line.
func parseLine(text, delim string) (int, int, error) {
	var fields []string
	if delim == "" {
		fields = strings.Fields(text)
	} else {
		fields = strings.Split(text, delim)
	}
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	u, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, err
	}
	if u < 0 || v < 0 {
		return 0, 0, fmt.Errorf("negative index")
	}
	return u, v, nil
}
