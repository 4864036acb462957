package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/parbfs/bfs"
)

// ErrUnknownEngine is returned by ParseEngine.
var ErrUnknownEngine = errors.New("bench: unknown engine")

// NamedEngine pairs an engine with the name used in reports.
type NamedEngine struct {
	Name string
	Run  bfs.Engine
}

// ParseEngine resolves "sequential", "level" or "pool:K" (K ≥ 1).
func ParseEngine(name string) (NamedEngine, error) {
	switch name {
	case "sequential":
		return NamedEngine{Name: name, Run: bfs.Sequential}, nil
	case "level":
		return NamedEngine{Name: name, Run: bfs.Level}, nil
	}
	if k, ok := strings.CutPrefix(name, "pool:"); ok {
		workers, err := strconv.Atoi(k)
		if err != nil || workers < 1 {
			return NamedEngine{}, fmt.Errorf("%w: %q: worker count must be a positive integer", ErrUnknownEngine, name)
		}
		return NamedEngine{Name: name, Run: bfs.PoolEngine(workers)}, nil
	}
	return NamedEngine{}, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// ParseEngines resolves every name, failing on the first bad one.
func ParseEngines(names []string) ([]NamedEngine, error) {
	out := make([]NamedEngine, 0, len(names))
	for _, n := range names {
		e, err := ParseEngine(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
