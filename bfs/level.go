package bfs

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parbfs/core"
)

// Level runs a level-synchronous parallel traversal: for every level it starts
// one goroutine per frontier vertex, with no cap, and waits for all of them
// before the next level begins.
//
// Each goroutine runs the same per-vertex body as Sequential and collects the
// successors it claimed into a private slice; the next frontier is the
// concatenation of those slices in frontier order. The wait is the level
// barrier: every color written during level L is visible to level L+1.
//
// Errors are those of Sequential. When a hook fails, the remaining goroutines
// of the same level still run to completion; no further level is started.
func Level(g core.Graph, start int, vis Visitor, opts ...Option) error {
	w, err := newWalker(g, start, vis, opts)
	if err != nil {
		return err
	}

	ctx, span := w.startSpan("level")
	levels, err := w.levels(func(depth, width int) {
		w.levelDone(ctx, span, "level", depth, width)
	})
	w.endSpan(ctx, span, "level", levels, err)

	return err
}

// levels drives the frontier loop and reports each finished level to onLevel.
func (w *walker) levels(onLevel func(depth, width int)) (int, error) {
	if err := w.begin(); err != nil {
		return 0, err
	}

	frontier := []int{w.start}
	depth := 0
	for ; len(frontier) > 0; depth++ {
		branches := make([][]int, len(frontier))

		var eg errgroup.Group
		for i, v := range frontier {
			eg.Go(func() error {
				next, err := w.process(v)
				branches[i] = next
				return err
			})
		}
		// Level barrier.
		if err := eg.Wait(); err != nil {
			return depth, err
		}
		onLevel(depth, len(frontier))

		frontier = splice(branches)
	}

	return depth, nil
}

// splice concatenates per-worker successor lists into one frontier.
func splice(branches [][]int) []int {
	total := 0
	for _, b := range branches {
		total += len(b)
	}
	out := make([]int, 0, total)
	for _, b := range branches {
		out = append(out, b...)
	}
	return out
}
