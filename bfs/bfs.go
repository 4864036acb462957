// Package bfs provides breadth-first traversal over a core.Graph with
// sequential, level-synchronous and bounded-pool engines.
package bfs

import "github.com/katalvlaran/parbfs/core"

// Sequential runs the reference breadth-first traversal of g from start on
// the calling goroutine, firing vis hooks in standard FIFO BFS order.
//
// It returns ErrGraphNil, ErrVisitorNil, ErrEmptyGraph, ErrStartOutOfRange or
// ErrOptionViolation for invalid input, ErrWorkerPanic if a hook panics, or
// the first visitor error wrapped with the hook name.
func Sequential(g core.Graph, start int, vis Visitor, opts ...Option) error {
	w, err := newWalker(g, start, vis, opts)
	if err != nil {
		return err
	}

	ctx, span := w.startSpan("sequential")
	levels, err := w.loop(func(depth, width int) {
		w.levelDone(ctx, span, "sequential", depth, width)
	})
	w.endSpan(ctx, span, "sequential", levels, err)

	return err
}

// loop processes a FIFO queue until it drains or a hook fails. The queue
// carries no depth, so levels are delimited by the queue length observed
// when the previous level ended.
func (w *walker) loop(onLevel func(depth, width int)) (levels int, err error) {
	if err := w.begin(); err != nil {
		return 0, err
	}

	queue := make([]int, 0, w.n)
	queue = append(queue, w.start)
	// boundary is the queue length at which the current level ends.
	boundary, done := 1, 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		next, err := w.process(v)
		if err != nil {
			return levels, err
		}
		queue = append(queue, next...)

		done++
		if done == boundary {
			onLevel(levels, boundary)
			levels++
			boundary = len(queue)
			done = 0
		}
	}

	return levels, nil
}
