package bfs

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/parbfs/core"
)

// Pool runs a parallel traversal on a fixed pool of workers goroutines.
//
// Claimed vertices wait in a FIFO tagged with their discovery depth
// (depth of the claiming vertex + 1). A single scheduler, running on the
// calling goroutine, hands queued vertices to idle workers subject to
// admissionCeiling, splices each finished worker's successors onto the queue
// and stops once the queue is empty and every worker is idle.
//
// Errors are those of Sequential, plus ErrPoolSize for workers <= 0 and
// ErrScheduler if the admission invariant is ever broken. After the first
// hook error no new vertex is admitted; in-flight workers are drained.
func Pool(g core.Graph, start int, vis Visitor, workers int, opts ...Option) error {
	if workers <= 0 {
		return fmt.Errorf("%w: got %d", ErrPoolSize, workers)
	}
	w, err := newWalker(g, start, vis, opts)
	if err != nil {
		return err
	}

	ctx, span := w.startSpan("pool", attribute.Int("workers", workers))
	s := newPoolScheduler(w, workers)
	err = s.run(ctx, span)
	w.endSpan(ctx, span, "pool", s.maxCompleted+1, err)

	return err
}

// admissionCeiling returns the deepest discovery depth that may be handed to
// a free worker. While any worker is busy only depths up to the deepest
// completed one are eligible, since a busy worker may still claim vertices
// at maxCompleted+1. With every worker idle nothing can be claimed anymore,
// so the next depth opens.
func admissionCeiling(maxCompleted, busy int) int {
	if busy > 0 {
		return maxCompleted
	}
	return maxCompleted + 1
}

// poolTask is a claimed vertex waiting for, or assigned to, a worker.
type poolTask struct {
	vertex int
	depth  int
}

// poolResult is what a worker reports back for one task.
type poolResult struct {
	task poolTask
	next []int
	err  error
}

// poolScheduler owns all scheduling state. Only the scheduler goroutine
// touches pending, busy and maxCompleted.
type poolScheduler struct {
	w       *walker
	workers int

	pending      []poolTask
	busy         int
	maxCompleted int

	tasks   chan poolTask
	results chan poolResult
}

func newPoolScheduler(w *walker, workers int) *poolScheduler {
	return &poolScheduler{
		w:            w,
		workers:      workers,
		maxCompleted: -1,
		tasks:        make(chan poolTask),
		// Never more than workers outstanding results, so workers never block on send.
		results: make(chan poolResult, workers),
	}
}

// run executes the traversal and returns the first error.
func (s *poolScheduler) run(ctx context.Context, span trace.Span) error {
	if err := s.w.begin(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(s.workers)
	for range s.workers {
		go func() {
			defer wg.Done()
			s.work()
		}()
	}

	err := s.schedule(ctx, span)

	close(s.tasks)
	wg.Wait()

	return err
}

// work is the body of one pool worker.
func (s *poolScheduler) work() {
	for t := range s.tasks {
		next, err := s.w.process(t.vertex)
		s.results <- poolResult{task: t, next: next, err: err}
	}
}

// schedule alternates admission rounds with waiting for one completion.
func (s *poolScheduler) schedule(ctx context.Context, span trace.Span) error {
	s.pending = append(s.pending, poolTask{vertex: s.w.start, depth: 0})

	var (
		firstErr error
		width    int // completions at depth maxCompleted
	)
	for {
		if firstErr == nil {
			s.admit()
		}
		if s.busy == 0 {
			if firstErr == nil && len(s.pending) > 0 {
				firstErr = fmt.Errorf("%w: %d queued, head depth %d, ceiling %d",
					ErrScheduler, len(s.pending), s.pending[0].depth,
					admissionCeiling(s.maxCompleted, 0))
			}
			break
		}

		res := <-s.results
		s.busy--
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			continue
		}

		switch d := res.task.depth; {
		case d > s.maxCompleted:
			if s.maxCompleted >= 0 {
				s.w.levelDone(ctx, span, "pool", s.maxCompleted, width)
			}
			s.maxCompleted, width = d, 1
		case d == s.maxCompleted:
			width++
		}
		for _, v := range res.next {
			s.pending = append(s.pending, poolTask{vertex: v, depth: res.task.depth + 1})
		}
	}
	if firstErr == nil && s.maxCompleted >= 0 {
		s.w.levelDone(ctx, span, "pool", s.maxCompleted, width)
	}

	return firstErr
}

// admit fills idle workers from the head of the queue. The ceiling is taken
// once per round, before any assignment, so every worker that is idle at the
// start of the round can take a vertex of the newly opened depth.
func (s *poolScheduler) admit() {
	ceiling := admissionCeiling(s.maxCompleted, s.busy)
	for s.busy < s.workers && len(s.pending) > 0 && s.pending[0].depth <= ceiling {
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.tasks <- t
		s.busy++
	}
}
